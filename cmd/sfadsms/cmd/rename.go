package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sfadsms/internal/application/commands"
)

var renameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Rename a category, record or file",
	Long: `Rename a category, a record, or a file. Renaming a record carries its
metadata index along; renaming a file keeps its index position and extension.

Examples:
  sfadsms rename category Grade7 Grade7-A
  sfadsms rename record Grade7 Juan JuanDelaCruz
  sfadsms rename file Grade7 Juan scan01.pdf ReportCard`,
}

var renameCategoryCmd = &cobra.Command{
	Use:   "category <category> <new-name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewRenameCategoryCommand(app.Store, app.Auditor, args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

var renameRecordCmd = &cobra.Command{
	Use:   "record <category> <record> <new-name>",
	Short: "Rename a record",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewRenameRecordCommand(app.Store, app.Auditor, args[0], args[1], args[2]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

var renameFileCmd = &cobra.Command{
	Use:   "file <category> <record> <file> <new-name>",
	Short: "Rename a file",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewRenameFileCommand(app.Store, app.Auditor, args[0], args[1], args[2], args[3]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
	renameCmd.AddCommand(renameCategoryCmd)
	renameCmd.AddCommand(renameRecordCmd)
	renameCmd.AddCommand(renameFileCmd)
}
