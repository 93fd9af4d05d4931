package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sfadsms/internal/application/commands"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move a file or a record",
	Long: `Move a file to another record, or a record to another category.
Both the source and destination categories are flagged for sync.

Examples:
  sfadsms move file Grade7 Juan card.pdf Grade8 Juan
  sfadsms move record Grade7 Juan Grade8`,
}

var moveFileCmd = &cobra.Command{
	Use:   "file <category> <record> <file> <dst-category> <dst-record>",
	Short: "Move a file to another record",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		moveCmd := commands.NewMoveFileCommand(app.Store, app.Auditor, args[0], args[1], args[2], args[3], args[4])
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

var moveRecordCmd = &cobra.Command{
	Use:   "record <category> <record> <dst-category>",
	Short: "Move a record to another category",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		moveCmd := commands.NewMoveRecordCommand(app.Store, app.Auditor, args[0], args[1], args[2])
		result, err := moveCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.AddCommand(moveFileCmd)
	moveCmd.AddCommand(moveRecordCmd)
}
