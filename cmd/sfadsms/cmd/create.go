package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sfadsms/internal/application/commands"
)

var createCmd = &cobra.Command{
	Use:   "create <category> [record]",
	Short: "Create a category or a record",
	Long: `Create a new category, or a record inside an existing category.

Examples:
  sfadsms create Grade7
  sfadsms create Grade7 JuanDelaCruz`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if len(args) == 1 {
			result, err := commands.NewCreateCategoryCommand(app.Store, app.Auditor, args[0]).Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Println(successStyle.Render(result.Message))
			return nil
		}

		result, err := commands.NewCreateRecordCommand(app.Store, app.Auditor, args[0], args[1]).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
