package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sfadsms/internal/application/commands"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <category> [record] [file]",
	Short: "Delete a category, record or file",
	Long: `Delete a category, a record, or a single file from the store.

Warning: This operation cannot be undone. Deleting a category or a record
also deletes everything inside it.

Examples:
  sfadsms delete Grade7 Juan card.pdf   # Delete a file
  sfadsms delete Grade7 Juan            # Delete a record and its files
  sfadsms delete Grade7                 # Delete a category`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		var (
			result *commands.DeleteResult
			err    error
		)
		switch len(args) {
		case 1:
			result, err = commands.NewDeleteCategoryCommand(app.Store, app.Auditor, args[0]).Execute(ctx)
		case 2:
			result, err = commands.NewDeleteRecordCommand(app.Store, app.Auditor, args[0], args[1]).Execute(ctx)
		default:
			result, err = commands.NewDeleteFileCommand(app.Store, app.Auditor, args[0], args[1], args[2]).Execute(ctx)
		}
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
