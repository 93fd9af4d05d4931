package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sfadsms/internal/application/commands"
)

var listCmd = &cobra.Command{
	Use:   "list [category] [record]",
	Short: "List categories, records or files",
	Long: `List the contents of the store. Categories flagged as needing sync
are reconciled first.

Examples:
  sfadsms list                  # Categories
  sfadsms list Grade7           # Records in a category
  sfadsms list Grade7 Juan      # Files in a record, in index order`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		switch len(args) {
		case 0:
			cats, err := commands.NewListCategoriesCommand(app.Reconciler, app.Store).Execute(ctx)
			if err != nil {
				return err
			}
			if len(cats) == 0 {
				fmt.Println(mutedStyle.Render("No categories."))
			}
			for _, c := range cats {
				fmt.Printf("%s %s\n", badge(c.Dirty), categoryStyle.Render(c.Name))
			}

		case 1:
			recs, err := commands.NewListRecordsCommand(app.Reconciler, app.Store, args[0]).Execute(ctx)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println(mutedStyle.Render("No records."))
			}
			for _, r := range recs {
				fmt.Println(r.Name)
			}

		default:
			files, err := commands.NewListFilesCommand(app.Reconciler, app.Store, args[0], args[1]).Execute(ctx)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Println(mutedStyle.Render("No files."))
			}
			for _, f := range files {
				fmt.Printf("%3d  %s  %s\n", f.Index, f.Name, mutedStyle.Render(f.Timestamp))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
