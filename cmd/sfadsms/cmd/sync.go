package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sfadsms/internal/application/commands"
)

var syncForce bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile metadata indices with the files on disk",
	Long: `Rebuild the metadata index of every record in the categories that need
it: entries for missing files are pruned, unindexed files are adopted and
indices are renumbered. Use --force to sync every category.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewSyncCommand(app.Reconciler, app.Auditor, syncForce).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVarP(&syncForce, "force", "f", false, "sync every category")
	rootCmd.AddCommand(syncCmd)
}
