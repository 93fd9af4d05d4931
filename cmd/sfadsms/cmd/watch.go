package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep metadata in sync while files change on disk",
	Long: `Watch the data directory and flag every category whose files change
outside the store. Once changes settle the flagged categories are synced.

This catches edits that a file count cannot detect, such as renaming a
file in a file manager. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		watcher := app.Watcher()
		if err := watcher.Open(); err != nil {
			return err
		}
		defer watcher.Close()

		// Catch up on anything changed while nobody was watching
		if _, err := app.Reconciler.EnsureConsistent(); err != nil {
			return err
		}

		fmt.Println(headerStyle.Render("Watching " + app.Config.DataDir()))

		onChange := func(category string) {
			if err := app.Registry.MarkChanged(category); err != nil {
				app.Logger.Warn("failed to flag category", "category", category, "error", err)
			}
		}
		onQuiet := func() {
			stats, err := app.Reconciler.EnsureConsistent()
			if err != nil {
				fmt.Println(errorStyle.Render("sync failed:"), err)
				return
			}
			if len(stats.Categories) > 0 {
				fmt.Println(successStyle.Render(fmt.Sprintf("Synced %v (%d rewritten)", stats.Categories, stats.RecordsRewritten)))
			}
		}

		return watcher.Run(ctx, onChange, onQuiet)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
