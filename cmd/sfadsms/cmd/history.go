package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sfadsms/internal/application/commands"
)

var (
	historyCategory string
	historyLimit    int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent audit trail events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		events, err := commands.NewHistoryCommand(app.Audit, historyCategory, historyLimit).Execute(ctx)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println(mutedStyle.Render("No events."))
		}
		for _, e := range events {
			fmt.Println(e.String())
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyCategory, "category", "c", "", "only show events for this category")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 50, "maximum number of events")
	rootCmd.AddCommand(historyCmd)
}
