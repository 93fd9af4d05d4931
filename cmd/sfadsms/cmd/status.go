package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sfadsms/internal/application/commands"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which categories need a sync",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		result, err := commands.NewStatusCommand(app.Registry, app.Prober, app.Index).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(result.Message))
		for _, c := range result.Categories {
			fmt.Printf("%s  %s %s\n",
				badge(c.Dirty),
				categoryStyle.Render(c.Name),
				mutedStyle.Render(fmt.Sprintf("records=%d files=%d indexed=%d", c.Records, c.Files, c.Indexed)),
			)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
