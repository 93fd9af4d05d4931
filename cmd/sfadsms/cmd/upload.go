package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sfadsms/internal/application/commands"
)

var (
	uploadName string
	uploadKeep bool
)

var uploadCmd = &cobra.Command{
	Use:   "upload <source> <category> <record>",
	Short: "Upload a file into a record",
	Long: `Copy a file into a record and append it to the record's index.

The copy is verified by checksum before the source is removed. Use --keep
to leave the source in place, and --name to store it under another name
(the extension is kept).

Examples:
  sfadsms upload ~/scans/card.pdf Grade7 Juan
  sfadsms upload ~/scans/scan01.pdf Grade7 Juan --name ReportCard --keep`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		uploadCmd := commands.NewUploadCommand(app.Store, app.Auditor, args[0], args[1], args[2], uploadName, uploadKeep)
		result, err := uploadCmd.Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Println(successStyle.Render(result.Message))
		return nil
	},
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadName, "name", "n", "", "store the file under this name")
	uploadCmd.Flags().BoolVarP(&uploadKeep, "keep", "k", false, "keep the source file")
	rootCmd.AddCommand(uploadCmd)
}
