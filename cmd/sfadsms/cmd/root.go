package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sfadsms/internal/bootstrap"
	"sfadsms/internal/config"
)

var (
	rootPath string
	verbose  bool
	app      *bootstrap.App
)

var rootCmd = &cobra.Command{
	Use:   "sfadsms",
	Short: "Manage a local document filing store",
	Long: `sfadsms manages a local store of documents filed as
category / record / file.

Each record keeps a numbered metadata index of its files. Indices are
reconciled with the files on disk lazily: categories touched since the
last sync are rescanned before listings, or on demand with "sync".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		app, err = bootstrap.Open(bootstrap.Options{Root: rootPath, LogToStderr: verbose})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		err := app.Close()
		app = nil
		return err
	},
}

// Execute runs the root command
func Execute() {
	err := rootCmd.Execute()
	if app != nil {
		app.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.RootPath(), "path to the store root")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "also write logs to stderr")
}
