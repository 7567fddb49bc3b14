package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trabaho-board/cmd/trabaho/commands"
	"trabaho-board/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "trabaho",
	Short: "Trabaho PH - static job board for the Philippines",
	Long: `Trabaho PH serves a filterable board of job postings.

Available commands:
  serve  - Load the catalogue and serve the board over HTTP
  jobs   - Print the filtered catalogue as a table
  seed   - Import a JSON feed into a SQLite catalogue
  config - Manage the board configuration

Examples:
  trabaho serve
  trabaho jobs --type Full-time --q nurse
  trabaho seed jobs.json --db catalog.db`,
	SilenceUsage: true,
	// Console logging until a command asks for something else; serve
	// re-initializes from config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(false)
	},
}

func init() {
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.JobsCmd)
	rootCmd.AddCommand(commands.SeedCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
