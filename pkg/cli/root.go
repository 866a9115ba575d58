// Package cli holds the bootcamp-landing command tree.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bootcamp-landing",
	Short: "Bootcamp landing site and registration form",
	Long: `bootcamp-landing serves the bootcamp landing page, its documentation
sections and the registration form, which forwards applications to a
SheetDB-backed spreadsheet.

Run without a subcommand to start the web server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("port", "p", "", "listen port (overrides PORT)")
}
