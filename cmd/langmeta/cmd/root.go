package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "langmeta",
	Short: "langmeta — language metadata registry",
	Long:  "Standardized ISO 639 codes, writing systems, and orthographic signals for the supported language catalogue.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(alphabetsCmd)
	rootCmd.AddCommand(exportCmd)
}
