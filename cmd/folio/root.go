package main

import "github.com/spf13/cobra"

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Reconstruct lines and pages from paginated text layouts",
	Long: `Folio reconstructs logical reading structure from a horizontally
paginated text layout: which words form each visual line, and which page
each line falls on. It is built for accessibility tooling that needs
"what text is on which line and page" without access to the layout
engine's own line-breaking decisions.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "text", "output format: text, json or yaml",
	)

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}
