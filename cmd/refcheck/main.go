// Package main provides the refcheck CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Print the error since we have SilenceErrors: true
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "refcheck",
	Short: "Bibliography validation and correction",
	Long: `refcheck repairs and verifies bibliography files.

It parses references in bibitem, BibTeX, or plain-line form, removes
near-duplicate entries, normalizes author/title/journal formatting,
fixes common misspellings, and cross-checks each entry against the
Crossref registry, correcting author, title, venue, volume, issue,
page, and identifier fields. Every change is recorded in a per-record
provenance log and summarized in an audit report.

Results are JSON by default for tool integration; use --human for a
readable summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
