package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"refcheck/internal/reference"
)

func init() {
	rootCmd.AddCommand(formatsCmd)
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported bibliography formats",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

// FormatInfo describes one supported bibliography format.
type FormatInfo struct {
	Name        reference.Format `json:"name"`
	Description string           `json:"description"`
}

var supportedFormats = []FormatInfo{
	{reference.FormatBibitem, `LaTeX thebibliography entries (\bibitem{key} ...)`},
	{reference.FormatBibTeX, "BibTeX database entries (@article{key, ...})"},
	{reference.FormatPlain, "One free-form reference per line"},
}

func runFormats(cmd *cobra.Command, args []string) error {
	if humanOutput {
		for _, f := range supportedFormats {
			fmt.Printf("%-8s  %s\n", f.Name, f.Description)
		}
		return nil
	}
	return outputJSON(supportedFormats)
}
