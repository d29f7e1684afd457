package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"refcheck/internal/config"
	"refcheck/internal/crossref"
	"refcheck/internal/export"
	"refcheck/internal/parser"
	"refcheck/internal/pdfbib"
	"refcheck/internal/pipeline"
	"refcheck/internal/reference"
	"refcheck/internal/report"
	"refcheck/internal/storage"
)

var (
	validateFormat  string
	validateEmit    string
	validateOut     string
	validateReport  string
	validatePDF     bool
	validateOffline bool
	validateCache   bool
	validateWorkers int
	validateMailto  string
)

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "bibitem", "Input format: bibitem, bibtex, or plain")
	validateCmd.Flags().StringVar(&validateEmit, "emit", "", "Output format (defaults to the input format)")
	validateCmd.Flags().StringVar(&validateOut, "out", "", "Write corrected references to this file")
	validateCmd.Flags().StringVar(&validateReport, "report", "", "Write the markdown audit report to this file")
	validateCmd.Flags().BoolVar(&validatePDF, "pdf", false, "Treat the input file as a PDF bibliography (implies plain format)")
	validateCmd.Flags().BoolVar(&validateOffline, "offline", false, "Skip registry verification")
	validateCmd.Flags().BoolVar(&validateCache, "cache", false, "Cache registry lookups on disk")
	validateCmd.Flags().IntVar(&validateWorkers, "workers", 0, "Concurrent registry lookups (default from config)")
	validateCmd.Flags().StringVar(&validateMailto, "mailto", "", "Contact address for the registry polite pool")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate and correct a bibliography",
	Long: `Validate a bibliography file (or stdin when no file is given).

The references are parsed, deduplicated, normalized, and verified
against the Crossref registry. The corrected reference list and a full
audit of every change are produced.

Examples:
  refcheck validate refs.tex --format bibitem
  refcheck validate refs.bib --format bibtex --emit bibitem --out fixed.tex
  refcheck validate refs.txt --format plain --offline --human
  refcheck validate bibliography.pdf --pdf --report audit.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

// ValidateResponse is the JSON result of a validate run.
type ValidateResponse struct {
	Summary   report.Summary `json:"summary"`
	Result    *report.Result `json:"result"`
	Corrected string         `json:"corrected,omitempty"` // omitted when --out is used
}

func runValidate(cmd *cobra.Command, args []string) error {
	// Pick up REFCHECK_MAILTO and friends from a local .env if present.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}

	inFormat, err := parseFormat(validateFormat)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}
	if validatePDF {
		inFormat = reference.FormatPlain
	}

	outFormat := inFormat
	if validateEmit != "" {
		if outFormat, err = parseFormat(validateEmit); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
	}

	content, err := readInput(args)
	if err != nil {
		exitWithError(ExitError, "reading input: %v", err)
	}

	opts := pipeline.Options{
		Limits:  cfg.Limits,
		Workers: cfg.Workers,
	}
	if validateWorkers > 0 {
		opts.Workers = validateWorkers
	}

	if !validateOffline {
		mailto := validateMailto
		if mailto == "" {
			mailto = cfg.Mailto
		}
		clientOpts := []crossref.ClientOption{crossref.WithMailto(mailto)}
		if cfg.RegistryBaseURL != "" {
			clientOpts = append(clientOpts, crossref.WithBaseURL(cfg.RegistryBaseURL))
		}
		opts.Registry = crossref.NewClient(clientOpts...)

		if cache := openCache(cfg); cache != nil {
			defer cache.Close()
			opts.Cache = cache
		}
	}

	res, err := pipeline.Run(context.Background(), content, inFormat, opts)
	if err != nil {
		if errors.Is(err, parser.ErrNoReferences) {
			exitWithError(ExitDataError, "no references found in input")
		}
		exitWithError(ExitError, "validation failed: %v", err)
	}

	corrected, err := export.Render(res.Records, outFormat)
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}

	if validateOut != "" {
		if err := os.WriteFile(validateOut, []byte(corrected+"\n"), 0644); err != nil {
			exitWithError(ExitError, "writing %s: %v", validateOut, err)
		}
	}
	if validateReport != "" {
		if err := os.WriteFile(validateReport, []byte(res.Markdown()), 0644); err != nil {
			exitWithError(ExitError, "writing %s: %v", validateReport, err)
		}
	}

	if humanOutput {
		printSummaryHuman(res)
		if validateOut == "" {
			fmt.Println()
			fmt.Println(corrected)
		}
		return nil
	}

	resp := ValidateResponse{Summary: res.Summary(), Result: res}
	if validateOut == "" {
		resp.Corrected = corrected
	}
	return outputJSON(resp)
}

// readInput loads the bibliography text from the named file, a PDF, or
// stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}

	if validatePDF {
		lines, err := pdfbib.ExtractLines(args[0])
		if err != nil {
			return "", fmt.Errorf("extracting text from %s: %w", args[0], err)
		}
		return strings.Join(pdfbib.LinkifyDOIs(lines), "\n"), nil
	}

	data, err := os.ReadFile(args[0])
	return string(data), err
}

// openCache opens the lookup cache when enabled, logging failures to
// stderr rather than failing the run.
func openCache(cfg *config.Config) *storage.Cache {
	if !validateCache {
		return nil
	}

	path := cfg.CachePath
	if path == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: no cache directory available: %v\n", err)
			return nil
		}
		if err := os.MkdirAll(cacheDir+"/refcheck", 0755); err != nil {
			fmt.Fprintf(os.Stderr, "warning: creating cache directory: %v\n", err)
			return nil
		}
		path = cacheDir + "/refcheck/lookups.db"
	}

	cache, err := storage.OpenCache(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening lookup cache: %v\n", err)
		return nil
	}
	return cache
}

func parseFormat(s string) (reference.Format, error) {
	switch strings.ToLower(s) {
	case "bibitem":
		return reference.FormatBibitem, nil
	case "bibtex":
		return reference.FormatBibTeX, nil
	case "plain":
		return reference.FormatPlain, nil
	}
	return "", fmt.Errorf("unknown format %q (expected bibitem, bibtex, or plain)", s)
}

func printSummaryHuman(res *report.Result) {
	s := res.Summary()
	fmt.Printf("References: %d → %d\n", s.Original, s.Final)
	fmt.Printf("  duplicates removed:   %d\n", s.DuplicatesRemoved)
	fmt.Printf("  format corrections:   %d\n", s.FormatCorrections)
	fmt.Printf("  spelling corrections: %d\n", s.SpellingCorrections)
	fmt.Printf("  data corrections:     %d\n", s.DataCorrections)
	fmt.Printf("  unverifiable:         %d\n", s.Invalid)
}
