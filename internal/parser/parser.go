// Package parser turns raw bibliography text into structured records.
//
// Each supported format has its own entry point; Parse dispatches on the
// declared format tag. A malformed individual entry is reported as a
// diagnostic error and skipped, never failing the batch. Only an empty or
// wholly unrecognizable input is an error.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"refcheck/internal/reference"
)

// ErrNoReferences indicates the input contained no parseable entries.
var ErrNoReferences = errors.New("no references found in input")

// Parse parses raw text in the given format. It returns the parsed records
// plus per-entry diagnostics for entries that were skipped.
func Parse(content string, format reference.Format) ([]reference.Record, []error, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil, ErrNoReferences
	}

	var recs []reference.Record
	var diags []error

	switch format {
	case reference.FormatBibitem:
		recs, diags = parseBibitems(content)
	case reference.FormatBibTeX:
		recs, diags = parseBibTeX(content)
	case reference.FormatPlain:
		recs, diags = parsePlain(content)
	default:
		return nil, nil, fmt.Errorf("unsupported format %q", format)
	}

	if len(recs) == 0 {
		return nil, diags, ErrNoReferences
	}
	return recs, diags, nil
}

// cleanField collapses runs of whitespace and strips trailing punctuation
// left behind by component extraction.
func cleanField(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.Trim(s, " .,;")
}

// assignLink stores a trailing link on the record: doi.org links and bare
// DOI tokens go to the DOI field, anything else to URL.
func assignLink(rec *reference.Record, link string) {
	link = strings.TrimRight(link, ".")
	if strings.Contains(link, "doi.org/") || strings.HasPrefix(link, "10.") || strings.HasPrefix(link, "doi:") {
		rec.DOI = link
		return
	}
	rec.URL = link
}
