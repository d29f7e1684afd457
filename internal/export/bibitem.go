// Package export renders corrected records in the supported citation
// serializations. Fields absent from a record are omitted entirely; the
// renderers never substitute placeholder values.
package export

import (
	"fmt"
	"strings"

	"refcheck/internal/reference"
)

// ToBibitem renders one record as a \bibitem entry, with the volume (and
// issue) in the bolded form the source format uses.
func ToBibitem(rec reference.Record) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\\bibitem{%s} ", rec.Key))

	var parts []string
	if len(rec.Authors) > 0 {
		parts = append(parts, reference.JoinAuthors(rec.Authors))
	}
	if rec.Title != "" {
		parts = append(parts, rec.Title)
	}

	venue := rec.Journal
	if rec.Volume != "" {
		if rec.Issue != "" {
			venue += fmt.Sprintf(" \\textbf{%s}(%s)", rec.Volume, rec.Issue)
		} else {
			venue += fmt.Sprintf(" \\textbf{%s}", rec.Volume)
		}
		venue = strings.TrimSpace(venue)
	}
	if venue != "" {
		parts = append(parts, venue)
	}

	b.WriteString(strings.Join(parts, ", "))

	if rec.Year != 0 {
		b.WriteString(fmt.Sprintf(" (%d)", rec.Year))
	}
	if rec.Pages != "" {
		b.WriteString(" " + rec.Pages)
	} else if rec.ArticleNo != "" {
		b.WriteString(" " + rec.ArticleNo)
	}
	if rec.DOI != "" {
		b.WriteString(". " + doiURL(rec.DOI))
	} else if rec.URL != "" {
		b.WriteString(". " + rec.URL)
	}

	return b.String()
}

// ToBibitemList renders all records, separated by blank lines.
func ToBibitemList(recs []reference.Record) string {
	var entries []string
	for _, rec := range recs {
		entries = append(entries, ToBibitem(rec))
	}
	return strings.Join(entries, "\n\n")
}

// doiURL renders a DOI as a resolver URL.
func doiURL(doi string) string {
	if strings.HasPrefix(doi, "http") {
		return doi
	}
	return "https://doi.org/" + reference.NormalizeDOI(doi)
}
