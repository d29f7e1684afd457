package export

import (
	"fmt"
	"strings"

	"refcheck/internal/reference"
)

// ToPlain renders one record as a numbered plain-text citation.
func ToPlain(n int, rec reference.Record) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d. ", n))

	var parts []string
	if len(rec.Authors) > 0 {
		parts = append(parts, reference.JoinAuthors(rec.Authors))
	}
	if rec.Title != "" {
		parts = append(parts, rec.Title)
	}
	if rec.Journal != "" {
		venue := rec.Journal
		if rec.Volume != "" {
			if rec.Issue != "" {
				venue += fmt.Sprintf(" %s(%s)", rec.Volume, rec.Issue)
			} else {
				venue += " " + rec.Volume
			}
		}
		parts = append(parts, venue)
	}
	if len(parts) == 0 && rec.RawText != "" {
		// A plain-line record that never got structured keeps its text.
		parts = append(parts, rec.RawText)
	}

	b.WriteString(strings.Join(parts, ". "))

	if rec.Year != 0 {
		b.WriteString(fmt.Sprintf(" (%d)", rec.Year))
	}
	if rec.Pages != "" {
		b.WriteString(": " + rec.Pages)
	} else if rec.ArticleNo != "" {
		b.WriteString(": " + rec.ArticleNo)
	}
	if rec.DOI != "" {
		b.WriteString(". " + doiURL(rec.DOI))
	} else if rec.URL != "" {
		b.WriteString(". " + rec.URL)
	}

	return b.String()
}

// ToPlainList renders all records as a numbered list.
func ToPlainList(recs []reference.Record) string {
	var entries []string
	for i, rec := range recs {
		entries = append(entries, ToPlain(i+1, rec))
	}
	return strings.Join(entries, "\n\n")
}

// Render serializes records in the named format.
func Render(recs []reference.Record, format reference.Format) (string, error) {
	switch format {
	case reference.FormatBibitem:
		return ToBibitemList(recs), nil
	case reference.FormatBibTeX:
		return ToBibTeXList(recs), nil
	case reference.FormatPlain:
		return ToPlainList(recs), nil
	}
	return "", fmt.Errorf("unsupported output format %q", format)
}
