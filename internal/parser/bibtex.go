package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"refcheck/internal/reference"
)

var (
	bibtexEntry = regexp.MustCompile(`(?s)@(\w+)\{([^,]+),(.*?)\n\}`)
	bibtexField = regexp.MustCompile(`(\w+)\s*=\s*[{"]([^}"]*)[}"]`)
)

// parseBibTeX extracts @type{key, field = {value}, ...} entries.
func parseBibTeX(content string) ([]reference.Record, []error) {
	var recs []reference.Record
	var diags []error

	for _, m := range bibtexEntry.FindAllStringSubmatch(content, -1) {
		entryType := strings.ToLower(m[1])
		key := strings.TrimSpace(m[2])

		rec, err := parseBibTeXFields(entryType, key, m[3])
		if err != nil {
			diags = append(diags, err)
			continue
		}
		recs = append(recs, rec)
	}

	return recs, diags
}

func parseBibTeXFields(entryType, key, fields string) (reference.Record, error) {
	rec := reference.Record{
		Key:          key,
		EntryType:    entryType,
		SourceFormat: reference.FormatBibTeX,
		Status:       reference.StatusUnverified,
	}

	matched := false
	for _, f := range bibtexField.FindAllStringSubmatch(fields, -1) {
		name := strings.ToLower(strings.TrimSpace(f[1]))
		value := strings.TrimSpace(f[2])
		if value == "" {
			continue
		}
		matched = true

		switch name {
		case "author":
			rec.Authors = splitBibTeXAuthors(value)
		case "title":
			rec.Title = value
		case "journal", "booktitle", "venue":
			rec.Journal = value
		case "year":
			if y, err := strconv.Atoi(value); err == nil {
				rec.Year = y
			}
		case "volume":
			rec.Volume = value
		case "number", "issue":
			rec.Issue = value
		case "pages":
			rec.Pages = value
		case "doi":
			rec.DOI = value
		case "url":
			rec.URL = value
		}
	}

	if !matched {
		return reference.Record{}, fmt.Errorf("bibtex entry %q: no fields recognized", key)
	}
	return rec, nil
}

// splitBibTeXAuthors handles both BibTeX "A and B and C" author lists and
// the comma-separated lists common in hand-written files.
func splitBibTeXAuthors(value string) []string {
	sep := ","
	if strings.Contains(value, " and ") {
		sep = " and "
	}

	var authors []string
	for _, part := range strings.Split(value, sep) {
		if part = strings.TrimSpace(part); part != "" {
			authors = append(authors, part)
		}
	}
	return authors
}
