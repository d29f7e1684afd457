package export

import (
	"fmt"
	"strings"

	"refcheck/internal/reference"
)

// ToBibTeX renders one record as a BibTeX entry.
func ToBibTeX(rec reference.Record) string {
	entryType := rec.EntryType
	if entryType == "" {
		entryType = determineEntryType(rec)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, rec.Key))

	if len(rec.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", strings.Join(rec.Authors, " and ")))
	}
	if rec.Title != "" {
		b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(rec.Title)))
	}
	if rec.Journal != "" {
		fieldName := "journal"
		if entryType == "inproceedings" {
			fieldName = "booktitle"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", fieldName, escapeLatex(rec.Journal)))
	}
	if rec.Year != 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", rec.Year))
	}
	if rec.Volume != "" {
		b.WriteString(fmt.Sprintf("  volume = {%s},\n", rec.Volume))
	}
	if rec.Issue != "" {
		b.WriteString(fmt.Sprintf("  number = {%s},\n", rec.Issue))
	}
	if rec.Pages != "" {
		b.WriteString(fmt.Sprintf("  pages = {%s},\n", rec.Pages))
	} else if rec.ArticleNo != "" {
		b.WriteString(fmt.Sprintf("  pages = {%s},\n", rec.ArticleNo))
	}
	if rec.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", reference.NormalizeDOI(rec.DOI)))
	}
	if rec.URL != "" {
		b.WriteString(fmt.Sprintf("  url = {%s},\n", rec.URL))
	}

	b.WriteString("}")
	return b.String()
}

// ToBibTeXList renders all records, separated by blank lines.
func ToBibTeXList(recs []reference.Record) string {
	var entries []string
	for _, rec := range recs {
		entries = append(entries, ToBibTeX(rec))
	}
	return strings.Join(entries, "\n\n")
}

// determineEntryType picks an entry type for records parsed from formats
// that do not carry one.
func determineEntryType(rec reference.Record) string {
	venue := strings.ToLower(rec.Journal)
	if strings.Contains(venue, "proceedings") ||
		strings.Contains(venue, "conference") ||
		strings.Contains(venue, "workshop") ||
		strings.Contains(venue, "symposium") {
		return "inproceedings"
	}
	return "article"
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
