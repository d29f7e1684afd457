package verify

import (
	"strings"
	"unicode"

	"refcheck/internal/crossref"
	"refcheck/internal/reference"
)

// reconcile compares every field present on the authoritative work against
// the local record, appending a registry-sourced correction and updating
// the field on each mismatch or local absence. Fields the registry does
// not carry are never touched: an unverifiable value stays as the user
// wrote it rather than being replaced with a guess. Returns the number of
// corrections applied.
func reconcile(rec *reference.Record, work *crossref.Work) int {
	applied := 0

	if title := work.PrimaryTitle(); title != "" && title != rec.Title {
		rec.Apply("title", title, reference.SourceRegistry)
		applied++
	}

	if authors := formatAuthors(work.Author); len(authors) > 0 {
		if reference.JoinAuthors(authors) != reference.JoinAuthors(rec.Authors) {
			rec.ApplyAuthors(authors, reference.SourceRegistry)
			applied++
		}
	}

	if journal := work.Container(); journal != "" &&
		!strings.EqualFold(journal, rec.Journal) {
		rec.Apply("journal", journal, reference.SourceRegistry)
		applied++
	}

	if year := work.Year(); year != 0 && year != rec.Year {
		rec.ApplyYear(year, reference.SourceRegistry)
		applied++
	}

	if work.Volume != "" && work.Volume != rec.Volume {
		rec.Apply("volume", work.Volume, reference.SourceRegistry)
		applied++
	}

	if work.Issue != "" && work.Issue != rec.Issue {
		rec.Apply("issue", work.Issue, reference.SourceRegistry)
		applied++
	}

	switch {
	case work.Page != "":
		if work.Page != rec.Pages {
			rec.Apply("pages", work.Page, reference.SourceRegistry)
			applied++
		}
	case work.ArticleNumber != "":
		if work.ArticleNumber != rec.ArticleNo {
			rec.Apply("article_no", work.ArticleNumber, reference.SourceRegistry)
			applied++
		}
	}

	if work.DOI != "" {
		canonical := "https://doi.org/" + reference.NormalizeDOI(work.DOI)
		if reference.NormalizeDOI(rec.DOI) != reference.NormalizeDOI(work.DOI) {
			rec.Apply("doi", canonical, reference.SourceRegistry)
			applied++
		}
	}

	return applied
}

// formatAuthors renders registry given/family pairs in "Initials Surname"
// form ("F.M. Last"). An author with no given name keeps just the family
// name.
func formatAuthors(authors []crossref.Author) []string {
	var out []string
	for _, a := range authors {
		if a.Family == "" {
			continue
		}
		if a.Given == "" {
			out = append(out, a.Family)
			continue
		}

		var initials strings.Builder
		for _, name := range strings.Fields(a.Given) {
			initials.WriteRune(unicode.ToUpper([]rune(name)[0]))
			initials.WriteString(".")
		}
		out = append(out, initials.String()+" "+a.Family)
	}
	return out
}
