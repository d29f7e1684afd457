package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"refcheck/internal/reference"
)

var (
	bibitemMarker = regexp.MustCompile(`\\bibitem\{([^}]+)\}`)
	trailingLink  = regexp.MustCompile(`(https?://\S+)\.?\s*$`)
	parenYear     = regexp.MustCompile(`\((\d{4})\)`)
	boldVolume    = regexp.MustCompile(`\\textbf\{([^}]+)\}(?:\(([^)]+)\))?`)
	trailingPages = regexp.MustCompile(`\b(?:pp?\.\s*)?([0-9]+(?:[-–—]+[0-9]+)?|e[0-9]+)\b\s*\.?\s*$`)
)

// parseBibitems splits \bibitem-delimited text into records.
func parseBibitems(content string) ([]reference.Record, []error) {
	markers := bibitemMarker.FindAllStringSubmatchIndex(content, -1)

	var recs []reference.Record
	var diags []error

	for i, m := range markers {
		key := strings.TrimSpace(content[m[2]:m[3]])
		end := len(content)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		body := strings.TrimSpace(content[m[1]:end])

		rec, err := parseBibitemBody(key, body)
		if err != nil {
			diags = append(diags, err)
			continue
		}
		recs = append(recs, rec)
	}

	return recs, diags
}

// parseBibitemBody recovers fields from one entry body by reverse
// elimination: link, then year, then volume/issue, then pages, each
// stripped from the text before the next step so the final comma split
// sees only author/title/journal material.
func parseBibitemBody(key, body string) (reference.Record, error) {
	rec := reference.Record{
		Key:          key,
		RawText:      body,
		SourceFormat: reference.FormatBibitem,
		Status:       reference.StatusUnverified,
	}

	text := body

	if loc := trailingLink.FindStringSubmatchIndex(text); loc != nil {
		assignLink(&rec, text[loc[2]:loc[3]])
		text = strings.TrimSpace(text[:loc[0]])
	}

	if years := parenYear.FindAllStringSubmatch(text, -1); len(years) > 0 {
		last := years[len(years)-1][1]
		if y, err := strconv.Atoi(last); err == nil {
			rec.Year = y
		}
		text = strings.TrimSpace(strings.Replace(text, "("+last+")", "", 1))
	}

	if m := boldVolume.FindStringSubmatch(text); m != nil {
		rec.Volume = strings.TrimSpace(m[1])
		if m[2] != "" {
			rec.Issue = strings.TrimSpace(m[2])
		}
		text = strings.TrimSpace(boldVolume.ReplaceAllString(text, ""))
	}

	if m := trailingPages.FindStringSubmatchIndex(text); m != nil {
		rec.Pages = strings.TrimSpace(text[m[2]:m[3]])
		text = strings.TrimSpace(text[:m[0]])
	}

	splitNarrative(&rec, text)

	rec.Title = cleanField(rec.Title)
	rec.Journal = cleanField(rec.Journal)
	authors := rec.Authors[:0]
	for _, a := range rec.Authors {
		if a = cleanField(a); a != "" {
			authors = append(authors, a)
		}
	}
	rec.Authors = authors

	if len(rec.Authors) == 0 && rec.Title == "" && rec.Journal == "" &&
		rec.Year == 0 && rec.DOI == "" && rec.URL == "" {
		return reference.Record{}, fmt.Errorf("bibitem %q: no recognizable fields", key)
	}
	return rec, nil
}

// splitNarrative assigns the remaining comma-separated segments to authors,
// title, and journal. Author-like segments accumulate until the first
// segment that fails the classifier, which starts the title; venue-like
// segments from then on belong to the journal.
func splitNarrative(rec *reference.Record, text string) {
	var parts []string
	for _, p := range strings.Split(text, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	switch len(parts) {
	case 0:
		return
	case 1:
		rec.Authors = []string{parts[0]}
		return
	case 2:
		rec.Authors = []string{parts[0]}
		if VenueLike(parts[1]) {
			rec.Journal = parts[1]
		} else {
			rec.Title = parts[1]
		}
		return
	}

	var journalParts []string
	inAuthors := true
	inTitle := false

	for _, part := range parts {
		switch {
		case inAuthors && AuthorLike(part) && !VenueLike(part):
			rec.Authors = append(rec.Authors, part)
		case inAuthors:
			inAuthors = false
			inTitle = true
			rec.Title = part
		case inTitle && !VenueLike(part):
			if rec.Title != "" {
				rec.Title += ", " + part
			} else {
				rec.Title = part
			}
		default:
			inTitle = false
			journalParts = append(journalParts, part)
		}
	}

	rec.Journal = strings.Join(journalParts, ", ")
}
