// Package reference defines the core domain types for bibliography entries.
package reference

import (
	"strconv"
	"strings"
)

// Format identifies the input format a record was parsed from. It is kept
// on the record so the corrected entry can be serialized back the same way.
type Format string

const (
	FormatBibitem Format = "bibitem" // LaTeX \bibitem{key} entries
	FormatBibTeX  Format = "bibtex"  // @type{key, field = {value}, ...} entries
	FormatPlain   Format = "plain"   // one free-form reference per line
)

// Status reports how far a record got through external verification.
// It only ever moves forward: unverified can become any of the other
// three, and a verified/not-found record never reverts.
type Status string

const (
	StatusUnverified      Status = "unverified"
	StatusVerifiedByID    Status = "verified-by-id"
	StatusVerifiedByTitle Status = "verified-by-title"
	StatusNotFound        Status = "not-found"
)

// Source identifies the pipeline stage that produced a correction.
type Source string

const (
	SourceParser   Source = "parser"
	SourceFormat   Source = "format"
	SourceSpelling Source = "spelling"
	SourceRegistry Source = "registry"
)

// Correction records a single field mutation: what changed, the old and new
// values, and which stage made the change. Before is empty when the field
// had no prior value (an "added" correction).
type Correction struct {
	Field  string `json:"field"`
	Before string `json:"before,omitempty"`
	After  string `json:"after"`
	Source Source `json:"source"`
}

// Added reports whether this correction filled a previously absent field.
func (c Correction) Added() bool {
	return c.Before == ""
}

// Record is one bibliography entry as it flows through the pipeline.
// String fields use "" and Year uses 0 to mean "not present"; no stage
// ever writes a placeholder value into an absent field.
type Record struct {
	Key string `json:"key"`

	Authors []string `json:"authors,omitempty"`
	Title   string   `json:"title,omitempty"`
	Journal string   `json:"journal,omitempty"`
	Year    int      `json:"year,omitempty"`

	Volume    string `json:"volume,omitempty"`
	Issue     string `json:"issue,omitempty"`
	Pages     string `json:"pages,omitempty"`
	ArticleNo string `json:"article_no,omitempty"`

	DOI string `json:"doi,omitempty"`
	URL string `json:"url,omitempty"`

	// EntryType is the @type of a BibTeX entry (article, inproceedings, ...).
	EntryType string `json:"entry_type,omitempty"`

	// RawText preserves the original entry text for round-tripping entries
	// that could not be fully structured.
	RawText string `json:"raw_text,omitempty"`

	SourceFormat Format `json:"source_format"`
	Status       Status `json:"status"`

	// Corrections is the append-only provenance log. Every field change
	// after parsing appends exactly one entry here.
	Corrections []Correction `json:"corrections,omitempty"`
}

// Apply overwrites a scalar field and appends the matching correction entry
// in the same step. The field's current value is recorded as Before.
func (r *Record) Apply(field, after string, source Source) {
	before := r.Field(field)
	r.Corrections = append(r.Corrections, Correction{
		Field:  field,
		Before: before,
		After:  after,
		Source: source,
	})
	r.setField(field, after)
}

// Field returns the current value of a scalar field by name.
func (r *Record) Field(name string) string {
	switch name {
	case "title":
		return r.Title
	case "journal":
		return r.Journal
	case "volume":
		return r.Volume
	case "issue":
		return r.Issue
	case "pages":
		return r.Pages
	case "article_no":
		return r.ArticleNo
	case "doi":
		return r.DOI
	case "url":
		return r.URL
	}
	return ""
}

func (r *Record) setField(name, value string) {
	switch name {
	case "title":
		r.Title = value
	case "journal":
		r.Journal = value
	case "volume":
		r.Volume = value
	case "issue":
		r.Issue = value
	case "pages":
		r.Pages = value
	case "article_no":
		r.ArticleNo = value
	case "doi":
		r.DOI = value
	case "url":
		r.URL = value
	}
}

// ApplyYear overwrites the year and appends the matching correction entry.
// A zero prior year is recorded as an absent Before.
func (r *Record) ApplyYear(after int, source Source) {
	before := ""
	if r.Year != 0 {
		before = strconv.Itoa(r.Year)
	}
	r.Corrections = append(r.Corrections, Correction{
		Field:  "year",
		Before: before,
		After:  strconv.Itoa(after),
		Source: source,
	})
	r.Year = after
}

// ApplyAuthors replaces the author list and appends one correction entry
// covering the whole list, with the comma-joined forms as before/after.
func (r *Record) ApplyAuthors(after []string, source Source) {
	r.Corrections = append(r.Corrections, Correction{
		Field:  "authors",
		Before: JoinAuthors(r.Authors),
		After:  JoinAuthors(after),
		Source: source,
	})
	r.Authors = after
}

// MarkStatus advances the verification status. Transitions away from a
// terminal status are ignored so the status stays monotonic within a run.
func (r *Record) MarkStatus(s Status) {
	if r.Status == StatusUnverified || r.Status == "" {
		r.Status = s
	}
}

// HasDOI reports whether the record carries an identifier usable for a
// point lookup.
func (r *Record) HasDOI() bool {
	return r.DOI != ""
}

// NormalizeDOI strips resolver prefixes and lowercases a DOI, yielding the
// bare registry form used for comparison and lookups.
func NormalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "http://dx.doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return strings.ToLower(doi)
}
