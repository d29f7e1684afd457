// Package report aggregates the outcome of a validation run into the
// structured result consumed by callers and its human-readable rendering.
package report

import (
	"refcheck/internal/dedupe"
	"refcheck/internal/reference"
	"refcheck/internal/verify"
)

// RecordCorrections groups the corrections one pipeline stage made to one
// record.
type RecordCorrections struct {
	Key         string                 `json:"key"`
	Corrections []reference.Correction `json:"corrections"`
}

// InvalidRecord is a record excluded from the verified set, with the
// reason it could not be verified.
type InvalidRecord struct {
	Record reference.Record `json:"record"`
	Reason string           `json:"reason"`
	Checks []string         `json:"checks,omitempty"`
}

// Result is the full outcome of one validation run.
type Result struct {
	OriginalCount int `json:"original_count"`
	FinalCount    int `json:"final_count"`

	// Records are the surviving verified records, in original input order.
	Records []reference.Record `json:"records"`

	DuplicatesRemoved   []dedupe.Removed    `json:"duplicates_removed,omitempty"`
	FormatCorrections   []RecordCorrections `json:"format_corrections,omitempty"`
	SpellingCorrections []RecordCorrections `json:"spelling_corrections,omitempty"`
	Outcomes            []verify.Outcome    `json:"verification_outcomes,omitempty"`
	Invalid             []InvalidRecord     `json:"invalid,omitempty"`

	// Log is the ordered human-readable processing log.
	Log []string `json:"log"`
}

// Summary holds the headline counts for a run.
type Summary struct {
	Original            int `json:"original"`
	DuplicatesRemoved   int `json:"duplicates_removed"`
	FormatCorrections   int `json:"format_corrections"`
	SpellingCorrections int `json:"spelling_corrections"`
	DataCorrections     int `json:"data_corrections"`
	Invalid             int `json:"invalid"`
	Final               int `json:"final"`
}

// Summary computes the headline counts.
func (r *Result) Summary() Summary {
	data := 0
	for _, o := range r.Outcomes {
		data += o.Applied
	}
	return Summary{
		Original:            r.OriginalCount,
		DuplicatesRemoved:   len(r.DuplicatesRemoved),
		FormatCorrections:   len(r.FormatCorrections),
		SpellingCorrections: len(r.SpellingCorrections),
		DataCorrections:     data,
		Invalid:             len(r.Invalid),
		Final:               r.FinalCount,
	}
}

// sourceRank orders correction sources by authority; higher wins when the
// same field was corrected by more than one stage.
func sourceRank(s reference.Source) int {
	switch s {
	case reference.SourceRegistry:
		return 3
	case reference.SourceSpelling:
		return 2
	case reference.SourceFormat:
		return 1
	}
	return 0
}

// FinalCorrections collapses a record's correction log to one entry per
// field: the earliest Before, the latest After, attributed to the most
// authoritative source that touched the field. Fields whose value ended up
// back where it started are dropped.
func FinalCorrections(rec reference.Record) []reference.Correction {
	type agg struct {
		first reference.Correction
		last  reference.Correction
		src   reference.Source
	}

	byField := make(map[string]*agg)
	var order []string

	for _, c := range rec.Corrections {
		a, ok := byField[c.Field]
		if !ok {
			byField[c.Field] = &agg{first: c, last: c, src: c.Source}
			order = append(order, c.Field)
			continue
		}
		a.last = c
		if sourceRank(c.Source) > sourceRank(a.src) {
			a.src = c.Source
		}
	}

	var out []reference.Correction
	for _, field := range order {
		a := byField[field]
		if a.first.Before == a.last.After {
			continue
		}
		out = append(out, reference.Correction{
			Field:  field,
			Before: a.first.Before,
			After:  a.last.After,
			Source: a.src,
		})
	}
	return out
}
