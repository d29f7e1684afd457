// Package dedupe removes near-duplicate records using weighted
// multi-field similarity.
package dedupe

import (
	"fmt"

	"refcheck/internal/config"
	"refcheck/internal/reference"
)

// Removed describes a record excluded as a duplicate of an earlier one.
type Removed struct {
	Record     reference.Record `json:"record"`
	MatchIndex int              `json:"match_index"` // index into the surviving set
	Score      float64          `json:"score"`
	Reason     string           `json:"reason"`
}

// Deduplicate returns the records that survive duplicate removal, in input
// order, plus the removed records annotated with their surviving match.
// The first-seen record of any duplicate group always wins.
func Deduplicate(recs []reference.Record, limits config.Limits) ([]reference.Record, []Removed) {
	var unique []reference.Record
	var seen []Signature
	var removed []Removed

	for _, rec := range recs {
		sig := NewSignature(rec)

		dup := false
		for i, prev := range seen {
			score, matchType := Compare(sig, prev, limits)
			if score > limits.DuplicateThreshold {
				removed = append(removed, Removed{
					Record:     rec,
					MatchIndex: i,
					Score:      score,
					Reason:     fmt.Sprintf("similar to reference #%d (%s, similarity: %.2f)", i+1, matchType, score),
				})
				dup = true
				break
			}
		}

		if !dup {
			unique = append(unique, rec)
			seen = append(seen, sig)
		}
	}

	return unique, removed
}

// Compare scores two signatures. A DOI match is definitive regardless of
// the other fields. Otherwise the score is a weighted combination over the
// fields both signatures carry, with the weights renormalized so missing
// fields do not drag the score down.
func Compare(a, b Signature, limits config.Limits) (float64, string) {
	if a.DOI != "" && b.DOI != "" && a.DOI == b.DOI {
		return 1.0, "identifier match"
	}

	total := 0.0
	weight := 0.0
	var matched []string

	add := func(name string, w, sim float64) {
		total += sim * w
		weight += w
		if sim > 0.8 {
			matched = append(matched, name)
		}
	}

	if a.Title != "" && b.Title != "" {
		add("title", limits.TitleWeight, Ratio(a.Title, b.Title))
	}
	if len(a.Surnames) > 0 && len(b.Surnames) > 0 {
		add("authors", limits.AuthorWeight, Jaccard(a.Surnames, b.Surnames))
	}
	if a.Year != "" && b.Year != "" {
		sim := 0.0
		if a.Year == b.Year {
			sim = 1.0
		}
		add("year", limits.YearWeight, sim)
	}
	if a.Journal != "" && b.Journal != "" {
		add("journal", limits.JournalWeight, Ratio(a.Journal, b.Journal))
	}

	if weight == 0 {
		return 0.0, "no comparable fields"
	}

	matchType := "partial match"
	if len(matched) > 0 {
		matchType = joinFields(matched) + " similarity"
	}
	return total / weight, matchType
}

func joinFields(fields []string) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += ", "
		}
		out += f
	}
	return out
}
