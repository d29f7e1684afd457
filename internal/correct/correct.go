// Package correct applies local format and spelling rules to records.
// It never touches the network and never raises: a field the rules cannot
// parse is left as it was.
package correct

import "refcheck/internal/reference"

// FormatRecord normalizes a record's authors, title, and journal surface
// form in place, appending one provenance entry per changed field. Running
// it again on its own output is a no-op.
func FormatRecord(rec *reference.Record) []reference.Correction {
	start := len(rec.Corrections)

	if len(rec.Authors) > 0 {
		if fixed, changed := Authors(rec.Authors); changed {
			rec.ApplyAuthors(fixed, reference.SourceFormat)
		}
	}

	if rec.Title != "" {
		if fixed := Title(rec.Title); fixed != rec.Title {
			rec.Apply("title", fixed, reference.SourceFormat)
		}
	}

	if rec.Journal != "" {
		if fixed := Journal(rec.Journal); fixed != rec.Journal {
			rec.Apply("journal", fixed, reference.SourceFormat)
		}
	}

	return rec.Corrections[start:]
}

// SpellRecord fixes known misspellings in the record's title in place,
// appending a provenance entry if anything changed.
func SpellRecord(rec *reference.Record) []reference.Correction {
	start := len(rec.Corrections)

	if rec.Title != "" {
		if fixed := Spelling(rec.Title); fixed != rec.Title {
			rec.Apply("title", fixed, reference.SourceSpelling)
		}
	}

	return rec.Corrections[start:]
}
