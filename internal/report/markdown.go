package report

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Markdown renders the full validation report.
func (r *Result) Markdown() string {
	var b strings.Builder

	b.WriteString("# Reference Validation Report\n")
	b.WriteString(strings.Repeat("=", 50) + "\n")
	b.WriteString(fmt.Sprintf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05")))

	s := r.Summary()
	b.WriteString("## Summary\n")
	b.WriteString(fmt.Sprintf("- Original references: %d\n", s.Original))
	b.WriteString(fmt.Sprintf("- Duplicates removed: %d\n", s.DuplicatesRemoved))
	b.WriteString(fmt.Sprintf("- Format corrections: %d\n", s.FormatCorrections))
	b.WriteString(fmt.Sprintf("- Spelling corrections: %d\n", s.SpellingCorrections))
	b.WriteString(fmt.Sprintf("- Invalid references: %d\n", s.Invalid))
	b.WriteString(fmt.Sprintf("- Final valid references: %d\n", s.Final))
	b.WriteString(fmt.Sprintf("- Total data corrections: %d\n\n", s.DataCorrections))

	b.WriteString("## Processing Log\n")
	for _, line := range r.Log {
		b.WriteString("- " + line + "\n")
	}
	b.WriteString("\n")

	if len(r.DuplicatesRemoved) > 0 {
		b.WriteString("## Duplicates Removed\n")
		for i, dup := range r.DuplicatesRemoved {
			b.WriteString(fmt.Sprintf("%d. Key: %s\n", i+1, dup.Record.Key))
			b.WriteString(fmt.Sprintf("   Reason: %s\n", dup.Reason))
			b.WriteString(fmt.Sprintf("   Similarity Score: %.2f\n\n", dup.Score))
		}
	}

	writeCorrectionGroups(&b, "## Format Corrections", r.FormatCorrections)
	writeCorrectionGroups(&b, "## Spelling Corrections", r.SpellingCorrections)

	if len(r.Outcomes) > 0 {
		b.WriteString("## Verification Outcomes\n")
		for i, o := range r.Outcomes {
			b.WriteString(fmt.Sprintf("%d. Reference: %s\n", i+1, o.Key))
			b.WriteString(fmt.Sprintf("   Status: %s\n", o.Status))
			if o.Method != "" {
				b.WriteString(fmt.Sprintf("   Search Method: %s\n", o.Method))
			}
			for _, check := range o.Checks {
				b.WriteString(fmt.Sprintf("   - %s\n", check))
			}
			for _, issue := range o.Issues {
				b.WriteString(fmt.Sprintf("   - Issue: %s\n", issue))
			}
			b.WriteString("\n")
		}
	}

	if corrected := r.correctedRecords(); len(corrected) > 0 {
		b.WriteString("## Corrections by Reference\n")
		n := 0
		for _, rc := range corrected {
			n++
			b.WriteString(fmt.Sprintf("%d. Reference: %s\n", n, rc.Key))
			for _, c := range rc.Corrections {
				if c.Added() {
					b.WriteString(fmt.Sprintf("   - %s added: '%s' (%s)\n", c.Field, c.After, c.Source))
				} else {
					b.WriteString(fmt.Sprintf("   - %s corrected: '%s' → '%s' (%s)\n", c.Field, c.Before, c.After, c.Source))
				}
			}
			b.WriteString("\n")
		}
	}

	if len(r.Invalid) > 0 {
		b.WriteString("## Invalid References\n")
		for i, inv := range r.Invalid {
			b.WriteString(fmt.Sprintf("%d. Key: %s\n", i+1, inv.Record.Key))
			b.WriteString(fmt.Sprintf("   Reason: %s\n", inv.Reason))
			if len(inv.Checks) > 0 {
				b.WriteString(fmt.Sprintf("   Search Attempts: %s\n", strings.Join(inv.Checks, ", ")))
			}
			b.WriteString("\n")
		}
	}

	r.writeStatistics(&b)

	return b.String()
}

// correctedRecords returns, per surviving record, its collapsed
// correction list. Records with no effective corrections are skipped.
func (r *Result) correctedRecords() []RecordCorrections {
	var out []RecordCorrections
	for _, rec := range r.Records {
		finals := FinalCorrections(rec)
		if len(finals) > 0 {
			out = append(out, RecordCorrections{Key: rec.Key, Corrections: finals})
		}
	}
	return out
}

func writeCorrectionGroups(b *strings.Builder, heading string, groups []RecordCorrections) {
	if len(groups) == 0 {
		return
	}
	b.WriteString(heading + "\n")
	for i, g := range groups {
		b.WriteString(fmt.Sprintf("%d. Reference: %s\n", i+1, g.Key))
		for _, c := range g.Corrections {
			b.WriteString(fmt.Sprintf("   - %s: '%s' → '%s'\n", c.Field, c.Before, c.After))
		}
		b.WriteString("\n")
	}
}

// writeStatistics appends the discovery-method and correction-type
// breakdowns.
func (r *Result) writeStatistics(b *strings.Builder) {
	if len(r.Outcomes) == 0 {
		return
	}

	b.WriteString("## Validation Statistics\n")

	methods := make(map[string]int)
	for _, o := range r.Outcomes {
		m := o.Method
		if m == "" {
			m = "none"
		}
		methods[m]++
	}
	b.WriteString("### Discovery Methods\n")
	for _, m := range sortedKeys(methods) {
		b.WriteString(fmt.Sprintf("- %s: %d references\n", m, methods[m]))
	}
	b.WriteString("\n")

	types := make(map[string]int)
	for _, rec := range r.Records {
		for _, c := range FinalCorrections(rec) {
			label := c.Field
			if c.Added() {
				label += " (added)"
			}
			types[label]++
		}
	}
	if len(types) > 0 {
		b.WriteString("### Correction Breakdown\n")
		for _, t := range sortedKeys(types) {
			b.WriteString(fmt.Sprintf("- %s: %d corrections\n", t, types[t]))
		}
		b.WriteString("\n")
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
