// Package pipeline wires the validation stages into one run:
// parse → dedupe → correct → verify → report. Control flows strictly
// forward; each stage consumes the full collection its predecessor
// produced.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"refcheck/internal/config"
	"refcheck/internal/correct"
	"refcheck/internal/dedupe"
	"refcheck/internal/parser"
	"refcheck/internal/reference"
	"refcheck/internal/report"
	"refcheck/internal/verify"
)

// Options configures a pipeline run.
type Options struct {
	// Registry performs external verification. When nil the verification
	// stage is skipped and every record stays unverified (offline mode).
	Registry verify.Registry

	// Cache is an optional registry lookup cache.
	Cache verify.Cache

	Limits  config.Limits
	Workers int
}

// Run validates a bibliography end to end. Only whole-batch input
// problems return an error; everything else is recorded in the result.
func Run(ctx context.Context, content string, format reference.Format, opts Options) (*report.Result, error) {
	if opts.Limits == (config.Limits{}) {
		opts.Limits = config.DefaultLimits()
	}

	res := &report.Result{}
	logf := func(f string, args ...any) {
		res.Log = append(res.Log, fmt.Sprintf(f, args...))
	}

	logf("starting validation of %s input", format)

	recs, diags, err := parser.Parse(content, format)
	if err != nil {
		return nil, err
	}
	res.OriginalCount = len(recs)
	logf("parsed %d references", len(recs))
	for _, d := range diags {
		logf("skipped entry: %v", d)
	}

	unique, removed := dedupe.Deduplicate(recs, opts.Limits)
	res.DuplicatesRemoved = removed
	logf("removed %d duplicates", len(removed))

	for i := range unique {
		if cs := correct.FormatRecord(&unique[i]); len(cs) > 0 {
			res.FormatCorrections = append(res.FormatCorrections, report.RecordCorrections{
				Key:         unique[i].Key,
				Corrections: cs,
			})
		}
		if cs := correct.SpellRecord(&unique[i]); len(cs) > 0 {
			res.SpellingCorrections = append(res.SpellingCorrections, report.RecordCorrections{
				Key:         unique[i].Key,
				Corrections: cs,
			})
		}
	}
	logf("applied format corrections to %d references", len(res.FormatCorrections))
	logf("applied spelling corrections to %d references", len(res.SpellingCorrections))

	if opts.Registry == nil {
		res.Records = unique
		res.FinalCount = len(unique)
		logf("verification skipped (offline)")
		logf("validation complete: %d → %d references", res.OriginalCount, res.FinalCount)
		return res, nil
	}

	v := &verify.Verifier{
		Registry: opts.Registry,
		Limits:   opts.Limits,
		Workers:  opts.Workers,
		Cache:    opts.Cache,
	}
	res.Outcomes = v.VerifyAll(ctx, unique)

	for i, rec := range unique {
		if rec.Status == reference.StatusNotFound {
			out := res.Outcomes[i]
			res.Invalid = append(res.Invalid, report.InvalidRecord{
				Record: rec,
				Reason: strings.Join(out.Issues, "; "),
				Checks: out.Checks,
			})
			continue
		}
		res.Records = append(res.Records, rec)
	}
	res.FinalCount = len(res.Records)
	logf("verified %d references, found %d invalid", res.FinalCount, len(res.Invalid))

	logf("validation complete: %d → %d references", res.OriginalCount, res.FinalCount)
	return res, nil
}
