// Package verify confirms and enriches records against the external
// bibliographic registry.
//
// Verification runs a two-tier protocol per record: an exact identifier
// lookup first, then a fuzzy title search when the identifier is missing
// or unresolvable. An authoritative match drives field reconciliation; a
// record with no match at either tier is marked not-found and excluded
// from the verified set, never padded with invented values.
package verify

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"refcheck/internal/config"
	"refcheck/internal/crossref"
	"refcheck/internal/reference"
)

// Registry is the narrow view of the external registry the verifier
// needs. *crossref.Client satisfies it; tests use a stub.
type Registry interface {
	WorksByDOI(ctx context.Context, doi string) (*crossref.Work, error)
	SearchByTitle(ctx context.Context, query string, rows int) ([]crossref.Work, error)
}

// Cache is an optional lookup cache consulted before the registry.
type Cache interface {
	Get(kind, key string) ([]crossref.Work, bool, error)
	Put(kind, key string, works []crossref.Work) error
}

// Cache entry kinds.
const (
	CacheKindDOI    = "doi"
	CacheKindSearch = "search"
)

const defaultWorkers = 4

// Outcome is the verification result for one record.
type Outcome struct {
	Key     string           `json:"key"`
	Status  reference.Status `json:"status"`
	Method  string           `json:"method,omitempty"` // "identifier" or "title"
	Score   float64          `json:"score,omitempty"`  // title-match score when Method is "title"
	Checks  []string         `json:"checks,omitempty"`
	Issues  []string         `json:"issues,omitempty"`
	Applied int              `json:"applied"` // corrections applied during reconciliation
}

// Verifier runs the two-tier verification protocol.
type Verifier struct {
	Registry Registry
	Limits   config.Limits
	Workers  int   // bounded concurrent lookups; defaults to 4
	Cache    Cache // optional
}

// New returns a Verifier with default limits and worker count.
func New(reg Registry) *Verifier {
	return &Verifier{
		Registry: reg,
		Limits:   config.DefaultLimits(),
		Workers:  defaultWorkers,
	}
}

// VerifyAll verifies every record, mutating them in place. Lookups run
// concurrently under a bounded worker pool, but the returned outcomes are
// in input order and each worker writes only its own index, so no result
// ordering depends on completion order.
func (v *Verifier) VerifyAll(ctx context.Context, recs []reference.Record) []Outcome {
	outcomes := make([]Outcome, len(recs))

	workers := v.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i := range recs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			outcomes[i] = v.verifyOne(ctx, &recs[i])
		}(i)
	}
	wg.Wait()

	return outcomes
}

// verifyOne runs both tiers for a single record.
func (v *Verifier) verifyOne(ctx context.Context, rec *reference.Record) Outcome {
	out := Outcome{Key: rec.Key}

	var work *crossref.Work

	if rec.HasDOI() {
		w, err := v.resolveDOI(ctx, rec.DOI)
		switch {
		case err == nil:
			work = w
			out.Method = "identifier"
			out.Checks = append(out.Checks, "identifier lookup successful")
		case crossref.IsNotFound(err):
			out.Issues = append(out.Issues, "identifier not found in registry")
		default:
			out.Issues = append(out.Issues, fmt.Sprintf("identifier lookup failed: %v", err))
		}
	}

	if work == nil && rec.Title != "" {
		w, score, err := v.searchTitle(ctx, rec.Title)
		switch {
		case err != nil:
			out.Issues = append(out.Issues, fmt.Sprintf("title search failed: %v", err))
		case w != nil:
			work = w
			out.Method = "title"
			out.Score = score
			out.Checks = append(out.Checks, fmt.Sprintf("title search successful (similarity: %.2f)", score))
		default:
			out.Issues = append(out.Issues, "no match above threshold")
		}
	}

	if work == nil {
		if len(out.Issues) == 0 {
			out.Issues = append(out.Issues, "no identifier or title to search with")
		}
		rec.MarkStatus(reference.StatusNotFound)
		out.Status = rec.Status
		return out
	}

	out.Applied = reconcile(rec, work)
	if out.Method == "identifier" {
		rec.MarkStatus(reference.StatusVerifiedByID)
	} else {
		rec.MarkStatus(reference.StatusVerifiedByTitle)
	}
	out.Status = rec.Status
	return out
}

// resolveDOI performs the tier-1 point lookup, consulting the cache first.
func (v *Verifier) resolveDOI(ctx context.Context, doi string) (*crossref.Work, error) {
	key := reference.NormalizeDOI(doi)

	if v.Cache != nil {
		if works, ok, err := v.Cache.Get(CacheKindDOI, key); err == nil && ok && len(works) > 0 {
			return &works[0], nil
		}
	}

	w, err := v.Registry.WorksByDOI(ctx, doi)
	if err != nil {
		return nil, err
	}

	if v.Cache != nil {
		_ = v.Cache.Put(CacheKindDOI, key, []crossref.Work{*w})
	}
	return w, nil
}

// searchTitle performs the tier-2 fuzzy search over progressively shorter
// title prefixes, returning the best candidate above the accept threshold.
func (v *Verifier) searchTitle(ctx context.Context, title string) (*crossref.Work, float64, error) {
	clean := cleanTitleQuery(title)

	var lastErr error
	for _, query := range titleQueries(clean) {
		if len(strings.TrimSpace(query)) < v.Limits.MinQueryLen {
			continue
		}

		items, err := v.searchCached(ctx, query)
		if err != nil {
			lastErr = err
			continue
		}
		if len(items) == 0 {
			continue
		}

		if best, score := bestCandidate(clean, items, v.Limits); best != nil {
			return best, score, nil
		}
	}

	return nil, 0, lastErr
}

func (v *Verifier) searchCached(ctx context.Context, query string) ([]crossref.Work, error) {
	if v.Cache != nil {
		if works, ok, err := v.Cache.Get(CacheKindSearch, query); err == nil && ok {
			return works, nil
		}
	}

	items, err := v.Registry.SearchByTitle(ctx, query, crossref.DefaultSearchRows)
	if err != nil {
		return nil, err
	}

	if v.Cache != nil {
		_ = v.Cache.Put(CacheKindSearch, query, items)
	}
	return items, nil
}
