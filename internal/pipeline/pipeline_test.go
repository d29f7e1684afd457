package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"refcheck/internal/crossref"
	"refcheck/internal/parser"
	"refcheck/internal/reference"
)

const testBibliography = `\bibitem{saad1986} Y. Saad, M.H. Schultz, GMRES: a generalized minimal residual algorithm, SIAM Journal on Scientific Computing \textbf{7}(3) (1986) 856-869. https://doi.org/10.1137/0907058

\bibitem{saad1986dup} Y. Saad, M. Schultz, GMRES a generalized minimal residual algorithm, SIAM Journal \textbf{7} (1986). https://doi.org/10.1137/0907058

\bibitem{mystery} A. Nobody, some unfindable machien learing manuscript (2001).`

type stubRegistry struct {
	works map[string]*crossref.Work
}

func (s *stubRegistry) WorksByDOI(ctx context.Context, doi string) (*crossref.Work, error) {
	if w, ok := s.works[reference.NormalizeDOI(doi)]; ok {
		return w, nil
	}
	return nil, crossref.ErrNotFound
}

func (s *stubRegistry) SearchByTitle(ctx context.Context, query string, rows int) ([]crossref.Work, error) {
	return nil, nil
}

func TestRun_Offline(t *testing.T) {
	res, err := Run(context.Background(), testBibliography, reference.FormatBibitem, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.OriginalCount != 3 {
		t.Errorf("expected 3 parsed references, got %d", res.OriginalCount)
	}
	if len(res.DuplicatesRemoved) != 1 {
		t.Fatalf("expected 1 duplicate removed, got %d", len(res.DuplicatesRemoved))
	}
	if res.DuplicatesRemoved[0].Record.Key != "saad1986dup" {
		t.Errorf("wrong duplicate removed: %q", res.DuplicatesRemoved[0].Record.Key)
	}
	if res.FinalCount != 2 {
		t.Errorf("expected 2 final references, got %d", res.FinalCount)
	}

	// No registry: every record stays unverified and none is invalid.
	for _, rec := range res.Records {
		if rec.Status != reference.StatusUnverified {
			t.Errorf("offline record %s has status %s", rec.Key, rec.Status)
		}
	}
	if len(res.Invalid) != 0 || len(res.Outcomes) != 0 {
		t.Errorf("offline run must skip verification: %d invalid, %d outcomes", len(res.Invalid), len(res.Outcomes))
	}

	if !containsLine(res.Log, "verification skipped (offline)") {
		t.Errorf("missing offline log line: %v", res.Log)
	}
}

func TestRun_CorrectionsRecorded(t *testing.T) {
	res, err := Run(context.Background(), testBibliography, reference.FormatBibitem, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The mystery record needs both a title recasing and spelling fixes.
	if len(res.FormatCorrections) == 0 {
		t.Fatal("expected format corrections")
	}
	if len(res.SpellingCorrections) != 1 || res.SpellingCorrections[0].Key != "mystery" {
		t.Fatalf("expected a spelling correction on mystery, got %+v", res.SpellingCorrections)
	}

	var mystery *reference.Record
	for i := range res.Records {
		if res.Records[i].Key == "mystery" {
			mystery = &res.Records[i]
		}
	}
	if mystery == nil {
		t.Fatal("mystery record missing from results")
	}
	if !strings.Contains(mystery.Title, "machine learning") {
		t.Errorf("misspellings not fixed: %q", mystery.Title)
	}
	if len(mystery.Corrections) < 2 {
		t.Errorf("expected provenance for both passes, got %+v", mystery.Corrections)
	}
}

func TestRun_Verified(t *testing.T) {
	reg := &stubRegistry{works: map[string]*crossref.Work{
		"10.1137/0907058": {
			DOI:            "10.1137/0907058",
			Title:          []string{"GMRES: A Generalized Minimal Residual Algorithm for Solving Nonsymmetric Linear Systems"},
			Author:         []crossref.Author{{Given: "Youcef", Family: "Saad"}, {Given: "Martin H", Family: "Schultz"}},
			ContainerTitle: []string{"SIAM Journal on Scientific and Statistical Computing"},
			Volume:         "7",
			Issue:          "3",
			Page:           "856-869",
			PublishedPrint: &crossref.DateParts{DateParts: [][]int{{1986}}},
		},
	}}

	res, err := Run(context.Background(), testBibliography, reference.FormatBibitem, Options{
		Registry: reg,
		Workers:  2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.FinalCount != 1 {
		t.Fatalf("expected 1 verified reference, got %d", res.FinalCount)
	}
	rec := res.Records[0]
	if rec.Key != "saad1986" {
		t.Errorf("unexpected survivor: %q", rec.Key)
	}
	if rec.Status != reference.StatusVerifiedByID {
		t.Errorf("expected verified-by-id, got %s", rec.Status)
	}
	if rec.Journal != "SIAM Journal on Scientific and Statistical Computing" {
		t.Errorf("registry journal not applied: %q", rec.Journal)
	}

	if len(res.Invalid) != 1 || res.Invalid[0].Record.Key != "mystery" {
		t.Fatalf("expected mystery to be invalid, got %+v", res.Invalid)
	}
	if res.Invalid[0].Reason == "" {
		t.Error("invalid record must carry a reason")
	}

	if len(res.Outcomes) != 2 {
		t.Errorf("expected one outcome per unique record, got %d", len(res.Outcomes))
	}
}

func TestRun_EmptyInput(t *testing.T) {
	_, err := Run(context.Background(), "   ", reference.FormatBibitem, Options{})
	if !errors.Is(err, parser.ErrNoReferences) {
		t.Errorf("expected ErrNoReferences, got %v", err)
	}
}

func containsLine(log []string, want string) bool {
	for _, line := range log {
		if line == want {
			return true
		}
	}
	return false
}
