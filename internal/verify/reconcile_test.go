package verify

import (
	"reflect"
	"testing"

	"refcheck/internal/crossref"
	"refcheck/internal/reference"
)

func TestReconcile_FillsMissingFields(t *testing.T) {
	rec := reference.Record{
		Key:   "saad1986",
		Title: "GMRES: A Generalized Minimal Residual Algorithm for Solving Nonsymmetric Linear Systems",
	}

	applied := reconcile(&rec, gmresWork())

	if rec.Journal != "SIAM Journal on Scientific and Statistical Computing" {
		t.Errorf("journal not filled: %q", rec.Journal)
	}
	if rec.Year != 1986 || rec.Volume != "7" || rec.Issue != "3" || rec.Pages != "856-869" {
		t.Errorf("numeric fields not filled: %+v", rec)
	}
	if rec.DOI != "https://doi.org/10.1137/0907058" {
		t.Errorf("DOI not filled in canonical form: %q", rec.DOI)
	}
	if applied != len(rec.Corrections) {
		t.Errorf("applied count %d disagrees with %d corrections", applied, len(rec.Corrections))
	}

	for _, c := range rec.Corrections {
		if c.Source != reference.SourceRegistry {
			t.Errorf("expected registry source on %s, got %s", c.Field, c.Source)
		}
		if !c.Added() {
			t.Errorf("filling an absent field must be an added correction: %+v", c)
		}
	}
}

func TestReconcile_CorrectsMismatch(t *testing.T) {
	rec := reference.Record{
		Key:   "saad1986",
		Title: "GMRES algorithm",
		Year:  1987,
	}

	reconcile(&rec, gmresWork())

	if rec.Title != "GMRES: A Generalized Minimal Residual Algorithm for Solving Nonsymmetric Linear Systems" {
		t.Errorf("title not corrected: %q", rec.Title)
	}
	if rec.Year != 1986 {
		t.Errorf("year not corrected: %d", rec.Year)
	}

	var sawTitle, sawYear bool
	for _, c := range rec.Corrections {
		switch c.Field {
		case "title":
			sawTitle = true
			if c.Before != "GMRES algorithm" || c.Added() {
				t.Errorf("title mismatch must record the old value: %+v", c)
			}
		case "year":
			sawYear = true
			if c.Before != "1987" {
				t.Errorf("year mismatch must record the old value: %+v", c)
			}
		}
	}
	if !sawTitle || !sawYear {
		t.Errorf("expected title and year corrections, got %+v", rec.Corrections)
	}
}

func TestReconcile_MatchingRecordUntouched(t *testing.T) {
	rec := reference.Record{
		Key:     "saad1986",
		Title:   "GMRES: A Generalized Minimal Residual Algorithm for Solving Nonsymmetric Linear Systems",
		Authors: []string{"Y. Saad", "M.H. Schultz"},
		Journal: "SIAM Journal on Scientific and Statistical Computing",
		Year:    1986,
		Volume:  "7",
		Issue:   "3",
		Pages:   "856-869",
		DOI:     "https://doi.org/10.1137/0907058",
	}

	applied := reconcile(&rec, gmresWork())
	if applied != 0 {
		t.Errorf("matching record must need no corrections, got %d: %+v", applied, rec.Corrections)
	}
}

func TestReconcile_SparseWorkNeverFabricates(t *testing.T) {
	rec := reference.Record{
		Key:     "r1",
		Title:   "Some Local Title",
		Journal: "Local Journal",
		Year:    2020,
	}
	work := &crossref.Work{Title: []string{"Some Local Title"}}

	applied := reconcile(&rec, work)

	if applied != 0 {
		t.Errorf("fields absent from the registry must stay untouched, got %d corrections", applied)
	}
	if rec.Journal != "Local Journal" || rec.Year != 2020 {
		t.Errorf("record was mutated: %+v", rec)
	}
}

func TestReconcile_ArticleNumberUsedWithoutPages(t *testing.T) {
	rec := reference.Record{Key: "r1", Title: "Protein Structure Prediction"}
	work := &crossref.Work{
		Title:         []string{"Protein Structure Prediction"},
		ArticleNumber: "583",
	}

	reconcile(&rec, work)

	if rec.ArticleNo != "583" {
		t.Errorf("expected article number 583, got %q", rec.ArticleNo)
	}
	if rec.Pages != "" {
		t.Errorf("pages must stay empty, got %q", rec.Pages)
	}
}

func TestFormatAuthors(t *testing.T) {
	authors := []crossref.Author{
		{Given: "Yousef", Family: "Saad"},
		{Given: "Martin H", Family: "Schultz"},
		{Given: "", Family: "Bourbaki"},
		{Given: "Ignored", Family: ""},
	}

	got := formatAuthors(authors)
	want := []string{"Y. Saad", "M.H. Schultz", "Bourbaki"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("formatAuthors = %v, want %v", got, want)
	}
}
