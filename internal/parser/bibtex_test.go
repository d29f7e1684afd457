package parser

import (
	"reflect"
	"testing"

	"refcheck/internal/reference"
)

const sampleBibTeX = `@article{saad1986,
  author = {Saad, Y. and Schultz, M. H.},
  title = {GMRES: A Generalized Minimal Residual Algorithm},
  journal = {SIAM Journal on Scientific and Statistical Computing},
  year = {1986},
  volume = {7},
  number = {3},
  pages = {856-869},
  doi = {10.1137/0907058},
}`

func TestParseBibTeX_Article(t *testing.T) {
	recs, diags := parseBibTeX(sampleBibTeX)

	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}

	rec := recs[0]
	if rec.Key != "saad1986" {
		t.Errorf("expected key saad1986, got %q", rec.Key)
	}
	if rec.EntryType != "article" {
		t.Errorf("expected entry type article, got %q", rec.EntryType)
	}
	want := []string{"Saad, Y.", "Schultz, M. H."}
	if !reflect.DeepEqual(rec.Authors, want) {
		t.Errorf("authors = %v, want %v", rec.Authors, want)
	}
	if rec.Title != "GMRES: A Generalized Minimal Residual Algorithm" {
		t.Errorf("unexpected title: %q", rec.Title)
	}
	if rec.Year != 1986 {
		t.Errorf("expected year 1986, got %d", rec.Year)
	}
	if rec.Volume != "7" || rec.Issue != "3" {
		t.Errorf("expected volume 7 issue 3, got %q/%q", rec.Volume, rec.Issue)
	}
	if rec.DOI != "10.1137/0907058" {
		t.Errorf("unexpected DOI: %q", rec.DOI)
	}
	if rec.SourceFormat != reference.FormatBibTeX {
		t.Errorf("expected bibtex source format, got %s", rec.SourceFormat)
	}
}

func TestParseBibTeX_BooktitleMapsToJournal(t *testing.T) {
	content := `@inproceedings{vaswani2017,
  author = {Vaswani, Ashish and Shazeer, Noam},
  title = {Attention Is All You Need},
  booktitle = {Advances in Neural Information Processing Systems},
  year = {2017},
}`

	recs, _ := parseBibTeX(content)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Journal != "Advances in Neural Information Processing Systems" {
		t.Errorf("booktitle should map to journal, got %q", recs[0].Journal)
	}
	if recs[0].EntryType != "inproceedings" {
		t.Errorf("expected inproceedings, got %q", recs[0].EntryType)
	}
}

func TestParseBibTeX_QuotedValues(t *testing.T) {
	content := `@article{k1,
  title = "The Art of Computer Programming",
  year = "1998",
}`

	recs, _ := parseBibTeX(content)
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Title != "The Art of Computer Programming" {
		t.Errorf("unexpected title: %q", recs[0].Title)
	}
	if recs[0].Year != 1998 {
		t.Errorf("expected year 1998, got %d", recs[0].Year)
	}
}

func TestSplitBibTeXAuthors(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Saad, Y. and Schultz, M. H.", []string{"Saad, Y.", "Schultz, M. H."}},
		{"A. One and B. Two and C. Three", []string{"A. One", "B. Two", "C. Three"}},
		{"Y. Saad, M. Schultz", []string{"Y. Saad", "M. Schultz"}},
		{"Single Author", []string{"Single Author"}},
	}

	for _, tt := range tests {
		if got := splitBibTeXAuthors(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitBibTeXAuthors(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
