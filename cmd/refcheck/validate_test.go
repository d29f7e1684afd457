package main

import (
	"testing"

	"refcheck/internal/reference"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    reference.Format
		wantErr bool
	}{
		{"bibitem", reference.FormatBibitem, false},
		{"BibTeX", reference.FormatBibTeX, false},
		{"PLAIN", reference.FormatPlain, false},
		{"ris", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := parseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSupportedFormats_CoverParser(t *testing.T) {
	if len(supportedFormats) != 3 {
		t.Fatalf("expected 3 supported formats, got %d", len(supportedFormats))
	}
	for _, f := range supportedFormats {
		if _, err := parseFormat(string(f.Name)); err != nil {
			t.Errorf("listed format %q not accepted by parseFormat", f.Name)
		}
	}
}
