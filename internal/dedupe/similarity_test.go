package dedupe

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRatio(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"kitten", "kitten", 1.0},
		{"", "", 1.0},
		{"abc", "", 0.0},
		{"", "abc", 0.0},
		{"kitten", "sitten", 1.0 - 1.0/6.0},
		{"abcd", "wxyz", 0.0},
	}

	for _, tt := range tests {
		if got := Ratio(tt.a, tt.b); !almostEqual(got, tt.want) {
			t.Errorf("Ratio(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatio_Symmetric(t *testing.T) {
	a, b := "generalized minimal residual", "generalised minimal residual"
	if Ratio(a, b) != Ratio(b, a) {
		t.Error("Ratio must be symmetric")
	}
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		a, b []string
		want float64
	}{
		{[]string{"saad", "schultz"}, []string{"saad", "schultz"}, 1.0},
		{[]string{"saad"}, []string{"schultz"}, 0.0},
		{[]string{"saad", "schultz"}, []string{"saad"}, 0.5},
		{nil, []string{"saad"}, 0.0},
		{nil, nil, 0.0},
	}

	for _, tt := range tests {
		if got := Jaccard(tt.a, tt.b); !almostEqual(got, tt.want) {
			t.Errorf("Jaccard(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestWordOverlap(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"deep residual learning", "deep residual learning", 1.0},
		{"deep residual learning", "residual deep learning", 1.0},
		{"deep residual learning", "shallow feedforward nets", 0.0},
		{"deep learning", "deep residual learning nets", 0.5},
		// Denominator is the larger set, not the union: one shared word
		// out of two per side scores 0.5, not 1/3.
		{"alpha beta", "beta gamma", 0.5},
		{"", "anything", 0.0},
	}

	for _, tt := range tests {
		if got := WordOverlap(tt.a, tt.b); !almostEqual(got, tt.want) {
			t.Errorf("WordOverlap(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	got := NormalizeText("  GMRES:  A Generalized, Minimal-Residual Algorithm. ")
	want := "gmres a generalized minimalresidual algorithm"
	if got != want {
		t.Errorf("NormalizeText = %q, want %q", got, want)
	}
}

func TestNormalizeText_KeepsAccentedLetters(t *testing.T) {
	got := NormalizeText("Étude de la Résolution Numérique!")
	want := "étude de la résolution numérique"
	if got != want {
		t.Errorf("NormalizeText = %q, want %q", got, want)
	}
}
