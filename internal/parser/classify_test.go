package parser

import "testing"

func TestAuthorLike(t *testing.T) {
	tests := []struct {
		segment string
		want    bool
	}{
		{"Y. Saad", true},
		{"M.H. Schultz", true},
		{"Vorst H.A.", true},
		{"Alice Smith", true},
		{"alice smith", false},
		{"GMRES: a generalized minimal residual algorithm", false},
		{"machine learning", false},
		{"", false},
		{"Saad", false},
	}

	for _, tt := range tests {
		if got := AuthorLike(tt.segment); got != tt.want {
			t.Errorf("AuthorLike(%q) = %v, want %v", tt.segment, got, tt.want)
		}
	}
}

func TestVenueLike(t *testing.T) {
	tests := []struct {
		segment string
		want    bool
	}{
		{"SIAM Journal on Scientific Computing", true},
		{"Proceedings of the IEEE", true},
		{"Nature", true},
		{"ACM Computing Surveys", true},
		{"A fast algorithm for sparse matrices", false},
		{"Y. Saad", false},
	}

	for _, tt := range tests {
		if got := VenueLike(tt.segment); got != tt.want {
			t.Errorf("VenueLike(%q) = %v, want %v", tt.segment, got, tt.want)
		}
	}
}
