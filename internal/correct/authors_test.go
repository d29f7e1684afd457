package correct

import (
	"reflect"
	"testing"
)

func TestAuthor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"yousef saad", "Y. Saad"},
		{"y. saad", "Y. Saad"},
		{"Yousef Saad", "Y. Saad"},
		{"martin h. schultz", "M.H. Schultz"},
		{"Y. Saad", "Y. Saad"},
		{"M.H. Schultz", "M.H. Schultz"},
		{"Saad", "Saad"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Author(tt.in); got != tt.want {
			t.Errorf("Author(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAuthor_Idempotent(t *testing.T) {
	for _, name := range []string{"yousef saad", "martin h. schultz", "Alice Smith"} {
		once := Author(name)
		if twice := Author(once); twice != once {
			t.Errorf("Author not idempotent for %q: %q then %q", name, once, twice)
		}
	}
}

func TestAuthors(t *testing.T) {
	fixed, changed := Authors([]string{"y. saad", "M. Schultz"})
	if !changed {
		t.Error("expected changed to be true")
	}
	want := []string{"Y. Saad", "M. Schultz"}
	if !reflect.DeepEqual(fixed, want) {
		t.Errorf("Authors = %v, want %v", fixed, want)
	}

	same, changed := Authors(want)
	if changed {
		t.Error("already-normalized list must report unchanged")
	}
	if !reflect.DeepEqual(same, want) {
		t.Errorf("Authors = %v, want %v", same, want)
	}
}
