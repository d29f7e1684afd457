package pdfbib

import (
	"reflect"
	"testing"
)

func TestFindDOIs(t *testing.T) {
	text := `1. Saad Y, Schultz MH. SIAM J Sci Stat Comput 1986. doi:10.1137/0907058.
2. Jumper J, et al. Nature 2021;596:583-589. https://doi.org/10.1038/s41586-021-03819-2,
3. No identifier on this line.`

	got := FindDOIs(text)
	want := []string{"10.1137/0907058", "10.1038/s41586-021-03819-2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindDOIs = %v, want %v", got, want)
	}
}

func TestFindDOIs_None(t *testing.T) {
	if got := FindDOIs("nothing resembling an identifier"); got != nil {
		t.Errorf("expected no DOIs, got %v", got)
	}
}

func TestLinkifyDOIs(t *testing.T) {
	lines := []string{
		"Saad Y, Schultz MH. SIAM J Sci Stat Comput 1986. doi:10.1137/0907058.",
		"Jumper J, et al. Nature 2021. https://doi.org/10.1038/s41586-021-03819-2",
		"No identifier on this line.",
	}

	got := LinkifyDOIs(lines)
	want := []string{
		"Saad Y, Schultz MH. SIAM J Sci Stat Comput 1986. doi:10.1137/0907058. https://doi.org/10.1137/0907058",
		"Jumper J, et al. Nature 2021. https://doi.org/10.1038/s41586-021-03819-2",
		"No identifier on this line.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LinkifyDOIs = %v, want %v", got, want)
	}
}
