package dedupe

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"refcheck/internal/reference"
)

// Letters and digits in any script survive normalization; \w would strip
// accented letters.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// Signature is a normalized projection of a record used only for
// similarity comparison. It is derived per run and never persisted.
type Signature struct {
	Title    string   // lowercased, punctuation stripped, whitespace collapsed
	Surnames []string // sorted lowercase author surnames
	Year     string
	DOI      string // normalized (prefix stripped, lowercased)
	Journal  string
}

// NewSignature derives a signature from a record. Absent fields stay zero
// and are excluded from comparison.
func NewSignature(rec reference.Record) Signature {
	var sig Signature

	if rec.Title != "" {
		sig.Title = NormalizeText(rec.Title)
	}
	if len(rec.Authors) > 0 {
		surnames := make([]string, 0, len(rec.Authors))
		for _, a := range rec.Authors {
			if s := reference.Surname(a); s != "" {
				surnames = append(surnames, strings.ToLower(s))
			}
		}
		sort.Strings(surnames)
		sig.Surnames = surnames
	}
	if rec.Year != 0 {
		sig.Year = strconv.Itoa(rec.Year)
	}
	if rec.DOI != "" {
		sig.DOI = reference.NormalizeDOI(rec.DOI)
	}
	if rec.Journal != "" {
		sig.Journal = NormalizeText(rec.Journal)
	}

	return sig
}

// NormalizeText lowercases, strips punctuation, and collapses whitespace.
func NormalizeText(s string) string {
	s = nonWord.ReplaceAllString(strings.ToLower(s), "")
	return strings.Join(strings.Fields(s), " ")
}

