package parser

import (
	"strings"
	"unicode"
)

// venueKeywords mark a text segment as naming a journal, conference, or
// publisher rather than an author or title.
var venueKeywords = []string{
	"journal", "proceedings", "conference", "transactions", "letters",
	"ieee", "acm", "springer", "elsevier", "science", "nature",
	"mathematics", "physics", "computing", "engineering",
}

// AuthorLike reports whether a comma-delimited segment looks like a single
// author name: a short token run carrying initials ("S. Zafar"), or a
// two-word capitalized name ("Alice Smith"). It is deliberately a pure
// function so edge cases can be enumerated in tests.
func AuthorLike(segment string) bool {
	words := strings.Fields(segment)
	if len(words) == 0 {
		return false
	}

	if len(words) <= 3 {
		for _, w := range words {
			if len(w) <= 3 && strings.Contains(w, ".") {
				return true
			}
		}
	}

	if len(words) == 2 {
		for _, w := range words {
			r := []rune(w)
			if !unicode.IsUpper(r[0]) {
				return false
			}
		}
		return true
	}

	return false
}

// VenueLike reports whether a segment contains a venue keyword.
func VenueLike(segment string) bool {
	lower := strings.ToLower(segment)
	for _, kw := range venueKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
