package correct

import (
	"strings"
	"unicode"
)

// minorWords stay lowercase in titles unless they lead.
var minorWords = map[string]bool{
	"of": true, "the": true, "and": true, "in": true, "on": true,
	"for": true, "with": true, "by": true, "from": true, "to": true,
	"at": true, "a": true, "an": true,
}

// Title re-cases a title that is not already in a plausible capitalized
// form: either its first character is not uppercase, or the whole title is
// shouting. A title that already starts with an uppercase letter and is
// not fully uppercase is trusted as-is.
func Title(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return title
	}

	first := []rune(title)[0]
	shouting := title == strings.ToUpper(title)
	if unicode.IsUpper(first) && !shouting {
		return title
	}

	words := strings.Fields(title)
	for i, w := range words {
		switch {
		case !shouting && (isTrustedCase(w) || isAcronym(w)):
			// Words like "GMRES" or "McKay" were cased deliberately; only a
			// fully shouting title gets them recased.
			words[i] = w
		case i == 0:
			words[i] = capitalize(w)
		case minorWords[strings.ToLower(w)]:
			words[i] = strings.ToLower(w)
		default:
			words[i] = capitalize(w)
		}
	}
	return strings.Join(words, " ")
}

// isTrustedCase reports a word that already starts uppercase without being
// fully uppercase.
func isTrustedCase(w string) bool {
	r := []rune(w)
	return unicode.IsUpper(r[0]) && w != strings.ToUpper(w)
}

// isAcronym reports a multi-letter word written entirely in capitals.
func isAcronym(w string) bool {
	return len([]rune(w)) >= 2 && w == strings.ToUpper(w) && w != strings.ToLower(w)
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	if len(r) == 0 {
		return w
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
