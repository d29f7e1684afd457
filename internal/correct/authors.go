package correct

import (
	"strings"
	"unicode"
)

// Author normalizes one author name to "Initials Surname" form
// (e.g. "yousef saad" -> "Y. Saad"). Names already carrying a leading
// initial are left untouched, and a name that cannot be decomposed is
// returned unchanged rather than guessed at.
func Author(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}

	if hasLeadingInitial(name) {
		return name
	}

	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}

	surname := parts[len(parts)-1]
	if r := []rune(surname); unicode.IsLower(r[0]) {
		surname = string(unicode.ToUpper(r[0])) + string(r[1:])
	}

	var initials strings.Builder
	for _, given := range parts[:len(parts)-1] {
		if strings.HasSuffix(given, ".") && len(given) <= 3 {
			initials.WriteString(strings.ToUpper(given))
			continue
		}
		r := []rune(given)
		initials.WriteRune(unicode.ToUpper(r[0]))
		initials.WriteString(".")
	}

	return initials.String() + " " + surname
}

// hasLeadingInitial reports whether the name already starts with an
// abbreviated given name like "F." or "F.M.".
func hasLeadingInitial(name string) bool {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return false
	}
	first := parts[0]
	if !strings.Contains(first, ".") || len(first) > 6 {
		return false
	}
	return unicode.IsUpper([]rune(first)[0])
}

// Authors normalizes a full author list. It returns the corrected list and
// whether anything changed.
func Authors(authors []string) ([]string, bool) {
	changed := false
	out := make([]string, len(authors))
	for i, a := range authors {
		out[i] = Author(a)
		if out[i] != a {
			changed = true
		}
	}
	return out, changed
}
