package reference

import "strings"

// JoinAuthors renders an author list as a single comma-separated string,
// the form used in correction logs and serialized citations.
func JoinAuthors(authors []string) string {
	return strings.Join(authors, ", ")
}

// SplitAuthors splits a comma-separated author string into individual
// names, dropping empty segments.
func SplitAuthors(s string) []string {
	var authors []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			authors = append(authors, part)
		}
	}
	return authors
}

// Surname returns the family-name portion of an author string, taken as
// the last whitespace-separated token.
func Surname(author string) string {
	fields := strings.Fields(author)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
