package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"refcheck/internal/reference"
)

var plainLink = regexp.MustCompile(`https?://\S+`)

// parsePlain treats each non-empty line as one reference. Only a
// parenthesized year and a link are recovered; the rest of the line is
// kept verbatim for downstream handling.
func parsePlain(content string) ([]reference.Record, []error) {
	var recs []reference.Record

	n := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n++

		rec := reference.Record{
			Key:          fmt.Sprintf("ref_%d", n),
			RawText:      line,
			SourceFormat: reference.FormatPlain,
			Status:       reference.StatusUnverified,
		}

		if m := parenYear.FindStringSubmatch(line); m != nil {
			if y, err := strconv.Atoi(m[1]); err == nil {
				rec.Year = y
			}
		}
		if link := plainLink.FindString(line); link != "" {
			assignLink(&rec, link)
		}

		recs = append(recs, rec)
	}

	return recs, nil
}
