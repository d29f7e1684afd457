package verify

import (
	"regexp"
	"strings"

	"refcheck/internal/config"
	"refcheck/internal/crossref"
	"refcheck/internal/dedupe"
)

// Accented letters must survive the cleanup or non-English titles turn
// into unsearchable fragments, so the class is Unicode-aware rather than \w.
var titlePunct = regexp.MustCompile(`[^\p{L}\p{N}\s]`)

// cleanTitleQuery strips punctuation and collapses whitespace so the
// search query and similarity comparison see the same text.
func cleanTitleQuery(title string) string {
	title = titlePunct.ReplaceAllString(title, " ")
	return strings.Join(strings.Fields(title), " ")
}

// titleQueries yields the progressive prefixes tried against the registry:
// the full title, then its first 10 words, then its first 6. Duplicate
// prefixes (short titles) collapse into one attempt.
func titleQueries(clean string) []string {
	words := strings.Fields(clean)

	var queries []string
	seen := make(map[string]bool)
	for _, n := range []int{len(words), 10, 6} {
		if n <= 0 || n > len(words) {
			n = len(words)
		}
		q := strings.Join(words[:n], " ")
		if !seen[q] {
			seen[q] = true
			queries = append(queries, q)
		}
	}
	return queries
}

// bestCandidate scores each returned work against the local title and
// returns the best one if its combined score exceeds the accept threshold.
// The score blends full-string similarity with word-set overlap so neither
// a reshuffled word order nor a shared prefix alone can fake a match.
func bestCandidate(cleanTitle string, items []crossref.Work, limits config.Limits) (*crossref.Work, float64) {
	local := strings.ToLower(cleanTitle)

	var best *crossref.Work
	bestScore := 0.0

	for i := range items {
		candidate := items[i].PrimaryTitle()
		if candidate == "" {
			continue
		}
		remote := strings.ToLower(candidate)

		score := limits.TitleRatioWeight*dedupe.Ratio(local, remote) +
			limits.WordOverlapWeight*dedupe.WordOverlap(local, remote)

		if score > bestScore && score > limits.AcceptThreshold {
			bestScore = score
			best = &items[i]
		}
	}

	return best, bestScore
}
