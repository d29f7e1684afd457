package correct

import (
	"sort"
	"strings"
	"sync"
)

// canonicalJournals maps lowercased journal/venue names and common
// abbreviations to their canonical form.
var canonicalJournals = map[string]string{
	"nature":                  "Nature",
	"science":                 "Science",
	"cell":                    "Cell",
	"lancet":                  "The Lancet",
	"pnas":                    "Proceedings of the National Academy of Sciences",
	"ieee":                    "IEEE",
	"acm":                     "ACM",
	"machine learning":        "Machine Learning",
	"artificial intelligence": "Artificial Intelligence",

	"nature machine intelligence": "Nature Machine Intelligence",
	"nature communications":       "Nature Communications",
	"nature methods":              "Nature Methods",

	"ieee transactions on pattern analysis and machine intelligence": "IEEE Transactions on Pattern Analysis and Machine Intelligence",
	"ieee transactions on neural networks and learning systems":      "IEEE Transactions on Neural Networks and Learning Systems",
	"ieee transactions on image processing":                          "IEEE Transactions on Image Processing",
	"ieee transactions on knowledge and data engineering":            "IEEE Transactions on Knowledge and Data Engineering",

	"acm computing surveys":                "ACM Computing Surveys",
	"acm transactions on graphics":         "ACM Transactions on Graphics",
	"journal of machine learning research": "Journal of Machine Learning Research",

	"neurips": "Advances in Neural Information Processing Systems",
	"icml":    "International Conference on Machine Learning",
	"iclr":    "International Conference on Learning Representations",
	"aaai":    "AAAI Conference on Artificial Intelligence",
	"ijcai":   "International Joint Conference on Artificial Intelligence",
	"cvpr":    "IEEE Conference on Computer Vision and Pattern Recognition",
	"iccv":    "IEEE International Conference on Computer Vision",
	"eccv":    "European Conference on Computer Vision",
}

var (
	journalKeysOnce sync.Once
	journalKeys     []string
)

func journalKeysByLength() []string {
	journalKeysOnce.Do(func() {
		for k := range canonicalJournals {
			journalKeys = append(journalKeys, k)
		}
		sort.Slice(journalKeys, func(i, j int) bool {
			if len(journalKeys[i]) != len(journalKeys[j]) {
				return len(journalKeys[i]) > len(journalKeys[j])
			}
			return journalKeys[i] < journalKeys[j]
		})
	})
	return journalKeys
}

// Journal normalizes a venue name. Exact (case-insensitive) table hits and
// substring matches return the canonical form; otherwise the name is
// re-cased with minor words lowered.
func Journal(journal string) string {
	journal = strings.TrimSpace(journal)
	if journal == "" {
		return journal
	}

	lower := strings.ToLower(journal)
	if canonical, ok := canonicalJournals[lower]; ok {
		return canonical
	}

	// Longest keys first so "ieee transactions on ..." wins over "ieee".
	for _, known := range journalKeysByLength() {
		if strings.Contains(lower, known) || strings.Contains(known, lower) {
			return canonicalJournals[known]
		}
	}

	words := strings.Fields(journal)
	for i, w := range words {
		if i > 0 && minorWords[strings.ToLower(w)] {
			words[i] = strings.ToLower(w)
		} else if !isTrustedCase(w) && !isAcronym(w) {
			words[i] = capitalize(w)
		}
	}
	return strings.Join(words, " ")
}
