package correct

import (
	"regexp"
	"sync"
)

// misspellings maps common typos seen in reference lists to the intended
// word. Matching is whole-word and case-insensitive.
var misspellings = map[string]string{
	"machien":       "machine",
	"learing":       "learning",
	"algoritm":      "algorithm",
	"anaylsis":      "analysis",
	"performace":    "performance",
	"clasification": "classification",
	"optimiztion":   "optimization",
	"recogntion":    "recognition",
	"procesing":     "processing",
	"netowrk":       "network",
	"artifical":     "artificial",
	"inteligence":   "intelligence",
	"expermental":   "experimental",
	"comparision":   "comparison",
	"implemention":  "implementation",
	"evalution":     "evaluation",
}

var (
	spellingOnce sync.Once
	spellingRe   map[*regexp.Regexp]string
)

func spellingPatterns() map[*regexp.Regexp]string {
	spellingOnce.Do(func() {
		spellingRe = make(map[*regexp.Regexp]string, len(misspellings))
		for wrong, right := range misspellings {
			re := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(wrong) + `\b`)
			spellingRe[re] = right
		}
	})
	return spellingRe
}

// Spelling replaces known misspellings in a text field. Unknown words are
// never touched; there is no guessing.
func Spelling(text string) string {
	if text == "" {
		return text
	}
	for re, right := range spellingPatterns() {
		text = re.ReplaceAllString(text, right)
	}
	return text
}
