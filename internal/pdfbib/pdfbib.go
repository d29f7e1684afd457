// Package pdfbib extracts bibliography text from PDF files so a reference
// list shipped as a PDF can be fed to the plain-line parser.
package pdfbib

import (
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DOI pattern: 10.XXXX/... where XXXX is 4+ digits
var doiPattern = regexp.MustCompile(`10\.\d{4,9}/[^\s<>"{}|\\^~\[\]` + "`" + `]+`)

// ExtractLines reads every page of a PDF and returns its non-empty text
// lines, one candidate reference per line.
func ExtractLines(filePath string) ([]string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		for _, line := range strings.Split(text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
	}

	return lines, nil
}

// FindDOIs returns every DOI-shaped token in the text, trailing
// punctuation stripped.
func FindDOIs(text string) []string {
	var dois []string
	for _, m := range doiPattern.FindAllString(text, -1) {
		dois = append(dois, strings.TrimRight(m, ".,;"))
	}
	return dois
}

// LinkifyDOIs appends a resolver URL to lines that carry a bare DOI but no
// link of their own. PDF text often prints "doi:10.xxxx/yyyy" without a URL,
// which the plain-line parser would otherwise miss as an identifier.
func LinkifyDOIs(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line
		if strings.Contains(line, "http://") || strings.Contains(line, "https://") {
			continue
		}
		if dois := FindDOIs(line); len(dois) > 0 {
			out[i] = line + " https://doi.org/" + dois[0]
		}
	}
	return out
}
