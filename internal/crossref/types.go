package crossref

// Work is the subset of a Crossref work record the verifier consumes.
type Work struct {
	Title          []string   `json:"title"`
	Author         []Author   `json:"author"`
	ContainerTitle []string   `json:"container-title"`
	Volume         string     `json:"volume"`
	Issue          string     `json:"issue"`
	Page           string     `json:"page"`
	ArticleNumber  string     `json:"article-number"`
	DOI            string     `json:"DOI"`
	URL            string     `json:"URL"`
	PublishedPrint *DateParts `json:"published-print,omitempty"`
	PublishedOnline *DateParts `json:"published-online,omitempty"`
}

// Author is a registry author as a given/family pair.
type Author struct {
	Given  string `json:"given"`
	Family string `json:"family"`
}

// DateParts is Crossref's nested date representation.
type DateParts struct {
	DateParts [][]int `json:"date-parts"`
}

// PrimaryTitle returns the first title string, or "".
func (w *Work) PrimaryTitle() string {
	if len(w.Title) == 0 {
		return ""
	}
	return w.Title[0]
}

// Container returns the first container title (journal name), or "".
func (w *Work) Container() string {
	if len(w.ContainerTitle) == 0 {
		return ""
	}
	return w.ContainerTitle[0]
}

// Year returns the publication year, preferring the print date, or 0 when
// the registry record carries no usable date.
func (w *Work) Year() int {
	for _, d := range []*DateParts{w.PublishedPrint, w.PublishedOnline} {
		if d != nil && len(d.DateParts) > 0 && len(d.DateParts[0]) > 0 {
			return d.DateParts[0][0]
		}
	}
	return 0
}

// worksEnvelope is the response wrapper for a point lookup.
type worksEnvelope struct {
	Message Work `json:"message"`
}

// searchEnvelope is the response wrapper for a title search.
type searchEnvelope struct {
	Message struct {
		Items []Work `json:"items"`
	} `json:"message"`
}
