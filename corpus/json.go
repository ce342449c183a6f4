package corpus

import (
	"encoding/json"
	"time"

	"github.com/fwojciec/doccorpus"
)

// jsonDocument is the on-disk JSON shape of a corpus.
type jsonDocument struct {
	ScrapeTimestamp    string                                 `json:"scrape_timestamp"`
	GeneratedTimestamp string                                 `json:"generated_timestamp"`
	BaseURL            string                                 `json:"base_url"`
	TotalPagesScraped  int                                    `json:"total_pages_scraped"`
	Pages              []doccorpus.Section                    `json:"pages"`
	CommonSections     map[doccorpus.PatternCategory][]string `json:"common_sections"`
}

// JSON serializes a corpus as indented JSON. Pages are already sorted
// and deduplicated by the assembler and are emitted as-is.
func JSON(c *doccorpus.Corpus, baseURL string) ([]byte, error) {
	pages := c.Pages
	if pages == nil {
		pages = []doccorpus.Section{}
	}
	common := c.CommonPatterns
	if common == nil {
		common = map[doccorpus.PatternCategory][]string{}
	}
	doc := jsonDocument{
		ScrapeTimestamp:    c.ScrapedAt.Format(time.RFC3339),
		GeneratedTimestamp: c.GeneratedAt.Format(time.RFC3339),
		BaseURL:            baseURL,
		TotalPagesScraped:  len(pages),
		Pages:              pages,
		CommonSections:     common,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, doccorpus.Errorf(doccorpus.EINTERNAL, "marshal corpus: %v", err)
	}
	return data, nil
}
