package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/doccorpus"
	"github.com/fwojciec/doccorpus/corpus"
)

// Writer persists an assembled corpus as a timestamped Markdown/JSON
// file pair, e.g. docs_20260826_142455.md and docs_20260826_142455.json.
// Timestamped names keep every run's output; ArchiveSink sweeps older
// pairs aside.
type Writer struct {
	// Dir is the output directory, created on first write.
	Dir string

	// Prefix is the filename prefix shared by both files.
	Prefix string

	// SiteTitle heads the Markdown document.
	SiteTitle string

	// BaseURL is recorded in the JSON output.
	BaseURL string

	// Now overrides the clock in tests. Nil means time.Now.
	Now func() time.Time
}

// Write serializes the corpus and returns the paths of the Markdown and
// JSON files it created.
func (w *Writer) Write(c *doccorpus.Corpus) (string, string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	stamp := now().Format("20060102_150405")

	mdPath := filepath.Join(w.Dir, fmt.Sprintf("%s_%s.md", w.Prefix, stamp))
	jsonPath := filepath.Join(w.Dir, fmt.Sprintf("%s_%s.json", w.Prefix, stamp))

	md := corpus.Markdown(c, w.SiteTitle)
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return "", "", err
	}

	data, err := corpus.JSON(c, w.BaseURL)
	if err != nil {
		return "", "", err
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", "", err
	}

	return mdPath, jsonPath, nil
}
