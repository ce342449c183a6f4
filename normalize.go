package doccorpus

import "strings"

// NormalizeText collapses whitespace in extracted text: each line is
// trimmed, lines that become empty are dropped, and the survivors are
// rejoined with single newlines.
//
// Multi-blank-line gaps deliberately collapse to zero blank lines.
// Paragraph breaks are represented by adjacent non-empty lines, not by
// blank-line separation, because upstream HTML-to-text conversion
// already inserts newlines at block-element boundaries.
//
// NormalizeText is idempotent and always returns a string; whitespace-only
// input yields "".
func NormalizeText(raw string) string {
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
