package rag

import "strings"

// FormatContext joins the content of the matched entries with newlines, in match order.
func FormatContext(corpus Corpus, matches []Match) string {
	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.Index < 0 || m.Index >= len(corpus) {
			continue
		}
		parts = append(parts, corpus[m.Index].Content)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
