package rag

import "strings"

// minTokenLen is the shortest token kept; "ai", "ux" and the like are dropped.
const minTokenLen = 3

// Tokenize lowercases the fields, splits them on whitespace, strips every
// character outside [a-z0-9] and drops short tokens. The result is deduplicated
// in first-seen order.
func Tokenize(fields ...string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, field := range fields {
		for _, word := range strings.Fields(strings.ToLower(field)) {
			tok := alnum(word)
			if len(tok) < minTokenLen {
				continue
			}
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func alnum(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
