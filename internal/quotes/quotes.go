// internal/quotes/quotes.go

// Package quotes holds the inspirational quotes shown while a result streams.
package quotes

import (
	"fmt"
	"regexp"
	"strings"
)

// Quote is a short attributed saying with topic tags.
type Quote struct {
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags,omitempty"`
}

// String formats the quote as `"text" - author`.
func (q Quote) String() string {
	return fmt.Sprintf("%q - %s", q.Text, q.Author)
}

var (
	alwaysRelevant  = []string{"general", "career", "learning", "skills", "passion", "work", "future", "dreams"}
	noSelectionTags = []string{"general", "career", "dreams", "potential", "action"}
	padTags         = []string{"general", "career", "learning", "dreams", "action", "perseverance"}

	categorySplit = regexp.MustCompile(`[\s&,()]`)
	nonLetters    = regexp.MustCompile(`[^a-z]`)
)

const (
	minRelevant = 5
	maxPadded   = 20
)

// All returns a copy of every quote.
func All() []Quote {
	out := make([]Quote, len(inspirational))
	copy(out, inspirational)
	return out
}

// ForTags returns the quotes carrying at least one of tags, case-insensitively.
func ForTags(tags ...string) []Quote {
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[strings.ToLower(strings.TrimSpace(t))] = true
	}
	var out []Quote
	for _, q := range inspirational {
		if hasAny(q, want) {
			out = append(out, q)
		}
	}
	return out
}

// Relevant selects quotes for the skill and interest categories a user picked.
// No categories selects the general pool. Fewer than five matches are padded
// with the general pool and capped at twenty.
func Relevant(categories []string) []Quote {
	if len(categories) == 0 {
		return ForTags(noSelectionTags...)
	}

	keywords := make(map[string]bool)
	for _, k := range CategoryKeywords(categories) {
		keywords[k] = true
	}
	for _, k := range alwaysRelevant {
		keywords[k] = true
	}

	var relevant []Quote
	for _, q := range inspirational {
		if hasAny(q, keywords) {
			relevant = append(relevant, q)
		}
	}
	if len(relevant) >= minRelevant {
		return relevant
	}

	seen := make(map[string]bool, len(relevant))
	combined := make([]Quote, 0, maxPadded)
	for _, q := range append(relevant, ForTags(padTags...)...) {
		if seen[q.Text] {
			continue
		}
		seen[q.Text] = true
		combined = append(combined, q)
	}
	if len(combined) > maxPadded {
		combined = combined[:maxPadded]
	}
	return combined
}

// CategoryKeywords breaks category labels such as "Data & Analytics" into
// lowercase letter-only words longer than two characters.
func CategoryKeywords(categories []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range categories {
		for _, part := range categorySplit.Split(strings.ToLower(c), -1) {
			word := nonLetters.ReplaceAllString(part, "")
			if len(word) <= 2 || seen[word] {
				continue
			}
			seen[word] = true
			out = append(out, word)
		}
	}
	return out
}

// Pick returns the quote at position i modulo len(list). It falls back to the
// full set when list is empty.
func Pick(list []Quote, i int) Quote {
	if len(list) == 0 {
		list = inspirational
	}
	if i < 0 {
		i = -i
	}
	return list[i%len(list)]
}

func hasAny(q Quote, want map[string]bool) bool {
	for _, t := range q.Tags {
		if want[strings.ToLower(t)] {
			return true
		}
	}
	return false
}
