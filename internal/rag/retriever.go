package rag

import (
	"context"
	"sort"
	"strings"

	"github.com/mwiater/careerpath/internal/logging"
)

const (
	// DefaultMaxContexts applies when a Retriever is built with a non-positive cap.
	DefaultMaxContexts = 2

	// FallbackAdvice is returned when nothing scores and no generic entry exists.
	FallbackAdvice = "General advice: Continuous learning and adapting to new trends are key in any field."
	// NoTipsAvailable is returned for an empty query against an empty corpus.
	NoTipsAvailable = "No specific expert tips available from the knowledge base for this query."

	dynamicPrefix = "Previously user-defined relevant items: "
)

var genericKeywords = []string{"general", "study", "career"}

// TermSource supplies the names of user-defined skills and interests.
type TermSource interface {
	TermNames(ctx context.Context) ([]string, error)
}

// Retriever selects corpus entries relevant to a query.
type Retriever struct {
	corpus      Corpus
	maxContexts int
	terms       TermSource
}

// NewRetriever builds a Retriever. terms may be nil.
func NewRetriever(corpus Corpus, maxContexts int, terms TermSource) *Retriever {
	if maxContexts <= 0 {
		maxContexts = DefaultMaxContexts
	}
	return &Retriever{corpus: corpus, maxContexts: maxContexts, terms: terms}
}

// Corpus returns the entries the retriever scores against.
func (r *Retriever) Corpus() Corpus { return r.corpus }

// MaxContexts returns the selection cap.
func (r *Retriever) MaxContexts() int { return r.maxContexts }

// Retrieve returns the context block for q. It never fails: a term source
// error is logged and the dynamic suffix is skipped.
func (r *Retriever) Retrieve(ctx context.Context, q Query) Result {
	tokens := Tokenize(q.fields()...)
	res := Result{Tokens: tokens}

	var dynamic string
	if q.profile() && r.terms != nil && len(tokens) > 0 {
		names, err := r.terms.TermNames(ctx)
		if err != nil {
			logging.LogWarning("rag: user-defined terms unavailable: %v", err)
		}
		res.DynamicTerms = MatchTerms(tokens, names)
		if len(res.DynamicTerms) > 0 {
			dynamic = "\n" + dynamicPrefix + strings.Join(res.DynamicTerms, ", ") + "."
		}
	}

	if len(tokens) == 0 && dynamic == "" {
		res.Fallback = true
		if len(r.corpus) > 0 {
			res.Context = strings.TrimSpace(r.corpus[0].Content)
		} else {
			res.Context = NoTipsAvailable
		}
		return res
	}

	res.Matches = Score(r.corpus, tokens, r.maxContexts)
	var static string
	switch {
	case len(res.Matches) > 0:
		static = FormatContext(r.corpus, res.Matches)
	case len(r.corpus) > 0:
		res.Fallback = true
		static = genericEntry(r.corpus).Content
	default:
		res.Fallback = true
		static = FallbackAdvice
	}

	res.Context = strings.TrimSpace(static + dynamic)
	return res
}

// Score returns up to limit entries with a positive score, highest first.
// Equal scores keep corpus order.
func Score(corpus Corpus, tokens []string, limit int) []Match {
	matches := make([]Match, 0, len(corpus))
	for i, entry := range corpus {
		if s := scoreEntry(entry, tokens); s > 0 {
			matches = append(matches, Match{ID: entry.ID, Score: s, Index: i})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// scoreEntry counts keywords that contain, or are contained in, any token.
func scoreEntry(entry KnowledgeEntry, tokens []string) int {
	score := 0
	for _, kw := range entry.Keywords {
		for _, tok := range tokens {
			if strings.Contains(kw, tok) || strings.Contains(tok, kw) {
				score++
				break
			}
		}
	}
	return score
}

// MatchTerms returns the names whose tokens equal one of the query tokens,
// deduplicated in first-seen order.
func MatchTerms(tokens, names []string) []string {
	if len(tokens) == 0 || len(names) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		want[t] = struct{}{}
	}
	seen := make(map[string]struct{})
	var out []string
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		for _, t := range Tokenize(name) {
			if _, ok := want[t]; ok {
				seen[name] = struct{}{}
				out = append(out, name)
				break
			}
		}
	}
	return out
}

func genericEntry(corpus Corpus) KnowledgeEntry {
	for _, entry := range corpus {
		for _, kw := range entry.Keywords {
			for _, g := range genericKeywords {
				if kw == g {
					return entry
				}
			}
		}
	}
	return corpus[0]
}
