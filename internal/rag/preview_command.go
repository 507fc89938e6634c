package rag

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
)

// RunPreview is the CLI entry point for rag preview. It scores the query words
// as a profile (or job title when asJob is set) and prints the selection.
func RunPreview(ctx context.Context, out io.Writer, r *Retriever, name string, asJob bool, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("query is required")
	}
	if r == nil {
		return fmt.Errorf("retriever is nil")
	}

	status := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		log.Print(msg)
		fmt.Fprintln(out, msg)
	}

	var q Query = ProfileQuery{SkillNames: args}
	if asJob {
		q = JobQuery{Title: query}
	}

	status("[RAG] Preview query: %s", query)
	status("[RAG] corpus: %s (%d entries)", name, len(r.Corpus()))
	status("[RAG] maxContexts: %d", r.MaxContexts())

	result := r.Retrieve(ctx, q)

	status("[RAG] tokens: %s", strings.Join(result.Tokens, ", "))
	status("[RAG] matches: %d", len(result.Matches))
	for i, m := range result.Matches {
		status("[RAG] match %d id=%s score=%d", i+1, m.ID, m.Score)
	}
	if result.Fallback {
		status("[RAG] no entry scored, using fallback")
	}
	if len(result.DynamicTerms) > 0 {
		status("[RAG] user-defined terms: %s", strings.Join(result.DynamicTerms, ", "))
	}
	status("[RAG] context:\n%s", result.Context)

	return nil
}
