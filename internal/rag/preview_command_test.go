package rag

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunPreview(t *testing.T) {
	var buf bytes.Buffer
	r := NewRetriever(CareerAdviceCorpus(), 3, nil)
	if err := RunPreview(context.Background(), &buf, r, "career", false, []string{"python", "developer"}); err != nil {
		t.Fatalf("RunPreview error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[RAG] Preview query: python developer", "[RAG] tokens: python, developer", "id=ca1", "Expert Tip for Software/Web Developers"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	if err := RunPreview(context.Background(), &buf, r, "career", false, nil); err == nil {
		t.Fatal("expected error for empty query")
	}
}
