// internal/metrics/provider.go
package metrics

import (
	"context"
	"time"

	"github.com/mwiater/careerpath/internal/logging"
	"github.com/mwiater/careerpath/internal/providers"
)

// Provider is a decorator that wraps a Completer to record stream timing.
type Provider struct {
	wrapped  providers.Completer
	registry *Registry
}

// NewProvider wraps a Completer with timing collection.
func NewProvider(wrapped providers.Completer, registry *Registry) *Provider {
	logging.LogEvent("[METRICS] Wrapping completer with metrics provider")
	return &Provider{wrapped: wrapped, registry: registry}
}

// Complete forwards to the wrapped Completer and records time to first chunk
// and chunk count. Request outcomes are recorded by Registry.ObserveCompletion
// once the result has been decoded.
func (p *Provider) Complete(ctx context.Context, req providers.CompletionRequest, progress providers.ProgressFunc) (string, error) {
	start := time.Now()
	var (
		firstChunk time.Time
		chunks     int
	)

	onChunk := func(c providers.StreamChunk) {
		if !c.IsFinal {
			if chunks == 0 {
				firstChunk = time.Now()
			}
			chunks++
		}
		if progress != nil {
			progress(c)
		}
	}

	text, err := p.wrapped.Complete(ctx, req, onChunk)

	var ttft time.Duration
	if chunks > 0 {
		ttft = firstChunk.Sub(start)
		p.registry.ttft.WithLabelValues(req.Kind).Observe(ttft.Seconds())
	}
	p.registry.agg.RecordStream(req.Kind, ttft, chunks)
	logging.LogEvent("[METRICS] %s completion: chunks=%d ttft=%s err=%v", req.Kind, chunks, ttft, err)
	return text, err
}
