// internal/metrics/metrics.go

// Package metrics exposes Prometheus collectors for completions, stream
// fragments and retrieval, plus an in-memory per-kind summary.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwiater/careerpath/internal/providers"
	"github.com/mwiater/careerpath/internal/schema"
)

// Outcome labels for completions.
const (
	OutcomeOK            = "ok"
	OutcomeConfiguration = "configuration"
	OutcomeTransport     = "transport"
	OutcomeNetwork       = "network"
	OutcomeParse         = "parse"
	OutcomeSchema        = "schema"
	OutcomeCanceled      = "canceled"
	OutcomeError         = "error"
)

// Registry owns a private Prometheus registry and the application collectors.
type Registry struct {
	reg         *prometheus.Registry
	completions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	chunks      *prometheus.CounterVec
	matches     *prometheus.HistogramVec
	ttft        *prometheus.HistogramVec
	agg         *Aggregator
}

// New registers the collectors on a fresh registry.
func New() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "careerpath_completions_total",
			Help: "Completions by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "careerpath_completion_duration_seconds",
			Help:    "Wall time of completions including parsing.",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"kind"}),
		chunks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "careerpath_stream_chunks_total",
			Help: "Decoded stream lines by kind and branch (parsed or raw).",
		}, []string{"kind", "branch"}),
		matches: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "careerpath_retrieval_matches",
			Help:    "Knowledge entries matched per retrieval.",
			Buckets: []float64{0, 1, 2, 3, 5, 8},
		}, []string{"kind"}),
		ttft: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "careerpath_time_to_first_chunk_seconds",
			Help:    "Delay before the first streamed chunk.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		agg: NewAggregator(),
	}
	r.reg.MustRegister(r.completions, r.duration, r.chunks, r.matches, r.ttft)
	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Handler serves the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Aggregator returns the in-memory summary.
func (r *Registry) Aggregator() *Aggregator { return r.agg }

// ObserveRetrieval records how many entries a retrieval matched.
func (r *Registry) ObserveRetrieval(kind string, matches int) {
	r.matches.WithLabelValues(kind).Observe(float64(matches))
}

// ObserveCompletion records a finished completion.
func (r *Registry) ObserveCompletion(kind string, elapsed time.Duration, err error) {
	r.completions.WithLabelValues(kind, Outcome(err)).Inc()
	r.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
	r.agg.RecordOutcome(kind, elapsed, err != nil)
}

// Observer returns a FragmentObserver that counts decoded stream lines.
func (r *Registry) Observer() providers.FragmentObserver {
	return func(kind, branch string) {
		r.chunks.WithLabelValues(kind, branch).Inc()
	}
}

// Outcome classifies err into a completion outcome label.
func Outcome(err error) string {
	var (
		transport *providers.TransportError
		network   *providers.NetworkError
		parse     *providers.FinalParseError
		invalid   *schema.ValidationError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	case errors.Is(err, providers.ErrConfiguration):
		return OutcomeConfiguration
	case errors.As(err, &transport):
		return OutcomeTransport
	case errors.As(err, &network):
		return OutcomeNetwork
	case errors.As(err, &parse):
		return OutcomeParse
	case errors.As(err, &invalid):
		return OutcomeSchema
	default:
		return OutcomeError
	}
}
