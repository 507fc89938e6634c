// internal/metrics/aggregator.go
package metrics

import (
	"sort"
	"sync"
	"time"
)

// Aggregator keeps per-kind running statistics in memory for the stats endpoint.
type Aggregator struct {
	mutex sync.Mutex
	stats map[string]*KindStats
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{stats: make(map[string]*KindStats)}
}

// RecordStream adds the streaming side of one completion: time to first chunk
// and chunk count.
func (a *Aggregator) RecordStream(kind string, ttft time.Duration, chunks int) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	ks := a.kind(kind)
	if chunks > 0 {
		updateRunningStat(&ks.TTFTMillis, float64(ttft.Milliseconds()))
	}
	updateRunningStat(&ks.Chunks, float64(chunks))
}

// RecordOutcome adds one finished request after its result was decoded.
func (a *Aggregator) RecordOutcome(kind string, elapsed time.Duration, failed bool) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	ks := a.kind(kind)
	ks.TotalRequests++
	if failed {
		ks.Failures++
	}
	updateRunningStat(&ks.DurationMillis, float64(elapsed.Milliseconds()))
}

// kind returns the summary for kind, creating it. Callers hold the mutex.
func (a *Aggregator) kind(kind string) *KindStats {
	ks, ok := a.stats[kind]
	if !ok {
		ks = &KindStats{Kind: kind}
		a.stats[kind] = ks
	}
	ks.LastUpdatedUTC = time.Now().UTC()
	return ks
}

// Snapshot returns a copy of every kind's summary sorted by kind.
func (a *Aggregator) Snapshot() []KindStats {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	out := make([]KindStats, 0, len(a.stats))
	for _, ks := range a.stats {
		out = append(out, *ks)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

// updateRunningStat updates a single running statistic using Welford's online algorithm.
func updateRunningStat(rs *RunningStat, value float64) {
	rs.Count++
	if rs.Count == 1 {
		rs.Min = value
		rs.Max = value
	} else {
		if value < rs.Min {
			rs.Min = value
		}
		if value > rs.Max {
			rs.Max = value
		}
	}

	delta := value - rs.Mean
	rs.Mean += delta / float64(rs.Count)
	delta2 := value - rs.Mean
	rs.M2 += delta * delta2
}
