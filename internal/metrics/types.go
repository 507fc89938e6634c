// internal/metrics/types.go
package metrics

import (
	"math"
	"time"
)

// KindStats is the running summary of completions for one kind.
type KindStats struct {
	Kind           string      `json:"kind"`
	LastUpdatedUTC time.Time   `json:"last_updated_utc"`
	TotalRequests  int64       `json:"total_requests"`
	Failures       int64       `json:"failures"`
	TTFTMillis     RunningStat `json:"ttft_ms"`
	DurationMillis RunningStat `json:"duration_ms"`
	Chunks         RunningStat `json:"chunks"`
}

// RunningStat holds the values for online calculation of mean and stddev
// (Welford's algorithm).
type RunningStat struct {
	Count int64   `json:"count"`
	Mean  float64 `json:"mean"`
	M2    float64 `json:"-"` // sum of squares of differences from the current mean
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// StdDev returns the sample standard deviation, or 0 with fewer than two samples.
func (rs RunningStat) StdDev() float64 {
	if rs.Count < 2 {
		return 0
	}
	return math.Sqrt(rs.M2 / float64(rs.Count-1))
}
