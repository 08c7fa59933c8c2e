// Package harvest implements the daily channel harvesting pipeline: uploads
// feed crawling with a historical cutoff, batched statistics enrichment,
// cross-channel aggregation and the idempotent daily publication gate.
package harvest

import (
	"time"

	"github.com/google/uuid"

	"ytdaily/format"
)

// DefaultCutoff is the historical boundary before which videos are excluded.
var DefaultCutoff = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// Clock supplies the current instant. It exists so tests can pin run dates.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// ExecutionContext carries the per-run constants. It is created once at run
// start and read-only thereafter; no component mutates it.
type ExecutionContext struct {
	// RunID is a random identifier correlating log lines of one run.
	RunID string
	// RunDate is the "YYYYMMDD" run identifier in the fixed display offset.
	RunDate string
	// ExecutedAt is the run start instant in display form.
	ExecutedAt string
	// Cutoff is the instant before which videos are excluded.
	Cutoff time.Time
}

// NewExecutionContext derives the run constants from the clock.
// A zero cutoff falls back to DefaultCutoff.
func NewExecutionContext(clock Clock, cutoff time.Time) ExecutionContext {
	now := clock.Now()
	if cutoff.IsZero() {
		cutoff = DefaultCutoff
	}
	return ExecutionContext{
		RunID:      uuid.NewString(),
		RunDate:    format.RunDate(now),
		ExecutedAt: format.FormatJST(now),
		Cutoff:     cutoff,
	}
}
