package harvest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"ytdaily/sheet"
	"ytdaily/youtube"
)

// Outcome is the terminal state of a pipeline run.
type Outcome int

const (
	// OutcomeNone means the run failed before reaching a terminal state.
	OutcomeNone Outcome = iota
	// OutcomeSkipped means today's run identifier already existed in the
	// primary sink; nothing was fetched or written.
	OutcomeSkipped
	// OutcomeEmpty means harvesting produced no records; nothing was written.
	OutcomeEmpty
	// OutcomePublished means both destinations were written.
	OutcomePublished
	// OutcomePublishedPrimaryOnly means only the dated destination was
	// written, because no secondary destination is configured or its
	// write failed.
	OutcomePublishedPrimaryOnly
)

// String returns the outcome name for logging.
func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "SKIPPED"
	case OutcomeEmpty:
		return "EMPTY"
	case OutcomePublished:
		return "PUBLISHED"
	case OutcomePublishedPrimaryOnly:
		return "PUBLISHED_PRIMARY_ONLY"
	default:
		return "NONE"
	}
}

// Pipeline wires the harvesting run end to end: idempotency check, sequential
// channel harvesting, aggregation and publication.
type Pipeline struct {
	// Source reads channel upload feeds and video statistics.
	Source youtube.Source
	// Sink receives the published rows.
	Sink sheet.Sink
	// Channels is the ordered, deduplicated list of tracked channel IDs.
	Channels []string
	// Cutoff overrides the historical boundary; zero means DefaultCutoff.
	Cutoff time.Time
	// LatestSheet names the always-current secondary destination.
	// Empty disables the mirror.
	LatestSheet string
	// Clock supplies the run instant; nil means SystemClock.
	Clock Clock
}

// Run executes one daily harvest and returns its terminal outcome.
//
// The dated object name doubles as the idempotency key: if it already exists
// the run ends in OutcomeSkipped before any feed or detail fetch. A dated
// object appearing between the check and the write is a conflict and is
// surfaced as an error wrapping sheet.ErrAlreadyExists, never merged over or
// retried.
func (p *Pipeline) Run(ctx context.Context) (Outcome, error) {
	clock := p.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	ec := NewExecutionContext(clock, p.Cutoff)

	log.Info().Str("run_id", ec.RunID).Str("run_date", ec.RunDate).
		Int("channels", len(p.Channels)).Time("cutoff", ec.Cutoff).
		Msg("run starting")

	exists, err := p.Sink.Exists(ctx, ec.RunDate)
	if err != nil {
		return OutcomeNone, fmt.Errorf("idempotency check for %s: %w", ec.RunDate, err)
	}
	if exists {
		log.Info().Str("run_date", ec.RunDate).Msg("run already published, skipping")
		return OutcomeSkipped, nil
	}

	results := NewHarvester(p.Source).HarvestAll(ctx, p.Channels, ec.Cutoff)
	videos := rankVideos(mergeVideos(results))
	log.Info().Int("videos", len(videos)).Msg("aggregation complete")

	if len(videos) == 0 {
		return OutcomeEmpty, nil
	}

	rows := buildRows(videos, ec)

	if err := p.Sink.CreateNamed(ctx, ec.RunDate, rows); err != nil {
		if errors.Is(err, sheet.ErrAlreadyExists) {
			return OutcomeNone, fmt.Errorf("publish conflict, %s created since check: %w", ec.RunDate, err)
		}
		return OutcomeNone, fmt.Errorf("publish %s: %w", ec.RunDate, err)
	}
	log.Info().Str("run_date", ec.RunDate).Int("rows", len(rows)-1).Msg("primary sink written")

	if p.LatestSheet == "" {
		return OutcomePublishedPrimaryOnly, nil
	}
	if err := p.Sink.ClearAndReplace(ctx, p.LatestSheet, rows); err != nil {
		// The dated object is already written; report the partial publish.
		return OutcomePublishedPrimaryOnly, fmt.Errorf("mirror %s: %w", p.LatestSheet, err)
	}
	log.Info().Str("sheet", p.LatestSheet).Msg("latest mirror written")

	return OutcomePublished, nil
}
