package harvest

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"ytdaily/youtube"
)

// ChannelResult is the outcome of harvesting a single channel. It carries a
// partial success list instead of an error: per-channel failures degrade the
// result, they never abort the run.
type ChannelResult struct {
	// ChannelID is the channel that was harvested.
	ChannelID string
	// Videos are the enriched records retrieved for this channel.
	Videos []youtube.Video
	// Unavailable is true when the channel or its uploads feed could not
	// be resolved; Videos is empty in that case.
	Unavailable bool
	// Truncated is true when pagination stopped early or a detail batch
	// was dropped, so Videos may be incomplete.
	Truncated bool
}

// Harvester composes the crawler and the detail fetcher per channel.
type Harvester struct {
	source youtube.Source
}

// NewHarvester creates a harvester reading from the given source.
func NewHarvester(source youtube.Source) *Harvester {
	return &Harvester{source: source}
}

// HarvestChannel crawls one channel's uploads feed back to the cutoff and
// enriches the resulting ids. An unresolvable channel yields an empty,
// unavailable result rather than an error.
func (h *Harvester) HarvestChannel(ctx context.Context, channelID string, cutoff time.Time) ChannelResult {
	result := ChannelResult{ChannelID: channelID}

	feedID, err := h.source.ResolveUploads(ctx, channelID)
	if err != nil {
		log.Warn().Err(err).Str("channel", channelID).Msg("channel unavailable, skipping")
		result.Unavailable = true
		return result
	}

	ids, truncated := collectIDs(ctx, h.source, feedID, cutoff)
	videos, dropped := fetchDetails(ctx, h.source, ids)

	result.Videos = videos
	result.Truncated = truncated || dropped > 0

	log.Info().Str("channel", channelID).Int("videos", len(videos)).
		Bool("truncated", result.Truncated).Msg("channel harvested")
	return result
}

// HarvestAll harvests every channel strictly sequentially, keeping at most
// one request in flight against the upstream API.
func (h *Harvester) HarvestAll(ctx context.Context, channels []string, cutoff time.Time) []ChannelResult {
	results := make([]ChannelResult, 0, len(channels))
	for _, channelID := range channels {
		results = append(results, h.HarvestChannel(ctx, channelID, cutoff))
	}
	return results
}
