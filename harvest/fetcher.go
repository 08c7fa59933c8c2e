package harvest

import (
	"context"

	"github.com/rs/zerolog/log"

	"ytdaily/youtube"
)

// fetchDetails converts video ids into enriched records via chunked lookups
// of at most youtube.MaxBatch ids each.
//
// A failed chunk is skipped entirely and processing continues with the next
// one; dropped reports how many ids were lost that way. One bad batch must
// not abort the harvest.
func fetchDetails(ctx context.Context, src youtube.Source, ids []string) (videos []youtube.Video, dropped int) {
	for start := 0; start < len(ids); start += youtube.MaxBatch {
		chunk := ids[start:min(start+youtube.MaxBatch, len(ids))]

		batch, err := src.VideoDetails(ctx, chunk)
		if err != nil {
			log.Warn().Err(err).Int("ids", len(chunk)).
				Msg("detail batch failed, skipping chunk")
			dropped += len(chunk)
			continue
		}
		videos = append(videos, batch...)
	}
	return videos, dropped
}
