package harvest

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"ytdaily/youtube"
)

// collectIDs paginates an uploads feed and returns the ids of all videos
// published at or after the cutoff, newest first.
//
// The feed is chronologically descending, so the first entry strictly before
// the cutoff terminates pagination without requesting further pages. A page
// fetch failure truncates pagination in the same way: the ids gathered so far
// are returned and truncated is true.
func collectIDs(ctx context.Context, src youtube.Source, feedID string, cutoff time.Time) (ids []string, truncated bool) {
	pageToken := ""
	for {
		entries, next, err := src.FeedPage(ctx, feedID, pageToken)
		if err != nil {
			log.Warn().Err(err).Str("feed", feedID).
				Msg("feed page fetch failed, truncating pagination")
			return ids, true
		}

		for _, entry := range entries {
			if entry.Published.Before(cutoff) {
				return ids, false
			}
			ids = append(ids, entry.VideoID)
		}

		if next == "" {
			return ids, false
		}
		pageToken = next
	}
}
