package harvest

import (
	"math"
	"sort"

	"ytdaily/youtube"
)

// mergeVideos flattens per-channel results into a single deduplicated list
// keyed by video id. A later record with an already-seen id overwrites the
// earlier one in place, keeping the original insertion position, so the merge
// is idempotent under repeated insertion of the same record.
func mergeVideos(results []ChannelResult) []youtube.Video {
	index := make(map[string]int)
	var merged []youtube.Video

	for _, result := range results {
		for _, video := range result.Videos {
			if i, ok := index[video.ID]; ok {
				merged[i] = video
				continue
			}
			index[video.ID] = len(merged)
			merged = append(merged, video)
		}
	}
	return merged
}

// rankVideos orders records by view count descending. The sort is stable, so
// records with equal view counts keep their relative insertion order; no
// secondary key is applied.
func rankVideos(videos []youtube.Video) []youtube.Video {
	ranked := make([]youtube.Video, len(videos))
	copy(ranked, videos)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Views > ranked[j].Views
	})
	return ranked
}

// EngagementRate computes (likes + comments) / views * 100 rounded to two
// decimals. It is 0.0 when views is zero.
func EngagementRate(likes, comments, views uint64) float64 {
	if views == 0 {
		return 0.0
	}
	rate := float64(likes+comments) / float64(views) * 100
	return math.Round(rate*100) / 100
}
