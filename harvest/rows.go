package harvest

import (
	"ytdaily/format"
	"ytdaily/youtube"
)

// headerRow returns the 11 column titles written ahead of the data rows.
func headerRow() []interface{} {
	return []interface{}{
		"Title",
		"Channel",
		"Published (JST)",
		"Video ID",
		"URL",
		"Views",
		"Likes",
		"Comments",
		"Duration",
		"Engagement Rate (%)",
		"Harvested At (JST)",
	}
}

// buildRows projects ranked records into sink rows, header first. Derived
// metrics are computed here at publication time; the records themselves stay
// untouched.
func buildRows(videos []youtube.Video, ec ExecutionContext) [][]interface{} {
	rows := make([][]interface{}, 0, len(videos)+1)
	rows = append(rows, headerRow())

	for _, v := range videos {
		rows = append(rows, []interface{}{
			v.Title,
			v.ChannelName,
			format.FormatJST(v.Published),
			v.ID,
			v.WatchURL(),
			v.Views,
			v.Likes,
			v.Comments,
			format.FormatISODuration(v.Duration),
			EngagementRate(v.Likes, v.Comments, v.Views),
			ec.ExecutedAt,
		})
	}
	return rows
}
