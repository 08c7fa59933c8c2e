// Package youtube provides access to channel upload feeds and video statistics
// via the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"time"
)

// MaxBatch is the hard ceiling on ids per detail lookup, imposed by the API.
const MaxBatch = 50

// Sentinel errors for video source operations.
var (
	ErrChannelNotFound = errors.New("youtube: channel not found")
	ErrNoUploadsFeed   = errors.New("youtube: channel has no uploads feed")
	ErrRateLimited     = errors.New("youtube: rate limited")
)

// Source defines the interface for reading channel upload feeds.
// The production implementation is Client; tests substitute fakes.
type Source interface {
	// ResolveUploads resolves a channel ID to its uploads feed (playlist) ID.
	// Returns ErrChannelNotFound if the channel does not exist and
	// ErrNoUploadsFeed if it exists but exposes no uploads playlist.
	ResolveUploads(ctx context.Context, channelID string) (string, error)

	// FeedPage fetches one page of the uploads feed, newest first.
	// An empty pageToken requests the first page. The returned token is
	// empty when no further pages exist.
	FeedPage(ctx context.Context, feedID, pageToken string) ([]FeedEntry, string, error)

	// VideoDetails fetches enriched records for up to MaxBatch video ids.
	VideoDetails(ctx context.Context, ids []string) ([]Video, error)
}

// FeedEntry is a single uploads feed item: a video id and its publish instant.
type FeedEntry struct {
	VideoID   string
	Published time.Time
}

// Video contains the statistics-enriched metadata for a single video.
// Records are immutable after creation; statistics a video has disabled
// are zero, never absent.
type Video struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"id"`

	// Title is the video title.
	Title string `json:"title"`

	// ChannelName is the display name of the publishing channel.
	ChannelName string `json:"channel_name"`

	// Published is when the video was published (UTC).
	Published time.Time `json:"published"`

	// Views, Likes and Comments are engagement counters, zero if disabled.
	Views    uint64 `json:"views"`
	Likes    uint64 `json:"likes"`
	Comments uint64 `json:"comments"`

	// Duration is the raw ISO-8601 content duration token (e.g., "PT1H2M3S").
	Duration string `json:"duration"`
}

// WatchURL returns the canonical YouTube watch URL for this video.
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}

// SourceError wraps source failures with context about what failed.
// Use errors.As() to extract it:
//
//	var srcErr *youtube.SourceError
//	if errors.As(err, &srcErr) {
//		fmt.Printf("%s failed for %s: %v\n", srcErr.Op, srcErr.Channel, srcErr.Err)
//	}
type SourceError struct {
	// Op is the operation that failed ("resolve", "page", "details").
	Op string
	// Channel is the channel or feed ID being read, if applicable.
	Channel string
	// Err is the underlying error that occurred.
	Err error
}

// Error returns a string representation of the source error.
func (e *SourceError) Error() string {
	if e.Channel != "" {
		return "youtube: " + e.Op + " " + e.Channel + ": " + e.Err.Error()
	}
	return "youtube: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *SourceError) Unwrap() error { return e.Err }
