package ytdaily

import (
	"ytdaily/sheet"
	"ytdaily/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytdaily.ErrChannelNotFound) {
//		fmt.Println("Channel not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var srcErr *ytdaily.SourceError
//	if errors.As(err, &srcErr) {
//		fmt.Printf("%s failed for %s: %v\n", srcErr.Op, srcErr.Channel, srcErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// SourceError wraps errors during feed and statistics reads.
	SourceError = youtube.SourceError
	// SinkError wraps errors during sheet publication.
	SinkError = sheet.SinkError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrChannelNotFound indicates the YouTube channel does not exist.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrNoUploadsFeed indicates the channel exposes no uploads feed.
	ErrNoUploadsFeed = youtube.ErrNoUploadsFeed
	// ErrRateLimited indicates the Data API rejected the request over quota.
	ErrRateLimited = youtube.ErrRateLimited

	// ErrAlreadyExists indicates a dated sheet already exists; a publish
	// hitting it is a conflict, never a merge.
	ErrAlreadyExists = sheet.ErrAlreadyExists
	// ErrNotFound indicates the requested sheet was not found.
	ErrNotFound = sheet.ErrNotFound
)
