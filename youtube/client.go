package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// maxPageSize is the largest page the playlistItems endpoint serves.
const maxPageSize = 50

// Client implements Source using YouTube Data API v3.
// All calls pass through a token-bucket limiter so that a run never issues
// more than the configured requests per second against the API.
type Client struct {
	service *youtube.Service
	limiter *rate.Limiter
}

// NewClient creates a Data API v3 video source.
// rps bounds the request rate; values <= 0 fall back to 1 request/second.
func NewClient(ctx context.Context, apiKey string, rps float64) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	if rps <= 0 {
		rps = 1.0
	}
	return &Client{
		service: service,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}, nil
}

// ResolveUploads resolves a channel ID to its uploads playlist ID.
func (c *Client) ResolveUploads(ctx context.Context, channelID string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	resp, err := c.service.Channels.List([]string{"contentDetails"}).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		return "", &SourceError{Op: "resolve", Channel: channelID, Err: mapAPIError(err)}
	}

	if len(resp.Items) == 0 {
		return "", &SourceError{Op: "resolve", Channel: channelID, Err: ErrChannelNotFound}
	}

	details := resp.Items[0].ContentDetails
	if details == nil || details.RelatedPlaylists == nil || details.RelatedPlaylists.Uploads == "" {
		return "", &SourceError{Op: "resolve", Channel: channelID, Err: ErrNoUploadsFeed}
	}
	return details.RelatedPlaylists.Uploads, nil
}

// FeedPage fetches one page of up to 50 uploads feed items, newest first.
func (c *Client) FeedPage(ctx context.Context, feedID, pageToken string) ([]FeedEntry, string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, "", err
	}

	resp, err := c.service.PlaylistItems.List([]string{"contentDetails", "snippet"}).
		PlaylistId(feedID).
		MaxResults(maxPageSize).
		PageToken(pageToken).
		Context(ctx).
		Do()
	if err != nil {
		return nil, "", &SourceError{Op: "page", Channel: feedID, Err: mapAPIError(err)}
	}

	entries := make([]FeedEntry, 0, len(resp.Items))
	for _, item := range resp.Items {
		entry := FeedEntry{VideoID: item.ContentDetails.VideoId}
		if item.Snippet != nil {
			if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
				entry.Published = t
			}
		}
		entries = append(entries, entry)
	}

	return entries, resp.NextPageToken, nil
}

// VideoDetails fetches snippet, statistics and content duration for up to
// MaxBatch video ids in a single request.
func (c *Client) VideoDetails(ctx context.Context, ids []string) ([]Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxBatch {
		return nil, fmt.Errorf("youtube: details batch of %d exceeds %d ids", len(ids), MaxBatch)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, &SourceError{Op: "details", Err: mapAPIError(err)}
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		video := Video{ID: item.Id, Duration: "PT0S"}

		if item.Snippet != nil {
			video.Title = item.Snippet.Title
			video.ChannelName = item.Snippet.ChannelTitle
			if t, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
				video.Published = t
			}
		}
		// Statistics the video has disabled stay at their zero values.
		if item.Statistics != nil {
			video.Views = item.Statistics.ViewCount
			video.Likes = item.Statistics.LikeCount
			video.Comments = item.Statistics.CommentCount
		}
		if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
			video.Duration = item.ContentDetails.Duration
		}

		videos = append(videos, video)
	}

	return videos, nil
}

// mapAPIError maps Data API failures onto package sentinels where one applies.
func mapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 404:
			return fmt.Errorf("%w: %v", ErrChannelNotFound, err)
		case apiErr.Code == 403 && isQuotaReason(apiErr):
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case apiErr.Code == 429:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		}
	}
	return err
}

// isQuotaReason reports whether a 403 is a quota or rate limit rejection
// rather than an authorization failure.
func isQuotaReason(apiErr *googleapi.Error) bool {
	for _, e := range apiErr.Errors {
		if strings.Contains(e.Reason, "quotaExceeded") || strings.Contains(e.Reason, "rateLimitExceeded") {
			return true
		}
	}
	return false
}
