package harvest

import (
	"context"
	"testing"

	"ytdaily/youtube"
)

func TestHarvestChannelUnavailable(t *testing.T) {
	// A channel with no resolvable feed yields an empty result without
	// touching the feed; the condition is not an error.
	src := &fakeSource{
		resolveErr: map[string]error{"gone": youtube.ErrChannelNotFound},
	}

	result := NewHarvester(src).HarvestChannel(context.Background(), "gone", DefaultCutoff)

	if !result.Unavailable {
		t.Error("result should be marked unavailable")
	}
	if len(result.Videos) != 0 {
		t.Errorf("len(Videos) = %d, want 0", len(result.Videos))
	}
	if src.pageCalls != 0 || src.detailCalls != 0 {
		t.Errorf("page/detail calls = %d/%d, want 0/0 for unavailable channel",
			src.pageCalls, src.detailCalls)
	}
}

func TestHarvestChannel(t *testing.T) {
	src := &fakeSource{
		feeds: map[string]string{"ch1": "feed1"},
		pages: map[string][][]youtube.FeedEntry{
			"feed1": {
				{entry("a", 30), entry("b", 20), entry("old", -1)},
			},
		},
	}

	result := NewHarvester(src).HarvestChannel(context.Background(), "ch1", DefaultCutoff)

	if result.Unavailable || result.Truncated {
		t.Errorf("unexpected flags: unavailable=%v truncated=%v", result.Unavailable, result.Truncated)
	}
	if len(result.Videos) != 2 {
		t.Fatalf("len(Videos) = %d, want 2", len(result.Videos))
	}
	if result.Videos[0].ID != "a" || result.Videos[1].ID != "b" {
		t.Errorf("videos = %s, %s; want a, b", result.Videos[0].ID, result.Videos[1].ID)
	}
}

func TestHarvestChannelTruncatedPagination(t *testing.T) {
	src := &fakeSource{
		feeds: map[string]string{"ch1": "feed1"},
		pages: map[string][][]youtube.FeedEntry{
			"feed1": {
				{entry("a", 30)},
				{entry("b", 20)},
			},
		},
		failPage: 2,
	}

	result := NewHarvester(src).HarvestChannel(context.Background(), "ch1", DefaultCutoff)

	if !result.Truncated {
		t.Error("page failure should mark the result truncated")
	}
	if len(result.Videos) != 1 {
		t.Errorf("len(Videos) = %d, want 1 (partial result preferred over failure)", len(result.Videos))
	}
}

func TestHarvestAllContinuesPastBadChannels(t *testing.T) {
	src := &fakeSource{
		feeds: map[string]string{"ch1": "feed1", "ch3": "feed3"},
		pages: map[string][][]youtube.FeedEntry{
			"feed1": {{entry("a", 10)}},
			"feed3": {{entry("b", 10)}},
		},
		resolveErr: map[string]error{"ch2": youtube.ErrChannelNotFound},
	}

	results := NewHarvester(src).HarvestAll(context.Background(), []string{"ch1", "ch2", "ch3"}, DefaultCutoff)

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3 (one per channel, in order)", len(results))
	}
	if results[0].ChannelID != "ch1" || results[2].ChannelID != "ch3" {
		t.Error("results should preserve channel order")
	}
	if !results[1].Unavailable {
		t.Error("ch2 should be unavailable")
	}
	if len(results[0].Videos) != 1 || len(results[2].Videos) != 1 {
		t.Error("channels after an unavailable one must still be harvested")
	}
}
