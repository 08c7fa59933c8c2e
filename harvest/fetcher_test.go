package harvest

import (
	"context"
	"fmt"
	"testing"

	"ytdaily/youtube"
)

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("vid%03d", i)
	}
	return ids
}

func TestFetchDetailsChunking(t *testing.T) {
	// One detail call per ceil(k/50) chunk.
	tests := []struct {
		name      string
		ids       int
		wantCalls int
	}{
		{"no ids", 0, 0},
		{"single id", 1, 1},
		{"exactly one chunk", 50, 1},
		{"one over the ceiling", 51, 2},
		{"several chunks", 120, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{}
			videos, dropped := fetchDetails(context.Background(), src, makeIDs(tt.ids))

			if src.detailCalls != tt.wantCalls {
				t.Errorf("detailCalls = %d, want %d", src.detailCalls, tt.wantCalls)
			}
			if len(videos) != tt.ids {
				t.Errorf("len(videos) = %d, want %d", len(videos), tt.ids)
			}
			if dropped != 0 {
				t.Errorf("dropped = %d, want 0", dropped)
			}
		})
	}
}

func TestFetchDetailsSkipsFailedChunk(t *testing.T) {
	// 120 ids = chunks of 50/50/20; the second chunk fails and is dropped
	// entirely while the others survive.
	src := &fakeSource{failDetailChunk: 2}

	videos, dropped := fetchDetails(context.Background(), src, makeIDs(120))

	if src.detailCalls != 3 {
		t.Errorf("detailCalls = %d, want 3 (failure must not stop the harvest)", src.detailCalls)
	}
	if len(videos) != 70 {
		t.Errorf("len(videos) = %d, want 70", len(videos))
	}
	if dropped != 50 {
		t.Errorf("dropped = %d, want 50", dropped)
	}

	// The failed chunk's ids are absent from the result.
	for _, v := range videos {
		if v.ID == "vid050" || v.ID == "vid099" {
			t.Errorf("video %s belongs to the failed chunk and should be dropped", v.ID)
		}
	}
}

func TestFetchDetailsKeepsRecordDefaults(t *testing.T) {
	// Records come back with zeroed statistics when the source omits them.
	src := &fakeSource{
		videos: map[string]youtube.Video{
			"vid000": {ID: "vid000", Title: "no stats", Duration: "PT0S"},
		},
	}

	videos, _ := fetchDetails(context.Background(), src, []string{"vid000"})

	if len(videos) != 1 {
		t.Fatalf("len(videos) = %d, want 1", len(videos))
	}
	v := videos[0]
	if v.Views != 0 || v.Likes != 0 || v.Comments != 0 {
		t.Errorf("statistics = %d/%d/%d, want zero defaults", v.Views, v.Likes, v.Comments)
	}
}
