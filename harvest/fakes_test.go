package harvest

import (
	"context"
	"errors"
	"strconv"
	"time"

	"ytdaily/youtube"
)

// fakeSource is a configurable in-memory Source for pipeline tests.
// Page tokens are page indexes rendered as strings.
type fakeSource struct {
	feeds map[string]string                // channel ID -> feed ID
	pages map[string][][]youtube.FeedEntry // feed ID -> pages, newest first
	// videos overrides the record returned for an id; ids without an entry
	// get a bare record carrying just the id.
	videos map[string]youtube.Video

	resolveErr      map[string]error // channel ID -> resolve failure
	failPage        int              // 1-based page call number to fail, 0 = never
	failDetailChunk int              // 1-based detail call number to fail, 0 = never

	resolveCalls int
	pageCalls    int
	detailCalls  int
}

func (f *fakeSource) ResolveUploads(ctx context.Context, channelID string) (string, error) {
	f.resolveCalls++
	if err := f.resolveErr[channelID]; err != nil {
		return "", err
	}
	feedID, ok := f.feeds[channelID]
	if !ok {
		return "", youtube.ErrChannelNotFound
	}
	return feedID, nil
}

func (f *fakeSource) FeedPage(ctx context.Context, feedID, pageToken string) ([]youtube.FeedEntry, string, error) {
	f.pageCalls++
	if f.failPage > 0 && f.pageCalls == f.failPage {
		return nil, "", errors.New("page fetch failed")
	}

	idx := 0
	if pageToken != "" {
		idx, _ = strconv.Atoi(pageToken)
	}
	pages := f.pages[feedID]
	if idx >= len(pages) {
		return nil, "", nil
	}

	next := ""
	if idx+1 < len(pages) {
		next = strconv.Itoa(idx + 1)
	}
	return pages[idx], next, nil
}

func (f *fakeSource) VideoDetails(ctx context.Context, ids []string) ([]youtube.Video, error) {
	f.detailCalls++
	if f.failDetailChunk > 0 && f.detailCalls == f.failDetailChunk {
		return nil, errors.New("detail fetch failed")
	}

	videos := make([]youtube.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := f.videos[id]; ok {
			videos = append(videos, v)
			continue
		}
		videos = append(videos, youtube.Video{ID: id, Duration: "PT0S"})
	}
	return videos, nil
}

// fakeSink records writes in memory.
type fakeSink struct {
	existing map[string]bool
	created  map[string][][]interface{}
	replaced map[string][][]interface{}

	existsErr  error
	createErr  error
	replaceErr error

	existsCalls int
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		existing: make(map[string]bool),
		created:  make(map[string][][]interface{}),
		replaced: make(map[string][][]interface{}),
	}
}

func (f *fakeSink) Exists(ctx context.Context, name string) (bool, error) {
	f.existsCalls++
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existing[name], nil
}

func (f *fakeSink) CreateNamed(ctx context.Context, name string, rows [][]interface{}) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created[name] = rows
	f.existing[name] = true
	return nil
}

func (f *fakeSink) ClearAndReplace(ctx context.Context, name string, rows [][]interface{}) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced[name] = rows
	f.existing[name] = true
	return nil
}

// fakeClock pins the run instant.
type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

// entry builds a feed entry published the given number of days after the
// default cutoff (negative values land before it).
func entry(id string, daysAfterCutoff int) youtube.FeedEntry {
	return youtube.FeedEntry{
		VideoID:   id,
		Published: DefaultCutoff.AddDate(0, 0, daysAfterCutoff),
	}
}
