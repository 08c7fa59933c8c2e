// Package ytdaily harvests the full upload history of a set of tracked
// YouTube channels back to a fixed cutoff and publishes the ranked result to
// Google Sheets once per calendar day.
//
// # Overview
//
// A run walks each tracked channel's uploads feed newest-first until it
// crosses the cutoff instant, enriches the collected video ids with
// statistics in batches of 50, merges everything into one deduplicated set,
// ranks it by view count and writes it to a sheet named after the run date.
// A second "latest" sheet can mirror the same rows, always holding only the
// most recent run.
//
// The dated sheet doubles as the idempotency key: if it already exists the
// run ends immediately without touching the YouTube API.
//
// # Quick Start
//
//	cfg, err := config.Load()
//	if err != nil {
//		log.Fatal().Err(err).Msg("config")
//	}
//	channels, err := config.ReadChannelFile(cfg.ChannelFile)
//	if err != nil {
//		log.Fatal().Err(err).Msg("channels")
//	}
//
//	source, _ := youtube.NewClient(ctx, cfg.APIKey, cfg.APIRate)
//	sink, _ := sheet.NewSheetsSink(ctx, cfg.SpreadsheetID, cfg.ServiceAccountKey)
//
//	p := &harvest.Pipeline{Source: source, Sink: sink, Channels: channels}
//	outcome, err := p.Run(ctx)
//
// # Configuration
//
// Configuration is read from the environment, optionally seeded from a .env
// file in the working directory:
//
//   - YTDAILY_API_KEY: YouTube Data API v3 key (required)
//   - YTDAILY_SPREADSHEET_ID: destination spreadsheet (required)
//   - YTDAILY_SERVICE_ACCOUNT_KEY: service account JSON, or @path to it (required)
//   - YTDAILY_CHANNEL_FILE: channel list path (default channel_ID.txt)
//   - YTDAILY_CUTOFF: RFC3339 cutoff instant (default 2020-01-01T00:00:00Z)
//   - YTDAILY_MIRROR_LATEST: write the "latest" mirror sheet (default true)
//   - YTDAILY_LATEST_SHEET: mirror sheet name (default "latest")
//   - YTDAILY_API_RATE: Data API requests per second (default 1.0)
//   - YTDAILY_LOG_LEVEL: zerolog level (default "info")
//
// # Error Handling
//
// Per-unit failures never abort a run: an unresolvable channel, a failed feed
// page or a failed detail batch each degrade the result and the run carries
// on with what it has. Fatal errors are confined to setup (configuration,
// channel list, reaching the spreadsheet) and to publication itself, where a
// dated sheet appearing between the idempotency check and the write is
// surfaced as a conflict wrapping sheet.ErrAlreadyExists:
//
//	if errors.Is(err, ytdaily.ErrAlreadyExists) {
//		// another run won the race for today's sheet
//	}
package ytdaily
