package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ytdaily/config"
	"ytdaily/harvest"
	"ytdaily/sheet"
	"ytdaily/youtube"
)

func main() {
	channelFile := flag.String("channels", "", "path to the channel list (overrides config)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ytdaily - daily YouTube channel harvest published to Google Sheets

Usage:
  ytdaily [flags]

Harvests every tracked channel's uploads back to the configured cutoff,
ranks the videos by view count and publishes them to a dated sheet, once
per calendar day.

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg.LogLevel)

	if *channelFile != "" {
		cfg.ChannelFile = *channelFile
	}
	channels, err := config.ReadChannelFile(cfg.ChannelFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read channel list")
	}

	ctx := context.Background()

	source, err := youtube.NewClient(ctx, cfg.APIKey, cfg.APIRate)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create youtube client")
	}
	sink, err := sheet.NewSheetsSink(ctx, cfg.SpreadsheetID, cfg.ServiceAccountKey)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create sheets sink")
	}

	pipeline := &harvest.Pipeline{
		Source:   source,
		Sink:     sink,
		Channels: channels,
		Cutoff:   cfg.Cutoff,
	}
	if cfg.MirrorLatest {
		pipeline.LatestSheet = cfg.LatestSheet
	}

	outcome, err := pipeline.Run(ctx)
	if err != nil {
		if errors.Is(err, sheet.ErrAlreadyExists) {
			log.Error().Err(err).Msg("publish conflict, another run created today's sheet")
		} else {
			log.Error().Err(err).Str("outcome", outcome.String()).Msg("run failed")
		}
		os.Exit(1)
	}

	log.Info().Str("outcome", outcome.String()).Msg("run finished")
}

// initLogger sets up the global zerolog logger for console output.
func initLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
