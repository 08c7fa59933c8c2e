// Package config manages application configuration.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration for the daily harvest run.
type Config struct {
	// APIKey is the YouTube Data API v3 key.
	APIKey string
	// SpreadsheetID identifies the destination spreadsheet.
	SpreadsheetID string
	// ServiceAccountKey is the Google service account key in JSON form.
	ServiceAccountKey []byte

	// ChannelFile is the path to the tracked channel list (one ID per line).
	ChannelFile string
	// Cutoff is the historical boundary; videos published before it are excluded.
	Cutoff time.Time
	// MirrorLatest enables the always-current secondary destination.
	MirrorLatest bool
	// LatestSheet is the name of the secondary destination.
	LatestSheet string
	// APIRate bounds Data API requests per second.
	APIRate float64
	// LogLevel is the zerolog level name ("debug", "info", "warn", ...).
	LogLevel string
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		ChannelFile:  "channel_ID.txt",
		Cutoff:       time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		MirrorLatest: true,
		LatestSheet:  "latest",
		APIRate:      1.0,
		LogLevel:     "info",
	}
}

// Load loads configuration from a .env file (if present) and environment
// variables, then validates it. Environment variables win over the file.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("YTDAILY_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("YTDAILY_SPREADSHEET_ID"); v != "" {
		c.SpreadsheetID = v
	}
	if v := os.Getenv("YTDAILY_SERVICE_ACCOUNT_KEY"); v != "" {
		key, err := resolveKey(v)
		if err != nil {
			return fmt.Errorf("YTDAILY_SERVICE_ACCOUNT_KEY: %w", err)
		}
		c.ServiceAccountKey = key
	}
	if v := os.Getenv("YTDAILY_CHANNEL_FILE"); v != "" {
		c.ChannelFile = v
	}
	if v := os.Getenv("YTDAILY_CUTOFF"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("parse YTDAILY_CUTOFF: %w (use RFC3339 format)", err)
		}
		c.Cutoff = t
	}
	if v := os.Getenv("YTDAILY_MIRROR_LATEST"); v != "" {
		c.MirrorLatest = v == "true" || v == "1"
	}
	if v := os.Getenv("YTDAILY_LATEST_SHEET"); v != "" {
		c.LatestSheet = v
	}
	if v := os.Getenv("YTDAILY_API_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.APIRate = f
		}
	}
	if v := os.Getenv("YTDAILY_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// resolveKey returns the service account key bytes. A value starting with
// "@" names a file holding the key; anything else is the inline JSON.
func resolveKey(v string) ([]byte, error) {
	if path, ok := strings.CutPrefix(v, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read key file: %w", err)
		}
		return data, nil
	}
	return []byte(v), nil
}

// Validate checks that configuration values are valid and consistent.
// It returns an error if any configuration value is invalid.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("YTDAILY_API_KEY is required")
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("YTDAILY_SPREADSHEET_ID is required")
	}
	if len(c.ServiceAccountKey) == 0 {
		return fmt.Errorf("YTDAILY_SERVICE_ACCOUNT_KEY is required")
	}
	if c.ChannelFile == "" {
		return fmt.Errorf("channel file path must not be empty")
	}
	if c.Cutoff.IsZero() {
		return fmt.Errorf("cutoff must not be zero")
	}
	if c.APIRate <= 0 {
		return fmt.Errorf("api rate must be positive")
	}
	if c.MirrorLatest && c.LatestSheet == "" {
		return fmt.Errorf("latest sheet name must not be empty when mirroring is on")
	}
	return nil
}

// ReadChannelFile reads the tracked channel list: one channel ID per line,
// blank lines skipped, duplicates removed with the original order preserved.
// An unreadable or empty list is an error; the run cannot start without it.
func ReadChannelFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open channel list: %w", err)
	}
	defer f.Close()

	seen := make(map[string]bool)
	var channels []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		channels = append(channels, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read channel list: %w", err)
	}

	if len(channels) == 0 {
		return nil, fmt.Errorf("channel list %s is empty", path)
	}
	return channels, nil
}
