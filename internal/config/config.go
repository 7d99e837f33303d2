package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey   string
	DataDir         string
	Port            string
	SQLiteCloudConn string
	SpamPatterns    []string
	TranscriptLangs []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		YouTubeAPIKey:   os.Getenv("YOUTUBE_API_KEY"),
		DataDir:         os.Getenv("DATA_DIR"),
		Port:            os.Getenv("PORT"),
		SQLiteCloudConn: os.Getenv("SQLITE_CLOUD_CONN"),
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "dados"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	// Optional override of the comment spam pattern table, one regex per
	// comma-separated entry.
	if raw := os.Getenv("SPAM_PATTERNS"); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.SpamPatterns = append(cfg.SpamPatterns, p)
			}
		}
	}

	cfg.TranscriptLangs = []string{"pt", "en"}
	if raw := os.Getenv("TRANSCRIPT_LANGS"); raw != "" {
		langs := []string{}
		for _, l := range strings.Split(raw, ",") {
			if l = strings.TrimSpace(l); l != "" {
				langs = append(langs, l)
			}
		}
		if len(langs) > 0 {
			cfg.TranscriptLangs = langs
		}
	}

	return cfg, nil
}

// Validate checks that the credentials required for collection are set
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	return nil
}
