package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"YOUTUBE_API_KEY", "DATA_DIR", "PORT",
		"SQLITE_CLOUD_CONN", "SPAM_PATTERNS", "TRANSCRIPT_LANGS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "dados", cfg.DataDir)
	require.Equal(t, "8080", cfg.Port)
	require.Empty(t, cfg.YouTubeAPIKey)
	require.Empty(t, cfg.SpamPatterns)
	require.Equal(t, []string{"pt", "en"}, cfg.TranscriptLangs)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("DATA_DIR", "/tmp/coletas")
	t.Setenv("PORT", "9090")
	t.Setenv("SPAM_PATTERNS", ` \bfirst\b , ,\bsub4sub\b `)
	t.Setenv("TRANSCRIPT_LANGS", "es, fr")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "test-key", cfg.YouTubeAPIKey)
	require.Equal(t, "/tmp/coletas", cfg.DataDir)
	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, []string{`\bfirst\b`, `\bsub4sub\b`}, cfg.SpamPatterns)
	require.Equal(t, []string{"es", "fr"}, cfg.TranscriptLangs)
}

func TestLoad_BlankTranscriptLangsKeepDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRANSCRIPT_LANGS", " , ,")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"pt", "en"}, cfg.TranscriptLangs)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	require.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.YouTubeAPIKey = "test-key"
	require.NoError(t, cfg.Validate())
}
