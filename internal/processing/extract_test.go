package processing

import (
	"testing"

	"github.com/shorts-collector/internal/models"
	"github.com/stretchr/testify/require"
)

func fullVideoPayload() map[string]any {
	return map[string]any{
		"items": []any{
			map[string]any{
				"snippet": map[string]any{
					"title":                "Gato tocando piano",
					"description":          "o melhor vídeo da internet",
					"publishedAt":          "2024-03-01T12:00:00Z",
					"channelTitle":         "Canal do Gato",
					"channelId":            "UC123",
					"defaultAudioLanguage": "pt-BR",
				},
				"statistics": map[string]any{
					"viewCount":    "15000",
					"likeCount":    "1200",
					"commentCount": "45",
				},
				"contentDetails": map[string]any{
					"duration": "PT45S",
				},
				"status": map[string]any{
					"madeForKids": false,
				},
			},
		},
	}
}

func TestExtractVideoRecord_FullPayload(t *testing.T) {
	record := ExtractVideoRecord("abc123", "https://www.youtube.com/shorts/abc123", fullVideoPayload())

	require.Equal(t, "abc123", record.VideoID)
	require.Equal(t, "https://www.youtube.com/shorts/abc123", record.URL)
	require.Equal(t, "Gato tocando piano", record.Title)
	require.Equal(t, "o melhor vídeo da internet", record.Description)
	require.Equal(t, "2024-03-01T12:00:00Z", record.PublishedAt)
	require.Equal(t, "Canal do Gato", record.ChannelTitle)
	require.Equal(t, "UC123", record.ChannelID)

	require.NotNil(t, record.ViewCount)
	require.Equal(t, int64(15000), *record.ViewCount)
	require.NotNil(t, record.LikeCount)
	require.Equal(t, int64(1200), *record.LikeCount)
	require.NotNil(t, record.CommentCount)
	require.Equal(t, int64(45), *record.CommentCount)

	require.Equal(t, "PT45S", record.DurationISO)
	require.NotNil(t, record.DurationSeconds)
	require.Equal(t, int64(45), *record.DurationSeconds)
	require.Equal(t, models.ContentTypeShort, record.ContentType)
	require.Equal(t, "pt-BR", record.Language)
	require.NotNil(t, record.MadeForKids)
	require.False(t, *record.MadeForKids)
	require.False(t, record.Empty())
}

func TestExtractVideoRecord_NoItems(t *testing.T) {
	for name, payload := range map[string]map[string]any{
		"nil payload":    nil,
		"missing items":  {},
		"empty items":    {"items": []any{}},
		"error sentinel": {"error": "API error 403"},
	} {
		t.Run(name, func(t *testing.T) {
			record := ExtractVideoRecord("abc123", "https://example.com/v", payload)

			require.True(t, record.Empty())
			require.Equal(t, models.ContentTypeVideo, record.ContentType)
			require.Equal(t, "unknown", record.Language)
			require.Nil(t, record.ViewCount)
			require.Nil(t, record.MadeForKids)
		})
	}
}

func TestExtractVideoRecord_FieldIsolation(t *testing.T) {
	payload := map[string]any{
		"items": []any{
			map[string]any{
				"snippet": map[string]any{
					"title": "still extracted",
				},
				"statistics": map[string]any{
					"viewCount": "not-a-number",
					"likeCount": "10",
				},
				// contentDetails and status absent entirely
			},
		},
	}

	record := ExtractVideoRecord("abc", "https://www.youtube.com/watch?v=abc", payload)

	require.Equal(t, "still extracted", record.Title)
	require.Nil(t, record.ViewCount, "uncoercible counter degrades to null")
	require.NotNil(t, record.LikeCount)
	require.Equal(t, int64(10), *record.LikeCount)
	require.Equal(t, "", record.DurationISO)
	require.Nil(t, record.DurationSeconds)
	require.Equal(t, models.ContentTypeVideo, record.ContentType)
	require.Equal(t, "unknown", record.Language)
}

func TestExtractVideoRecord_NumericCounters(t *testing.T) {
	// Counters decoded from JSON arrive as float64, not strings.
	payload := map[string]any{
		"items": []any{
			map[string]any{
				"statistics": map[string]any{
					"viewCount": float64(321),
				},
			},
		},
	}

	record := ExtractVideoRecord("abc", "", payload)

	require.NotNil(t, record.ViewCount)
	require.Equal(t, int64(321), *record.ViewCount)
}

func TestExtractVideoRecord_UnexpectedItemShape(t *testing.T) {
	record := ExtractVideoRecord("abc", "", map[string]any{"items": []any{"not an object"}})

	require.True(t, record.Empty())
	require.Equal(t, models.ContentTypeVideo, record.ContentType)
}
