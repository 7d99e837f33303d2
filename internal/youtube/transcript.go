package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TranscriptClient fetches auto-generated captions from YouTube's
// timedtext endpoint. Transcript availability is best-effort: every
// failure mode degrades to an empty transcript.
type TranscriptClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewTranscriptClient creates a timedtext client with sane timeouts.
func NewTranscriptClient() *TranscriptClient {
	return &TranscriptClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://www.youtube.com/api/timedtext",
	}
}

type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

type timedtextEvent struct {
	Segs []timedtextSegment `json:"segs,omitempty"`
}

type timedtextSegment struct {
	UTF8 string `json:"utf8"`
}

// Fetch returns the transcript text for a video, trying each language in
// order and returning the first non-empty result. Returns "" when no
// transcript is available.
func (t *TranscriptClient) Fetch(ctx context.Context, videoID string, languages []string) string {
	if videoID == "" {
		return ""
	}
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	for _, lang := range languages {
		text, err := t.fetchLanguage(ctx, videoID, lang)
		if err != nil {
			log.Printf("youtube: transcript %s lang %s: %v", videoID, lang, err)
			continue
		}
		if strings.TrimSpace(text) != "" {
			log.Printf("youtube: transcript for %s obtained (%d characters)", videoID, len(text))
			return text
		}
	}

	log.Printf("youtube: no transcript available for %s", videoID)
	return ""
}

func (t *TranscriptClient) fetchLanguage(ctx context.Context, videoID, lang string) (string, error) {
	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", lang)
	params.Set("fmt", "json3")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("timedtext request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timedtext API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return joinTimedtext(body)
}

// joinTimedtext flattens the timedtext events into one string, events
// separated by single spaces.
func joinTimedtext(data []byte) (string, error) {
	var parsed timedtextResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal timedtext JSON: %w", err)
	}

	var parts []string
	for _, event := range parsed.Events {
		if len(event.Segs) == 0 {
			continue
		}
		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}
		if t := strings.TrimSpace(text.String()); t != "" {
			parts = append(parts, t)
		}
	}

	return strings.Join(parts, " "), nil
}
