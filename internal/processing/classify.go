package processing

import (
	"strings"

	"github.com/shorts-collector/internal/models"
)

// shortDurationMax is the longest duration, in seconds, still classified
// as short-form content when the URL gives no hint.
const shortDurationMax = 60

// DetectContentType classifies a video as short or regular content.
// A "shorts" URL always wins; otherwise a known duration of at most 60
// seconds means short. Unknown duration without a shorts URL is a video.
func DetectContentType(url string, durationSeconds *int64) models.ContentType {
	if url != "" && strings.Contains(url, "shorts") {
		return models.ContentTypeShort
	}
	if durationSeconds != nil && *durationSeconds <= shortDurationMax {
		return models.ContentTypeShort
	}
	return models.ContentTypeVideo
}
