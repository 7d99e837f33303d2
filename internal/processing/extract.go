package processing

import (
	"log"

	"github.com/shorts-collector/internal/models"
)

// ExtractVideoRecord maps a raw videos.list response onto a normalized
// VideoRecord. A response without a usable item (deleted or private
// video, error sentinel) yields an all-default record rather than an
// error; individual malformed fields degrade to their defaults without
// affecting the rest of the record.
func ExtractVideoRecord(videoID, url string, details map[string]any) models.VideoRecord {
	record := models.VideoRecord{Language: "unknown"}

	items := getList(details, "items")
	if len(items) == 0 {
		record.ContentType = DetectContentType("", nil)
		return record
	}

	item, ok := items[0].(map[string]any)
	if !ok {
		log.Printf("extract: unexpected item shape for video %s", videoID)
		record.ContentType = DetectContentType("", nil)
		return record
	}

	snippet := getMap(item, "snippet")
	statistics := getMap(item, "statistics")
	contentDetails := getMap(item, "contentDetails")
	status := getMap(item, "status")

	record.VideoID = videoID
	record.URL = url
	record.Title = getString(snippet, "title")
	record.Description = getString(snippet, "description")
	record.PublishedAt = getString(snippet, "publishedAt")
	record.ChannelTitle = getString(snippet, "channelTitle")
	record.ChannelID = getString(snippet, "channelId")
	record.ViewCount = countField(statistics, "viewCount", videoID)
	record.LikeCount = countField(statistics, "likeCount", videoID)
	record.CommentCount = countField(statistics, "commentCount", videoID)
	record.DurationISO = getString(contentDetails, "duration")
	record.DurationSeconds = ParseISODuration(record.DurationISO)
	record.ContentType = DetectContentType(url, record.DurationSeconds)
	record.MadeForKids = getBool(status, "madeForKids")

	if lang := getString(snippet, "defaultAudioLanguage"); lang != "" {
		record.Language = lang
	}

	return record
}

// countField reads a statistics counter, logging when the counter is
// present but not coercible so the degradation is visible to operators.
func countField(statistics map[string]any, key, videoID string) *int64 {
	v, present := statistics[key]
	if !present {
		return nil
	}
	n, ok := coerceInt64(v)
	if !ok {
		log.Printf("extract: invalid %s %v for video %s", key, v, videoID)
		return nil
	}
	return &n
}
