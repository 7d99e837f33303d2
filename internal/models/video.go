package models

// ContentType labels a video as regular or short-form content.
type ContentType string

const (
	ContentTypeShort ContentType = "short"
	ContentTypeVideo ContentType = "video"
)

// VideoRecord is the normalized, flat representation of one video's
// metadata. Every field is always present in serialized output; absent
// source data degrades to empty strings or null, never to a missing key.
type VideoRecord struct {
	VideoID         string      `json:"video_id"`
	URL             string      `json:"url"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	PublishedAt     string      `json:"published_at"`
	ChannelTitle    string      `json:"channel_title"`
	ChannelID       string      `json:"channel_id"`
	ViewCount       *int64      `json:"view_count"`
	LikeCount       *int64      `json:"like_count"`
	CommentCount    *int64      `json:"comment_count"`
	DurationISO     string      `json:"duration_iso"`
	DurationSeconds *int64      `json:"duration_seconds"`
	ContentType     ContentType `json:"content_type"`
	Language        string      `json:"language"`
	MadeForKids     *bool       `json:"madeForKids"`
}

// Empty reports whether the record carries no source metadata at all,
// i.e. the metadata response had no usable item. Derived defaults
// (content_type, language) do not count as data.
func (v VideoRecord) Empty() bool {
	return v.VideoID == "" && v.URL == "" && v.Title == "" && v.ChannelID == "" &&
		v.ViewCount == nil && v.LikeCount == nil && v.CommentCount == nil
}
