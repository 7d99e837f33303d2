package models

// CommentRecord is a normalized top-level comment with its ordered
// replies. Flags are computed once when the comment is structured and
// never recomputed afterwards.
type CommentRecord struct {
	CommentID   string        `json:"comment_id"`
	Author      string        `json:"author"`
	Text        string        `json:"text"`
	LikeCount   *int64        `json:"like_count"`
	PublishedAt string        `json:"published_at"`
	Flags       []string      `json:"flags"`
	Replies     []ReplyRecord `json:"replies"`
}

// ReplyRecord is a normalized reply to a top-level comment. Replies are
// not independently flagged.
type ReplyRecord struct {
	ReplyID     string `json:"reply_id"`
	Author      string `json:"author"`
	Text        string `json:"text"`
	LikeCount   *int64 `json:"like_count"`
	PublishedAt string `json:"published_at"`
}
