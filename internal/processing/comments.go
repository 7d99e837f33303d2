package processing

import (
	"log"
	"regexp"

	"github.com/shorts-collector/internal/models"
)

// StructureComments normalizes a raw comment-thread batch using the
// default spam patterns.
func StructureComments(data any) []models.CommentRecord {
	return StructureCommentsWith(data, DefaultSpamPatterns)
}

// StructureCommentsWith maps raw comment threads into ordered
// CommentRecords. Input that is not a thread list (an error sentinel, a
// nil payload) yields an empty result. A thread whose top-level comment
// cannot be parsed is skipped; a bad reply is dropped from its parent
// without affecting sibling replies. Source ordering is preserved.
func StructureCommentsWith(data any, spamPatterns []*regexp.Regexp) []models.CommentRecord {
	threads := threadList(data)
	structured := make([]models.CommentRecord, 0, len(threads))

	for i, t := range threads {
		thread, ok := t.(map[string]any)
		if !ok {
			log.Printf("comments: skipping thread %d: not an object", i)
			continue
		}

		commentObj, ok := thread["comment"].(map[string]any)
		if !ok {
			log.Printf("comments: skipping thread %d: unparseable top-level comment", i)
			continue
		}

		record := extractComment(commentObj, spamPatterns)
		for j, r := range getList(thread, "replies") {
			replyObj, ok := r.(map[string]any)
			if !ok {
				log.Printf("comments: skipping reply %d of comment %s", j, record.CommentID)
				continue
			}
			record.Replies = append(record.Replies, extractReply(replyObj))
		}

		structured = append(structured, record)
	}

	return structured
}

func threadList(data any) []any {
	switch v := data.(type) {
	case []any:
		return v
	case []map[string]any:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return items
	default:
		// Error sentinel or unexpected shape: no comments.
		return nil
	}
}

func extractComment(commentObj map[string]any, spamPatterns []*regexp.Regexp) models.CommentRecord {
	snippet := getMap(commentObj, "snippet")
	text := getString(snippet, "textOriginal")

	return models.CommentRecord{
		CommentID:   getString(commentObj, "id"),
		Author:      getString(snippet, "authorDisplayName"),
		Text:        text,
		LikeCount:   getCount(snippet, "likeCount"),
		PublishedAt: getString(snippet, "publishedAt"),
		Flags:       FlagCommentWith(text, spamPatterns),
		Replies:     []models.ReplyRecord{},
	}
}

func extractReply(replyObj map[string]any) models.ReplyRecord {
	snippet := getMap(replyObj, "snippet")

	return models.ReplyRecord{
		ReplyID:     getString(replyObj, "id"),
		Author:      getString(snippet, "authorDisplayName"),
		Text:        getString(snippet, "textOriginal"),
		LikeCount:   getCount(snippet, "likeCount"),
		PublishedAt: getString(snippet, "publishedAt"),
	}
}
