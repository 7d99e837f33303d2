package export

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shorts-collector/internal/models"
)

const bannerWidth = 60

// writeText writes the human-readable report: banner sections, video
// fields as key: value lines, then per-comment blocks with indented
// reply sub-lists. Report labels stay in Portuguese to match the
// artifacts consumed downstream.
func (w *Writer) writeText(video models.VideoRecord, comments []models.CommentRecord) error {
	var b strings.Builder
	banner := strings.Repeat("=", bannerWidth)
	rule := strings.Repeat("-", bannerWidth)

	b.WriteString(banner + "\n")
	b.WriteString("INFORMAÇÕES DO VÍDEO\n")
	b.WriteString(banner + "\n")
	for _, f := range videoFieldLines(video) {
		b.WriteString(f + "\n")
	}

	b.WriteString("\n" + banner + "\n")
	fmt.Fprintf(&b, "COMENTÁRIOS E RESPOSTAS (%d)\n", len(comments))
	b.WriteString(banner + "\n")

	if len(comments) == 0 {
		b.WriteString("Nenhum comentário encontrado\n")
		return writeFileAtomic(filepath.Join(w.dir, FileText), []byte(b.String()))
	}

	for i, comment := range comments {
		fmt.Fprintf(&b, "\nComentário %d:\n", i+1)
		fmt.Fprintf(&b, "ID: %s\n", comment.CommentID)
		fmt.Fprintf(&b, "Autor: %s\n", comment.Author)
		fmt.Fprintf(&b, "Texto: %s\n", comment.Text)
		fmt.Fprintf(&b, "Likes: %s\n", countText(comment.LikeCount))
		fmt.Fprintf(&b, "Data: %s\n", comment.PublishedAt)

		if len(comment.Replies) > 0 {
			fmt.Fprintf(&b, "\n  Respostas (%d):\n", len(comment.Replies))
			for j, reply := range comment.Replies {
				fmt.Fprintf(&b, "  %d. %s: %s\n", j+1, reply.Author, reply.Text)
				fmt.Fprintf(&b, "     Likes: %s | Data: %s\n", countText(reply.LikeCount), reply.PublishedAt)
			}
		}

		b.WriteString(rule + "\n")
	}

	return writeFileAtomic(filepath.Join(w.dir, FileText), []byte(b.String()))
}

func videoFieldLines(v models.VideoRecord) []string {
	return []string{
		"video_id: " + v.VideoID,
		"url: " + v.URL,
		"title: " + v.Title,
		"description: " + v.Description,
		"published_at: " + v.PublishedAt,
		"channel_title: " + v.ChannelTitle,
		"channel_id: " + v.ChannelID,
		"view_count: " + countText(v.ViewCount),
		"like_count: " + countText(v.LikeCount),
		"comment_count: " + countText(v.CommentCount),
		"duration_iso: " + v.DurationISO,
		"duration_seconds: " + countText(v.DurationSeconds),
		"content_type: " + string(v.ContentType),
		"language: " + v.Language,
		"madeForKids: " + boolText(v.MadeForKids),
	}
}

func countText(n *int64) string {
	if n == nil {
		return "null"
	}
	return strconv.FormatInt(*n, 10)
}

func boolText(b *bool) string {
	if b == nil {
		return "null"
	}
	return strconv.FormatBool(*b)
}
