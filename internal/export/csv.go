package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/shorts-collector/internal/models"
)

// utf8BOM keeps the CSVs openable in spreadsheet tools that sniff
// encoding from a byte-order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// writeVideoCSV writes the single-row tabular export of the video's
// scalar fields. Nested structures and flags are excluded.
func (w *Writer) writeVideoCSV(video models.VideoRecord) error {
	header := []string{
		"video_id", "url", "title", "description", "published_at",
		"channel_title", "channel_id", "view_count", "like_count",
		"comment_count", "duration_iso", "duration_seconds",
		"content_type", "language", "madeForKids",
	}
	row := []string{
		video.VideoID, video.URL, video.Title, video.Description, video.PublishedAt,
		video.ChannelTitle, video.ChannelID, countCell(video.ViewCount), countCell(video.LikeCount),
		countCell(video.CommentCount), video.DurationISO, countCell(video.DurationSeconds),
		string(video.ContentType), video.Language, boolCell(video.MadeForKids),
	}
	return w.writeCSV(FileVideoCSV, header, [][]string{row})
}

// writeCommentsCSV writes one row per top-level comment. Reply bodies
// are omitted to stay tabular; only the reply count is carried.
func (w *Writer) writeCommentsCSV(comments []models.CommentRecord) error {
	header := []string{"comment_id", "author", "text", "like_count", "published_at", "reply_count"}
	rows := make([][]string, 0, len(comments))
	for _, c := range comments {
		rows = append(rows, []string{
			c.CommentID, c.Author, c.Text, countCell(c.LikeCount),
			c.PublishedAt, strconv.Itoa(len(c.Replies)),
		})
	}
	return w.writeCSV(FileCommentsCSV, header, rows)
}

// writeRepliesCSV writes one row per reply anywhere in the tree, each
// carrying its parent comment's id and author.
func (w *Writer) writeRepliesCSV(comments []models.CommentRecord) error {
	header := []string{
		"comment_id", "comment_author", "reply_id", "reply_author",
		"reply_text", "reply_like_count", "reply_published_at",
	}
	var rows [][]string
	for _, c := range comments {
		for _, r := range c.Replies {
			rows = append(rows, []string{
				c.CommentID, c.Author, r.ReplyID, r.Author,
				r.Text, countCell(r.LikeCount), r.PublishedAt,
			})
		}
	}
	return w.writeCSV(FileRepliesCSV, header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	cw := csv.NewWriter(&buf)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return writeFileAtomic(filepath.Join(w.dir, name), buf.Bytes())
}

// writeTranscript writes the raw transcript string verbatim.
func (w *Writer) writeTranscript(transcript string) error {
	return writeFileAtomic(filepath.Join(w.dir, FileTranscript), []byte(transcript))
}

// countCell renders a nullable counter for CSV; absent values are empty
// cells, the way the original exports rendered missing data.
func countCell(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}

func boolCell(b *bool) string {
	if b == nil {
		return ""
	}
	return strconv.FormatBool(*b)
}
