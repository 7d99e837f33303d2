// Package export serializes the normalized record set for one video into
// its persisted artifacts and orchestrates the per-video pipeline.
package export

import (
	"log"
	"strings"
	"time"

	"github.com/shorts-collector/internal/models"
)

// Artifact file names, one per output format.
const (
	FileJSON        = "dados.json"
	FileRawJSON     = "dados_raw.json"
	FileText        = "dados.txt"
	FileVideoCSV    = "video.csv"
	FileCommentsCSV = "comentarios.csv"
	FileRepliesCSV  = "respostas.csv"
	FileTranscript  = "transcricao.txt"
)

// timeNow is swapped in tests to pin the collection timestamp.
var timeNow = time.Now

// Writer persists one video's record set into a destination directory.
// Each artifact is guarded independently: a failing format is logged and
// skipped without blocking the others.
type Writer struct {
	dir string
}

// NewWriter returns a writer rooted at the video's destination directory.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteAll writes every applicable artifact and returns the manifest of
// file names actually written, in a fixed order. Conditional artifacts
// (CSVs, transcript) are skipped when they would be empty.
func (w *Writer) WriteAll(video models.VideoRecord, comments []models.CommentRecord, transcript string) []string {
	if comments == nil {
		comments = []models.CommentRecord{}
	}

	manifest := make([]string, 0, 7)
	record := func(name string, err error) {
		if err != nil {
			log.Printf("export: writing %s: %v", name, err)
			return
		}
		manifest = append(manifest, name)
	}

	record(FileJSON, w.writeJSON(video, comments, transcript))
	record(FileRawJSON, w.writeRawJSON(video, comments, transcript))
	record(FileText, w.writeText(video, comments))

	if !video.Empty() {
		record(FileVideoCSV, w.writeVideoCSV(video))
	}
	if len(comments) > 0 {
		record(FileCommentsCSV, w.writeCommentsCSV(comments))
	}
	if totalReplies(comments) > 0 {
		record(FileRepliesCSV, w.writeRepliesCSV(comments))
	}
	if strings.TrimSpace(transcript) != "" {
		record(FileTranscript, w.writeTranscript(transcript))
	}

	return manifest
}

func totalReplies(comments []models.CommentRecord) int {
	n := 0
	for _, c := range comments {
		n += len(c.Replies)
	}
	return n
}

// wordCount counts whitespace-separated tokens; blank text counts zero.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
