package export

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/shorts-collector/internal/models"
	"github.com/shorts-collector/internal/processing"
)

// writeJSON writes the enriched, versioned envelope with schema
// metadata, the transcription sub-object and the engagement summary.
func (w *Writer) writeJSON(video models.VideoRecord, comments []models.CommentRecord, transcript string) error {
	language := video.Language
	if language == "" {
		language = "unknown"
	}

	envelope := models.Envelope{
		Metadata: models.EnvelopeMetadata{
			Source:        models.SourceTag,
			CollectedAt:   timeNow().UTC().Format("2006-01-02T15:04:05Z"),
			SchemaVersion: models.SchemaVersion,
		},
		Video: video,
		Transcription: models.Transcription{
			Text:          transcript,
			Language:      language,
			Source:        models.TranscriptSourceTag,
			WordCount:     wordCount(transcript),
			HasTimestamps: false,
		},
		Comments:   comments,
		Engagement: processing.ComputeEngagement(video, comments),
	}

	return w.marshalTo(FileJSON, envelope)
}

// writeRawJSON writes the minimal archival envelope without derived
// fields.
func (w *Writer) writeRawJSON(video models.VideoRecord, comments []models.CommentRecord, transcript string) error {
	raw := models.RawEnvelope{
		Video:         video,
		Comments:      comments,
		Transcription: transcript,
	}
	return w.marshalTo(FileRawJSON, raw)
}

func (w *Writer) marshalTo(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	data = append(data, '\n')
	return writeFileAtomic(filepath.Join(w.dir, name), data)
}
