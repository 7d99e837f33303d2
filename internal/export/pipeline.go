package export

import (
	"log"
	"regexp"
	"strings"

	"github.com/shorts-collector/internal/processing"
)

// VideoInput bundles one video's raw collected inputs: the metadata
// response and comment batch exactly as fetched (error sentinels
// included), plus the transcript text.
type VideoInput struct {
	VideoID    string
	URL        string
	Details    map[string]any
	Comments   any
	Transcript string

	// SpamPatterns overrides the default comment spam pattern table.
	// Nil means processing.DefaultSpamPatterns.
	SpamPatterns []*regexp.Regexp
}

// SaveVideoData runs the per-video pipeline: extract the video record,
// structure the comments, write every artifact. Missing upstream data is
// degraded, never fatal; an unexpected panic in any stage is recovered
// here so one bad video cannot terminate a multi-video run. Returns the
// manifest of artifacts written.
func SaveVideoData(input VideoInput, videoDir string) (manifest []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pipeline: no data collected for %s: %v", videoDir, r)
			manifest = nil
		}
	}()

	spam := input.SpamPatterns
	if spam == nil {
		spam = processing.DefaultSpamPatterns
	}

	record := processing.ExtractVideoRecord(input.VideoID, input.URL, input.Details)
	comments := processing.StructureCommentsWith(input.Comments, spam)

	if record.Empty() && len(comments) == 0 && strings.TrimSpace(input.Transcript) == "" {
		log.Printf("pipeline: no data collected for %s", videoDir)
	}

	manifest = NewWriter(videoDir).WriteAll(record, comments, input.Transcript)

	log.Printf("pipeline: data saved to %s", videoDir)
	for _, name := range manifest {
		log.Printf("  - %s", name)
	}

	return manifest
}
