package models

// Schema constants for the enriched JSON envelope.
const (
	SchemaVersion       = "2.0"
	SourceTag           = "youtube_data_api_v3"
	TranscriptSourceTag = "auto_generated"
)

// EnvelopeMetadata identifies where and when a record set was collected.
type EnvelopeMetadata struct {
	Source        string `json:"source"`
	CollectedAt   string `json:"collected_at"`
	SchemaVersion string `json:"schema_version"`
}

// Transcription is the transcript sub-object of the enriched envelope.
type Transcription struct {
	Text          string `json:"text"`
	Language      string `json:"language"`
	Source        string `json:"source"`
	WordCount     int    `json:"word_count"`
	HasTimestamps bool   `json:"has_timestamps"`
}

// Envelope is the enriched, versioned output written to dados.json.
type Envelope struct {
	Metadata      EnvelopeMetadata  `json:"_metadata"`
	Video         VideoRecord       `json:"video"`
	Transcription Transcription     `json:"transcription"`
	Comments      []CommentRecord   `json:"comments"`
	Engagement    EngagementSummary `json:"engagement"`
}

// RawEnvelope is the archival copy written to dados_raw.json. It carries
// no derived fields beyond the normalized records themselves.
type RawEnvelope struct {
	Video         VideoRecord     `json:"video"`
	Comments      []CommentRecord `json:"comments"`
	Transcription string          `json:"transcription"`
}
