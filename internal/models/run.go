package models

// RunSummary is the durable record of one collection run, written as
// resumo.json in the run folder.
type RunSummary struct {
	RunID           string     `json:"run_id"`
	StartedAt       string     `json:"started_at"`
	FinishedAt      string     `json:"finished_at"`
	VideosCollected int        `json:"videos_collected"`
	VideosErrored   int        `json:"videos_errored"`
	TotalComments   int        `json:"total_comments"`
	TotalReplies    int        `json:"total_replies"`
	Videos          []RunVideo `json:"videos"`
}

// RunVideo records what was collected for one video in a run.
type RunVideo struct {
	VideoID   string   `json:"video_id"`
	Folder    string   `json:"folder"`
	Artifacts []string `json:"artifacts"`
}
