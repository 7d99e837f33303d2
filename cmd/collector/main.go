// Command collector fetches metadata, comments and transcripts for a
// list of YouTube videos and persists the normalized record set for each
// one under a timestamped run folder.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shorts-collector/internal/config"
	"github.com/shorts-collector/internal/export"
	"github.com/shorts-collector/internal/models"
	"github.com/shorts-collector/internal/processing"
	"github.com/shorts-collector/internal/store"
	"github.com/shorts-collector/internal/youtube"
)

type runStats struct {
	collected int
	errored   int
	comments  int
	replies   int
}

func main() {
	listFile := flag.String("f", "", "file with one video ID or URL per line")
	flag.Parse()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	logFile, err := setupLogging("logs")
	if err != nil {
		log.Printf("Warning: could not open log file: %v", err)
	} else {
		defer logFile.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Credential validation failed: %v", err)
	}
	log.Printf("Credentials validated")

	videos, err := videoArgs(*listFile, flag.Args())
	if err != nil {
		log.Fatalf("Failed to read video list: %v", err)
	}
	if len(videos) == 0 {
		log.Fatalf("No videos to collect: pass video IDs/URLs as arguments or with -f")
	}

	ctx := context.Background()
	client, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize YouTube API: %v", err)
	}
	transcripts := youtube.NewTranscriptClient()

	var archive *store.Database
	if cfg.SQLiteCloudConn != "" {
		archive, err = store.NewDatabase(cfg.SQLiteCloudConn)
		if err != nil {
			log.Printf("Warning: engagement archive unavailable: %v", err)
			archive = nil
		} else {
			defer archive.Close()
		}
	}

	var spam []*regexp.Regexp
	if len(cfg.SpamPatterns) > 0 {
		spam = processing.CompileSpamPatterns(cfg.SpamPatterns)
	}

	runID := uuid.NewString()
	start := time.Now()
	runFolder := filepath.Join(cfg.DataDir, "coleta_"+start.Format("20060102_150405"))
	if err := os.MkdirAll(runFolder, 0o755); err != nil {
		log.Fatalf("Failed to create run folder: %v", err)
	}
	log.Printf("Run %s: saving to %s", runID, runFolder)

	stats := runStats{}
	summary := models.RunSummary{
		RunID:     runID,
		StartedAt: start.UTC().Format(time.RFC3339),
	}

	collector := &collector{
		client:      client,
		transcripts: transcripts,
		archive:     archive,
		langs:       cfg.TranscriptLangs,
		spam:        spam,
		runID:       runID,
		runFolder:   runFolder,
	}

	for i, arg := range videos {
		if !collector.collect(ctx, i, len(videos), arg, &stats, &summary) {
			log.Printf("Stopping collection after error on video %d", i+1)
			break
		}
	}

	summary.FinishedAt = time.Now().UTC().Format(time.RFC3339)
	summary.VideosCollected = stats.collected
	summary.VideosErrored = stats.errored
	summary.TotalComments = stats.comments
	summary.TotalReplies = stats.replies
	if err := writeRunSummary(runFolder, summary); err != nil {
		log.Printf("Warning: could not write run summary: %v", err)
	}

	elapsed := time.Since(start)
	rule := strings.Repeat("=", 60)
	log.Println(rule)
	log.Println("COLLECTION SUMMARY")
	log.Println(rule)
	log.Printf("Videos collected: %d", stats.collected)
	log.Printf("Videos with errors: %d", stats.errored)
	log.Printf("Total comments: %s", humanize.Comma(int64(stats.comments)))
	log.Printf("Total replies: %s", humanize.Comma(int64(stats.replies)))
	log.Printf("Elapsed: %s", elapsed.Round(time.Second))
	log.Printf("Data saved to: %s", runFolder)
}

type collector struct {
	client      *youtube.Client
	transcripts *youtube.TranscriptClient
	archive     *store.Database
	langs       []string
	spam        []*regexp.Regexp
	runID       string
	runFolder   string
}

// collect processes one video end to end. Returns false when collection
// should stop (metadata fetch failed outright), mirroring the upstream
// behavior of aborting a run once the API starts refusing.
func (c *collector) collect(ctx context.Context, index, total int, arg string, stats *runStats, summary *models.RunSummary) bool {
	videoID, videoURL := parseVideoArg(arg)

	rule := strings.Repeat("=", 60)
	log.Println(rule)
	log.Printf("VIDEO %d/%d", index+1, total)
	log.Println(rule)
	log.Printf("Video ID: %s", videoID)

	videoDir := filepath.Join(c.runFolder, fmt.Sprintf("video_%d_%s", index+1, videoID))
	if err := os.MkdirAll(videoDir, 0o755); err != nil {
		log.Printf("Failed to create video folder: %v", err)
		stats.errored++
		return false
	}

	details := c.client.FetchVideoDetails(ctx, videoID)
	if msg, failed := details["error"]; failed {
		log.Printf("Error fetching video: %v", msg)
		stats.errored++
		return false
	}
	log.Printf("Video metadata obtained")

	comments := c.client.FetchCommentThreads(ctx, videoID)
	if threads, ok := comments.([]map[string]any); ok {
		replies := countReplies(threads)
		log.Printf("%d comments, %d replies collected", len(threads), replies)
		stats.comments += len(threads)
		stats.replies += replies
	} else {
		log.Printf("Warning: could not collect comments for %s", videoID)
	}

	transcript := c.transcripts.Fetch(ctx, videoID, c.langs)

	manifest := export.SaveVideoData(export.VideoInput{
		VideoID:      videoID,
		URL:          videoURL,
		Details:      details,
		Comments:     comments,
		Transcript:   transcript,
		SpamPatterns: c.spam,
	}, videoDir)

	summary.Videos = append(summary.Videos, models.RunVideo{
		VideoID:   videoID,
		Folder:    filepath.Base(videoDir),
		Artifacts: manifest,
	})

	if c.archive != nil {
		if data, err := os.ReadFile(filepath.Join(videoDir, export.FileJSON)); err == nil {
			if err := c.archive.StoreEngagement(c.runID, videoID, data); err != nil {
				log.Printf("Warning: engagement archive: %v", err)
			}
		}
	}

	stats.collected++
	return true
}

func countReplies(threads []map[string]any) int {
	n := 0
	for _, t := range threads {
		if replies, ok := t["replies"].([]any); ok {
			n += len(replies)
		}
	}
	return n
}

// parseVideoArg accepts a bare video ID or any common YouTube URL form
// and returns the ID plus a canonical URL for classification.
func parseVideoArg(arg string) (videoID, videoURL string) {
	switch {
	case strings.Contains(arg, "/shorts/"):
		parts := strings.Split(arg, "/shorts/")
		videoID = strings.SplitN(parts[len(parts)-1], "?", 2)[0]
		return videoID, arg
	case strings.Contains(arg, "watch?v="):
		parts := strings.SplitN(arg, "watch?v=", 2)
		videoID = strings.SplitN(parts[1], "&", 2)[0]
		return videoID, arg
	case strings.Contains(arg, "youtu.be/"):
		parts := strings.SplitN(arg, "youtu.be/", 2)
		videoID = strings.SplitN(parts[1], "?", 2)[0]
		return videoID, arg
	default:
		return arg, "https://www.youtube.com/shorts/" + arg
	}
}

// videoArgs merges the -f list file (one entry per line, # comments
// allowed) with positional arguments.
func videoArgs(listFile string, args []string) ([]string, error) {
	var videos []string

	if listFile != "" {
		f, err := os.Open(listFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			videos = append(videos, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	return append(videos, args...), nil
}

// setupLogging mirrors collector output to a timestamped logfile so runs
// can be audited after the fact.
func setupLogging(logDir string) (*os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	name := filepath.Join(logDir, "coleta_"+time.Now().Format("20060102_150405")+".log")
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return f, nil
}

func writeRunSummary(runFolder string, summary models.RunSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(runFolder, "resumo.json"), append(data, '\n'), 0o644)
}
