// Package youtube fetches raw video metadata and comment threads from
// the YouTube Data API v3. Fetchers return payloads in the raw shape the
// processing package consumes: a map with an optional "items" list, or
// an error sentinel {"error": <message>} that downstream stages tolerate
// as "no data".
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"
)

const maxResultsPerPage = 100

// Client wraps the YouTube Data API v3 service.
type Client struct {
	service *youtubeapi.Service
}

// NewClient creates a Data API client authenticated with an API key.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}

	service, err := youtubeapi.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service}, nil
}

// FetchVideoDetails returns the raw videos.list payload for one video.
// API failures are reported as the error sentinel, never as a Go error:
// a deleted or private video is a normal collection outcome.
func (c *Client) FetchVideoDetails(ctx context.Context, videoID string) map[string]any {
	call := c.service.Videos.
		List([]string{"contentDetails", "id", "snippet", "statistics", "status"}).
		Id(videoID).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		log.Printf("youtube: fetching video %s: %v", videoID, err)
		return errorSentinel(err)
	}

	return responseToMap(resp)
}

// FetchCommentThreads returns the video's top-level comments paired with
// their full reply lists, or the error sentinel when the API refuses
// (comments disabled, quota, etc.).
func (c *Client) FetchCommentThreads(ctx context.Context, videoID string) any {
	call := c.service.CommentThreads.
		List([]string{"snippet", "replies"}).
		VideoId(videoID).
		MaxResults(maxResultsPerPage).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		log.Printf("youtube: fetching comments for %s: %v", videoID, err)
		return errorSentinel(err)
	}

	threads := make([]map[string]any, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil || item.Snippet == nil || item.Snippet.TopLevelComment == nil {
			continue
		}

		replies := c.threadReplies(ctx, item)
		threads = append(threads, map[string]any{
			"comment": commentToMap(item.Snippet.TopLevelComment),
			"replies": replies,
		})
	}

	return threads
}

// threadReplies returns the replies embedded in the thread, refetching
// the full list when the API truncated it (threads embed at most five).
func (c *Client) threadReplies(ctx context.Context, item *youtubeapi.CommentThread) []any {
	var embedded []*youtubeapi.Comment
	if item.Replies != nil {
		embedded = item.Replies.Comments
	}

	if item.Snippet.TotalReplyCount > int64(len(embedded)) {
		full, err := c.fetchAllReplies(ctx, item.Id)
		if err != nil {
			log.Printf("youtube: fetching replies for comment %s: %v", item.Id, err)
		} else {
			return full
		}
	}

	replies := make([]any, 0, len(embedded))
	for _, r := range embedded {
		if r == nil {
			continue
		}
		replies = append(replies, commentToMap(r))
	}
	return replies
}

// fetchAllReplies pages through comments.list for one parent comment.
func (c *Client) fetchAllReplies(ctx context.Context, commentID string) ([]any, error) {
	var all []any
	pageToken := ""

	for {
		call := c.service.Comments.
			List([]string{"snippet"}).
			ParentId(commentID).
			MaxResults(maxResultsPerPage).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, err
		}

		for _, r := range resp.Items {
			if r == nil {
				continue
			}
			all = append(all, commentToMap(r))
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return all, nil
		}
	}
}

// commentToMap projects a typed comment onto the raw shape the
// structurer consumes. Built by hand rather than a marshal round-trip so
// zero like counts survive instead of being omitted.
func commentToMap(c *youtubeapi.Comment) map[string]any {
	snippet := map[string]any{}
	if c.Snippet != nil {
		snippet["authorDisplayName"] = c.Snippet.AuthorDisplayName
		snippet["textOriginal"] = c.Snippet.TextOriginal
		snippet["likeCount"] = float64(c.Snippet.LikeCount)
		snippet["publishedAt"] = c.Snippet.PublishedAt
	}
	return map[string]any{
		"id":      c.Id,
		"snippet": snippet,
	}
}

// responseToMap round-trips a typed API response into the raw map shape.
func responseToMap(v any) map[string]any {
	data, err := json.Marshal(v)
	if err != nil {
		return errorSentinel(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return errorSentinel(err)
	}
	return m
}

// errorSentinel builds the {"error": <message>} payload the pipeline
// treats as "no data".
func errorSentinel(err error) map[string]any {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return map[string]any{"error": fmt.Sprintf("API error %d", apiErr.Code)}
	}
	return map[string]any{"error": err.Error()}
}
