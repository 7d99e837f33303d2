package processing

import (
	"math"

	"github.com/shorts-collector/internal/models"
)

// ComputeEngagement derives ratio and reply aggregates from a video's
// counters and its structured comments. Ratios are nil when the view
// count is zero or absent; absent like/comment counters are treated as
// zero so a video with views but hidden likes still yields a ratio.
func ComputeEngagement(video models.VideoRecord, comments []models.CommentRecord) models.EngagementSummary {
	var views, likes, commentCount int64
	if video.ViewCount != nil {
		views = *video.ViewCount
	}
	if video.LikeCount != nil {
		likes = *video.LikeCount
	}
	if video.CommentCount != nil {
		commentCount = *video.CommentCount
	}

	summary := models.EngagementSummary{}
	for _, c := range comments {
		if len(c.Replies) > 0 {
			summary.CommentsWithReplies++
		}
		summary.TotalReplies += len(c.Replies)
	}

	if views > 0 {
		summary.LikeViewRatio = roundTo(float64(likes)/float64(views), 4)
		summary.CommentViewRatio = roundTo(float64(commentCount)/float64(views), 6)
	}

	return summary
}

func roundTo(v float64, decimals int) *float64 {
	scale := math.Pow10(decimals)
	rounded := math.Round(v*scale) / scale
	return &rounded
}
