package models

// EngagementSummary holds derived popularity metrics for one video.
// Ratios are nil when the view count is zero or absent.
type EngagementSummary struct {
	LikeViewRatio       *float64 `json:"like_view_ratio"`
	CommentViewRatio    *float64 `json:"comment_view_ratio"`
	CommentsWithReplies int      `json:"comments_with_replies"`
	TotalReplies        int      `json:"total_replies"`
}
