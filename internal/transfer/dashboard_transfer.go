package transfer

import "github.com/postdeck/postdeck/internal/models"

// DashboardSummary is the aggregate the dashboard cards render from.
// NextScheduledPost is omitted when no scheduled post lies in the future.
type DashboardSummary struct {
	TotalPosts        int          `json:"totalPosts"`
	EngagementRate    float64      `json:"engagementRate"`
	TotalReach        int          `json:"totalReach"`
	ScheduledPosts    int          `json:"scheduledPosts"`
	NextScheduledPost *models.Post `json:"nextScheduledPost,omitempty"`
}
