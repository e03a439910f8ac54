package service

import (
	"math"
	"time"

	"github.com/postdeck/postdeck/internal/models"
	"github.com/postdeck/postdeck/internal/store"
	"github.com/postdeck/postdeck/internal/transfer"
)

type DashboardService interface {
	Summary() *transfer.DashboardSummary
}

type dashboardService struct {
	ps store.PostStore
}

func NewDashboardService(ps store.PostStore) DashboardService {
	return &dashboardService{ps: ps}
}

// Summary computes the dashboard aggregate from the post store. It reads
// only; no store state changes.
func (s *dashboardService) Summary() *transfer.DashboardSummary {
	posts := s.ps.GetAll()
	scheduled := s.ps.GetByStatus(models.PostStatusScheduled)

	var totalEngagement, totalReach int
	for _, p := range posts {
		totalEngagement += p.EngagementStats.Likes + p.EngagementStats.Comments + p.EngagementStats.Shares
		totalReach += p.EngagementStats.Reach
	}

	// Rate is defined as 0 when there is no reach at all.
	var rate float64
	if totalReach > 0 {
		rate = math.Round(float64(totalEngagement)/float64(totalReach)*100*10) / 10
	}

	return &transfer.DashboardSummary{
		TotalPosts:        len(posts),
		EngagementRate:    rate,
		TotalReach:        totalReach,
		ScheduledPosts:    len(scheduled),
		NextScheduledPost: nextScheduled(scheduled, time.Now()),
	}
}

// nextScheduled picks the scheduled post with the earliest scheduledFor
// that is still strictly in the future, or nil when none qualify.
func nextScheduled(scheduled []*models.Post, now time.Time) *models.Post {
	var next *models.Post
	for _, p := range scheduled {
		if p.ScheduledFor == nil || !p.ScheduledFor.After(now) {
			continue
		}
		if next == nil || p.ScheduledFor.Before(*next.ScheduledFor) {
			next = p
		}
	}
	return next
}
