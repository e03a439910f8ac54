package models

import "time"

// EngagementStats is zeroed at creation and only ever changes through
// fixture seeding; no exposed operation mutates it.
type EngagementStats struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
	Reach    int `json:"reach"`
}

type Post struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Content         string          `json:"content"`
	Platforms       []string        `json:"platforms"`
	Status          string          `json:"status"` // draft, scheduled, published
	ScheduledFor    *time.Time      `json:"scheduledFor"`
	PublishedAt     *time.Time      `json:"publishedAt"`
	MediaURL        *string         `json:"mediaUrl"`
	MediaType       *string         `json:"mediaType"`
	TemplateID      *string         `json:"templateId"`
	EngagementStats EngagementStats `json:"engagementStats"`
	CreatedAt       time.Time       `json:"createdAt"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)
