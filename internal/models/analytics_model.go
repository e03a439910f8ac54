package models

import "time"

// AnalyticsEntry is one (date, platform, metric) observation. Date is a
// calendar-date string ("2006-01-02") and range queries compare it as a
// string, which is order-correct for that layout.
type AnalyticsEntry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Platform  string    `json:"platform"`
	Metric    string    `json:"metric"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"createdAt"`
}

const (
	MetricEngagementRate     = "engagement_rate"
	MetricFollowers          = "followers"
	MetricPlatformEngagement = "platform_engagement"
)
