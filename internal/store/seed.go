package store

import (
	"time"

	"github.com/postdeck/postdeck/internal/models"
)

// seed loads the fixture data the dashboard ships with. It runs on every
// process start; there is no other source of state.
func seed(posts *postStore, templates *templateStore, analytics *analyticsStore) {
	now := time.Now()

	for _, p := range []*models.Post{
		{
			ID:              "1",
			Title:           "Summer Sale Campaign",
			Content:         "🌞 Summer Sale is here! Get 30% off all products. Limited time offer! #SummerSale #Discount",
			Platforms:       []string{"instagram", "facebook"},
			Status:          models.PostStatusPublished,
			PublishedAt:     timePtr(now.Add(-2 * time.Hour)),
			MediaURL:        strPtr("https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=400"),
			MediaType:       strPtr("image"),
			EngagementStats: models.EngagementStats{Likes: 342, Comments: 28, Shares: 15, Reach: 2400},
			CreatedAt:       now.Add(-3 * time.Hour),
		},
		{
			ID:              "2",
			Title:           "Monday Motivation Quote",
			Content:         "Success is not final, failure is not fatal: it is the courage to continue that counts. 💪 #MondayMotivation #Success",
			Platforms:       []string{"linkedin", "twitter"},
			Status:          models.PostStatusPublished,
			PublishedAt:     timePtr(now.Add(-24 * time.Hour)),
			MediaURL:        strPtr("https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=400"),
			MediaType:       strPtr("image"),
			EngagementStats: models.EngagementStats{Likes: 189, Comments: 12, Shares: 8, Reach: 1800},
			CreatedAt:       now.Add(-25 * time.Hour),
		},
		{
			ID:              "3",
			Title:           "New Product Launch",
			Content:         "Exciting news! 🚀 We're launching our new product line next week. Stay tuned for more details! #ProductLaunch #Innovation",
			Platforms:       []string{"facebook", "instagram", "linkedin"},
			Status:          models.PostStatusPublished,
			PublishedAt:     timePtr(now.Add(-48 * time.Hour)),
			MediaURL:        strPtr("https://images.unsplash.com/photo-1560472354-b33ff0c44a43?w=400"),
			MediaType:       strPtr("image"),
			EngagementStats: models.EngagementStats{Likes: 567, Comments: 45, Shares: 23, Reach: 3200},
			CreatedAt:       now.Add(-49 * time.Hour),
		},
	} {
		posts.put(p)
	}

	for _, t := range []*models.Template{
		{
			ID:              "t1",
			Name:            "Product Showcase",
			Description:     "Perfect for highlighting new products with compelling visuals and call-to-action.",
			Category:        "promotional",
			Platforms:       []string{"instagram", "facebook", "linkedin"},
			ContentTemplate: "🎉 Introducing our latest product: [PRODUCT_NAME]!\n\n[PRODUCT_DESCRIPTION]\n\n✨ Key features:\n• [FEATURE_1]\n• [FEATURE_2]\n• [FEATURE_3]\n\nGet yours today! Link in bio 👆\n\n#[BRAND] #[PRODUCT_CATEGORY] #NewProduct",
			ImageURL:        strPtr("https://images.unsplash.com/photo-1611224923853-80b023f02d71?w=300"),
			CreatedAt:       now,
		},
		{
			ID:              "t2",
			Name:            "Motivational Quote",
			Description:     "Inspire your audience with beautifully designed quote posts that drive engagement.",
			Category:        "motivational",
			Platforms:       []string{"instagram", "twitter", "linkedin"},
			ContentTemplate: "💫 \"[QUOTE_TEXT]\"\n\n- [QUOTE_AUTHOR]\n\nWhat's your favorite motivational quote? Share it in the comments! 👇\n\n#Motivation #Inspiration #[BRAND]",
			ImageURL:        strPtr("https://images.unsplash.com/photo-1493612276216-ee3925520721?w=300"),
			CreatedAt:       now,
		},
		{
			ID:              "t3",
			Name:            "Behind the Scenes",
			Description:     "Show your company culture and build authentic connections with your audience.",
			Category:        "behind-the-scenes",
			Platforms:       []string{"instagram", "facebook", "twitter"},
			ContentTemplate: "👥 Behind the scenes at [COMPANY_NAME]!\n\n[BTS_DESCRIPTION]\n\nWe love what we do and it shows in everything we create! 💼\n\n#BehindTheScenes #TeamWork #[BRAND] #CompanyCulture",
			ImageURL:        strPtr("https://images.unsplash.com/photo-1521737711867-e3b97375f902?w=300"),
			CreatedAt:       now,
		},
	} {
		templates.put(t)
	}

	entries := []*models.AnalyticsEntry{
		// Daily engagement rate for the sample week.
		{ID: "a1", Date: "2024-12-09", Platform: "instagram", Metric: models.MetricEngagementRate, Value: 62},
		{ID: "a2", Date: "2024-12-10", Platform: "instagram", Metric: models.MetricEngagementRate, Value: 81},
		{ID: "a3", Date: "2024-12-11", Platform: "instagram", Metric: models.MetricEngagementRate, Value: 74},
		{ID: "a4", Date: "2024-12-12", Platform: "instagram", Metric: models.MetricEngagementRate, Value: 92},
		{ID: "a5", Date: "2024-12-13", Platform: "instagram", Metric: models.MetricEngagementRate, Value: 88},
		{ID: "a6", Date: "2024-12-14", Platform: "instagram", Metric: models.MetricEngagementRate, Value: 121},
		{ID: "a7", Date: "2024-12-15", Platform: "instagram", Metric: models.MetricEngagementRate, Value: 103},

		// Follower counts per platform.
		{ID: "a8", Date: "2024-12-15", Platform: "facebook", Metric: models.MetricFollowers, Value: 12500},
		{ID: "a9", Date: "2024-12-15", Platform: "instagram", Metric: models.MetricFollowers, Value: 8900},
		{ID: "a10", Date: "2024-12-15", Platform: "linkedin", Metric: models.MetricFollowers, Value: 3200},
		{ID: "a11", Date: "2024-12-15", Platform: "twitter", Metric: models.MetricFollowers, Value: 5700},

		// Per-platform engagement.
		{ID: "a12", Date: "2024-12-15", Platform: "facebook", Metric: models.MetricPlatformEngagement, Value: 82},
		{ID: "a13", Date: "2024-12-15", Platform: "instagram", Metric: models.MetricPlatformEngagement, Value: 127},
		{ID: "a14", Date: "2024-12-15", Platform: "linkedin", Metric: models.MetricPlatformEngagement, Value: 64},
		{ID: "a15", Date: "2024-12-15", Platform: "twitter", Metric: models.MetricPlatformEngagement, Value: 41},
	}
	for _, e := range entries {
		e.CreatedAt = now
		analytics.put(e)
	}
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
