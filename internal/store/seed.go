package store

import (
	"time"

	"github.com/amarktai/marketing-backend/internal/models"
)

// DemoUserID is the single-tenant placeholder owner for every seeded and
// created record.
const DemoUserID = "user-1"

// Seed loads the demo dataset: two promoted web apps, two platform
// connections, content in every review state and the analytics read model.
func (s *Store) Seed(now time.Time) {
	created := now.Add(-72 * time.Hour)
	posted := now.Add(-24 * time.Hour)
	scheduled := now.Add(6 * time.Hour)

	s.AddWebApp(models.WebApp{
		ID:             "webapp-1",
		UserID:         DemoUserID,
		Name:           "TaskFlow",
		URL:            "https://taskflow.app",
		Description:    "AI-powered task management for small teams",
		Category:       "productivity",
		TargetAudience: "Startup founders and team leads",
		Features:       []string{"Smart task prioritization", "Team workload balancing", "Slack integration"},
		IsActive:       true,
		CreatedAt:      created,
		UpdatedAt:      created,
	})
	s.AddWebApp(models.WebApp{
		ID:             "webapp-2",
		UserID:         DemoUserID,
		Name:           "FitJourney",
		URL:            "https://fitjourney.io",
		Description:    "Personal fitness coaching with adaptive workout plans",
		Category:       "health",
		TargetAudience: "Busy professionals getting back in shape",
		Features:       []string{"Adaptive plans", "Progress photos", "Nutrition tracking"},
		IsActive:       true,
		CreatedAt:      created,
		UpdatedAt:      created,
	})

	s.UpsertConnection(models.PlatformConnection{
		ID:          "conn-1",
		UserID:      DemoUserID,
		Platform:    models.PlatformYouTube,
		AccountName: "TaskFlow Official",
		AccountID:   "youtube-demo1",
		IsActive:    true,
		ConnectedAt: created,
	})
	s.UpsertConnection(models.PlatformConnection{
		ID:          "conn-2",
		UserID:      DemoUserID,
		Platform:    models.PlatformInstagram,
		AccountName: "@taskflow.app",
		AccountID:   "instagram-demo2",
		IsActive:    true,
		ConnectedAt: created,
	})

	s.AddContent(models.Content{
		ID:        "content-1",
		UserID:    DemoUserID,
		WebAppID:  "webapp-1",
		Platform:  models.PlatformYouTube,
		Type:      models.TypeVideo,
		Status:    models.StatusPending,
		Title:     "How to Boost Productivity with AI Tools",
		Caption:   "Your team is drowning in busywork. Here is how AI changes that.",
		Hashtags:  []string{"Productivity", "AI", "TeamWork", "Innovation"},
		MediaURLs: []string{"/media/generated/youtube-seed1.png"},
		CreatedAt: created,
		UpdatedAt: created,
	})
	s.AddContent(models.Content{
		ID:           "content-2",
		UserID:       DemoUserID,
		WebAppID:     "webapp-1",
		Platform:     models.PlatformInstagram,
		Type:         models.TypeImage,
		Status:       models.StatusApproved,
		Title:        "Morning Routine of Successful Teams",
		Caption:      "Five habits the most productive teams share. Save this post.",
		Hashtags:     []string{"MorningRoutine", "TeamSuccess", "Productivity"},
		MediaURLs:    []string{"/media/generated/instagram-seed2.png"},
		ScheduledFor: &scheduled,
		CreatedAt:    created,
		UpdatedAt:    created,
	})
	s.AddContent(models.Content{
		ID:        "content-3",
		UserID:    DemoUserID,
		WebAppID:  "webapp-2",
		Platform:  models.PlatformTikTok,
		Type:      models.TypeVideo,
		Status:    models.StatusPosted,
		Title:     "POV: AI Does Your Work",
		Caption:   "When the standup takes 3 minutes because AI already sorted the backlog.",
		Hashtags:  []string{"AITools", "WorkLife", "ProductivityHacks"},
		MediaURLs: []string{"/media/generated/tiktok-seed3.png"},
		PostedAt:  &posted,
		Performance: &models.ContentPerformance{
			Views:    15420,
			Likes:    1236,
			Comments: 89,
			Shares:   214,
			Clicks:   542,
			CTR:      3.5,
		},
		CreatedAt: created,
		UpdatedAt: posted,
	})
	s.AddContent(models.Content{
		ID:        "content-4",
		UserID:    DemoUserID,
		WebAppID:  "webapp-2",
		Platform:  models.PlatformLinkedIn,
		Type:      models.TypeImage,
		Status:    models.StatusRejected,
		Title:     "The ROI of AI-Powered Teams",
		Caption:   "We measured it. The numbers surprised even us.",
		Hashtags:  []string{"Leadership", "AI", "BusinessStrategy", "Innovation"},
		MediaURLs: []string{"/media/generated/linkedin-seed4.png"},
		CreatedAt: created,
		UpdatedAt: created,
	})

	s.SetAnalytics(seedAnalytics(now))
}

func seedAnalytics(now time.Time) models.AnalyticsSummary {
	daily := make([]models.DailyStat, 0, 7)
	views := []int{4120, 3890, 5230, 4760, 6110, 5480, 7040}
	engagement := []int{310, 275, 402, 358, 486, 441, 539}
	posts := []int{2, 1, 3, 2, 3, 2, 4}
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		daily = append(daily, models.DailyStat{
			Date:       day.Format("2006-01-02"),
			Posts:      posts[6-i],
			Views:      views[6-i],
			Engagement: engagement[6-i],
		})
	}
	return models.AnalyticsSummary{
		TotalPosts:      17,
		TotalViews:      36630,
		TotalEngagement: 2811,
		AvgCTR:          3.2,
		PlatformBreakdown: map[models.Platform]models.PlatformStats{
			models.PlatformYouTube:   {Posts: 4, Views: 12400, Engagement: 890, CTR: 4.1},
			models.PlatformTikTok:    {Posts: 5, Views: 15420, Engagement: 1236, CTR: 3.5},
			models.PlatformInstagram: {Posts: 4, Views: 6200, Engagement: 510, CTR: 2.8},
			models.PlatformFacebook:  {Posts: 2, Views: 1450, Engagement: 98, CTR: 2.1},
			models.PlatformTwitter:   {Posts: 1, Views: 680, Engagement: 42, CTR: 1.9},
			models.PlatformLinkedIn:  {Posts: 1, Views: 480, Engagement: 35, CTR: 4.6},
		},
		DailyStats: daily,
	}
}
