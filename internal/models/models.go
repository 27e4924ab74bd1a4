package models

import "time"

// Platform is one of the six social destinations content can target.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
)

// AllPlatforms lists every valid platform in display order.
var AllPlatforms = []Platform{
	PlatformYouTube,
	PlatformTikTok,
	PlatformInstagram,
	PlatformFacebook,
	PlatformTwitter,
	PlatformLinkedIn,
}

// ParsePlatform validates a raw platform string.
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range AllPlatforms {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

type ContentStatus string

const (
	StatusPending  ContentStatus = "pending"
	StatusApproved ContentStatus = "approved"
	StatusRejected ContentStatus = "rejected"
	StatusPosted   ContentStatus = "posted"
	StatusFailed   ContentStatus = "failed"
)

// ParseContentStatus validates a raw status string (used for list filters).
func ParseContentStatus(s string) (ContentStatus, bool) {
	switch ContentStatus(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusPosted, StatusFailed:
		return ContentStatus(s), true
	}
	return "", false
}

type ContentType string

const (
	TypeVideo    ContentType = "video"
	TypeImage    ContentType = "image"
	TypeCarousel ContentType = "carousel"
	TypeText     ContentType = "text"
)

type WebApp struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	Name           string    `json:"name"`
	URL            string    `json:"url"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	TargetAudience string    `json:"targetAudience"`
	Features       []string  `json:"features"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// WebAppInput carries the caller-supplied fields of a new web app; id, owner
// and timestamps are assigned by the service.
type WebAppInput struct {
	Name           string   `json:"name"`
	URL            string   `json:"url"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	TargetAudience string   `json:"targetAudience"`
	Features       []string `json:"features"`
	IsActive       bool     `json:"isActive"`
}

// WebAppPatch is a partial update; nil fields are left unchanged.
type WebAppPatch struct {
	Name           *string  `json:"name,omitempty"`
	URL            *string  `json:"url,omitempty"`
	Description    *string  `json:"description,omitempty"`
	Category       *string  `json:"category,omitempty"`
	TargetAudience *string  `json:"targetAudience,omitempty"`
	Features       []string `json:"features,omitempty"`
	IsActive       *bool    `json:"isActive,omitempty"`
}

type PlatformConnection struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Platform    Platform   `json:"platform"`
	AccountName string     `json:"accountName"`
	AccountID   string     `json:"accountId"`
	IsActive    bool       `json:"isActive"`
	ConnectedAt time.Time  `json:"connectedAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

type ContentPerformance struct {
	Views    int     `json:"views"`
	Likes    int     `json:"likes"`
	Comments int     `json:"comments"`
	Shares   int     `json:"shares"`
	Clicks   int     `json:"clicks"`
	CTR      float64 `json:"ctr"`
}

type Content struct {
	ID           string              `json:"id"`
	UserID       string              `json:"userId"`
	WebAppID     string              `json:"webappId"`
	Platform     Platform            `json:"platform"`
	Type         ContentType         `json:"type"`
	Status       ContentStatus       `json:"status"`
	Title        string              `json:"title"`
	Caption      string              `json:"caption"`
	Hashtags     []string            `json:"hashtags"`
	MediaURLs    []string            `json:"mediaUrls"`
	ScheduledFor *time.Time          `json:"scheduledFor,omitempty"`
	PostedAt     *time.Time          `json:"postedAt,omitempty"`
	Performance  *ContentPerformance `json:"performance,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

type PlatformStats struct {
	Posts      int     `json:"posts"`
	Views      int     `json:"views"`
	Engagement int     `json:"engagement"`
	CTR        float64 `json:"ctr"`
}

type DailyStat struct {
	Date       string `json:"date"`
	Posts      int    `json:"posts"`
	Views      int    `json:"views"`
	Engagement int    `json:"engagement"`
}

// AnalyticsSummary is an independently-fed read model; it is never recomputed
// from the Content collection.
type AnalyticsSummary struct {
	TotalPosts        int                        `json:"totalPosts"`
	TotalViews        int                        `json:"totalViews"`
	TotalEngagement   int                        `json:"totalEngagement"`
	AvgCTR            float64                    `json:"avgCtr"`
	PlatformBreakdown map[Platform]PlatformStats `json:"platformBreakdown"`
	DailyStats        []DailyStat                `json:"dailyStats"`
}
