// Package scheduler drives the approved → posted|failed transitions the
// review flow leaves to a poster collaborator.
package scheduler

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/amarktai/marketing-backend/internal/models"
	"github.com/amarktai/marketing-backend/internal/store"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultRateLimits budgets publish attempts per platform; YouTube tolerates
// a higher request rate than the Meta networks.
func DefaultRateLimits() map[models.Platform]RateLimitConfig {
	return map[models.Platform]RateLimitConfig{
		models.PlatformYouTube:   {RequestsPerSecond: 3, Burst: 3},
		models.PlatformTikTok:    {RequestsPerSecond: 1, Burst: 2},
		models.PlatformInstagram: {RequestsPerSecond: 1, Burst: 2},
		models.PlatformFacebook:  {RequestsPerSecond: 1, Burst: 2},
		models.PlatformTwitter:   {RequestsPerSecond: 1, Burst: 1},
		models.PlatformLinkedIn:  {RequestsPerSecond: 1, Burst: 2},
	}
}

type Worker struct {
	Store    *store.Store
	Interval time.Duration
	Logger   zerolog.Logger

	// OnTransition fires after each posted/failed transition (realtime feed).
	OnTransition func(models.Content)

	limiters map[models.Platform]*rate.Limiter
}

func New(st *store.Store, interval time.Duration, logger zerolog.Logger) *Worker {
	limiters := make(map[models.Platform]*rate.Limiter)
	for p, cfg := range DefaultRateLimits() {
		limiters[p] = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	return &Worker{
		Store:    st,
		Interval: interval,
		Logger:   logger,
		limiters: limiters,
	}
}

// Start runs the poster loop until ctx is canceled.
func (w *Worker) Start(ctx context.Context) {
	interval := w.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	w.Logger.Info().Dur("interval", interval).Msg("poster worker started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info().Msg("poster worker stopped")
			return
		case <-ticker.C:
			posted, failed := w.RunOnce(ctx)
			if posted > 0 || failed > 0 {
				w.Logger.Info().Int("posted", posted).Int("failed", failed).Msg("poster pass finished")
			}
		}
	}
}

// RunOnce publishes every approved item whose schedule is due. Items on a
// platform without an active connection fail; items over the platform's rate
// budget are left for the next pass.
func (w *Worker) RunOnce(ctx context.Context) (posted, failed int) {
	now := time.Now().UTC()
	for _, c := range w.Store.DueApprovedContent(now) {
		lim := w.limiters[c.Platform]
		if lim != nil && !lim.Allow() {
			continue
		}

		conn, connected := w.Store.ConnectionByPlatform(c.Platform)
		if !connected || !conn.IsActive {
			if updated, ok := w.markFailed(c.ID, now); ok {
				failed++
				w.Logger.Warn().Str("contentId", c.ID).Str("platform", string(c.Platform)).
					Msg("publish failed: platform not connected")
				w.notify(updated)
			}
			continue
		}

		if updated, ok := w.markPosted(c.ID, now); ok {
			posted++
			w.Logger.Info().Str("contentId", c.ID).Str("platform", string(c.Platform)).
				Str("account", conn.AccountName).Msg("content posted")
			w.notify(updated)
		}
	}
	return posted, failed
}

func (w *Worker) markPosted(id string, now time.Time) (models.Content, bool) {
	applied := false
	c, ok := w.Store.UpdateContent(id, func(c *models.Content) {
		// Re-check under the lock; the item may have changed since the scan.
		if c.Status != models.StatusApproved {
			return
		}
		postedAt := now
		c.Status = models.StatusPosted
		c.PostedAt = &postedAt
		c.Performance = simulatePerformance()
		c.UpdatedAt = now
		applied = true
	})
	return c, ok && applied
}

func (w *Worker) markFailed(id string, now time.Time) (models.Content, bool) {
	applied := false
	c, ok := w.Store.UpdateContent(id, func(c *models.Content) {
		if c.Status != models.StatusApproved {
			return
		}
		c.Status = models.StatusFailed
		c.UpdatedAt = now
		applied = true
	})
	return c, ok && applied
}

func (w *Worker) notify(c models.Content) {
	if w.OnTransition != nil {
		w.OnTransition(c)
	}
}

// simulatePerformance fabricates early engagement numbers for a fresh post.
func simulatePerformance() *models.ContentPerformance {
	views := 500 + rand.Intn(20000)
	likes := views * (4 + rand.Intn(8)) / 100
	comments := likes / (8 + rand.Intn(10))
	shares := likes / (5 + rand.Intn(8))
	clicks := views * (1 + rand.Intn(4)) / 100
	ctr := float64(clicks) / float64(views) * 100
	return &models.ContentPerformance{
		Views:    views,
		Likes:    likes,
		Comments: comments,
		Shares:   shares,
		Clicks:   clicks,
		CTR:      float64(int(ctr*100)) / 100,
	}
}
