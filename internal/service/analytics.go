package service

import (
	"context"

	"github.com/amarktai/marketing-backend/internal/models"
	"github.com/amarktai/marketing-backend/internal/store"
)

type AnalyticsService struct {
	st  *store.Store
	lat Latency
}

func (s *AnalyticsService) Summary(ctx context.Context) (models.AnalyticsSummary, error) {
	s.lat.Sleep("analytics.summary")
	return s.st.Analytics(), nil
}

// PlatformStats returns the breakdown entry for one platform. Platforms
// absent from the breakdown report zeroes.
func (s *AnalyticsService) PlatformStats(ctx context.Context, p models.Platform) (models.PlatformStats, error) {
	s.lat.Sleep("analytics.platformStats")
	return s.st.Analytics().PlatformBreakdown[p], nil
}
