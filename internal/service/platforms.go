package service

import (
	"context"
	"time"

	"github.com/amarktai/marketing-backend/internal/models"
	"github.com/amarktai/marketing-backend/internal/store"
)

type PlatformService struct {
	st  *store.Store
	lat Latency
}

func (s *PlatformService) List(ctx context.Context) ([]models.PlatformConnection, error) {
	s.lat.Sleep("platforms.list")
	return s.st.Connections(), nil
}

// GetByPlatform returns (nil, nil) when the platform is not connected.
func (s *PlatformService) GetByPlatform(ctx context.Context, p models.Platform) (*models.PlatformConnection, error) {
	s.lat.Sleep("platforms.get")
	c, ok := s.st.ConnectionByPlatform(p)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// Connect fabricates a connection as if an OAuth round trip had completed.
// Connecting an already-connected platform replaces the existing connection.
func (s *PlatformService) Connect(ctx context.Context, p models.Platform, accountName string) (models.PlatformConnection, error) {
	s.lat.Sleep("platforms.connect")
	c := models.PlatformConnection{
		ID:          s.st.NextID("conn"),
		UserID:      store.DemoUserID,
		Platform:    p,
		AccountName: accountName,
		AccountID:   string(p) + "-" + randBase36(9),
		IsActive:    true,
		ConnectedAt: time.Now().UTC(),
	}
	s.st.UpsertConnection(c)
	return c, nil
}

// Disconnect removes the connection entirely (no soft delete); absent
// platforms are a no-op.
func (s *PlatformService) Disconnect(ctx context.Context, p models.Platform) error {
	s.lat.Sleep("platforms.disconnect")
	s.st.DeleteConnectionByPlatform(p)
	return nil
}
