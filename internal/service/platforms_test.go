package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarktai/marketing-backend/internal/models"
)

func TestConnectDisconnectCycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	conn, err := svc.Platforms.Connect(ctx, models.PlatformYouTube, "acme")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(conn.ID, "conn-"), "id %q", conn.ID)
	assert.True(t, strings.HasPrefix(conn.AccountID, "youtube-"), "account id %q", conn.AccountID)
	assert.True(t, conn.IsActive)

	got, err := svc.Platforms.GetByPlatform(ctx, models.PlatformYouTube)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "acme", got.AccountName)
	assert.True(t, got.IsActive)

	require.NoError(t, svc.Platforms.Disconnect(ctx, models.PlatformYouTube))

	got, err = svc.Platforms.GetByPlatform(ctx, models.PlatformYouTube)
	require.NoError(t, err)
	assert.Nil(t, got, "disconnected platform reads back as absent")
}

func TestConnect_UpsertsByPlatform(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Platforms.Connect(ctx, models.PlatformInstagram, "first")
	require.NoError(t, err)
	_, err = svc.Platforms.Connect(ctx, models.PlatformInstagram, "second")
	require.NoError(t, err)

	conns, err := svc.Platforms.List(ctx)
	require.NoError(t, err)
	require.Len(t, conns, 1, "reconnecting must not create a duplicate")
	assert.Equal(t, "second", conns[0].AccountName)
}

func TestDisconnect_MissingIsNoOp(t *testing.T) {
	svc := newTestService()
	require.NoError(t, svc.Platforms.Disconnect(context.Background(), models.PlatformLinkedIn))
}
