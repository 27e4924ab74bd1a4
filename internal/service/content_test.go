package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amarktai/marketing-backend/internal/models"
)

func TestGenerate_YouTubeTemplate(t *testing.T) {
	svc := newTestService()

	c, err := svc.Content.Generate(context.Background(), "webapp-1", models.PlatformYouTube)
	require.NoError(t, err)

	assert.Equal(t, models.TypeVideo, c.Type)
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, "How to Boost Productivity with AI Tools", c.Title)
	assert.Equal(t, []string{"Productivity", "AI", "TeamWork", "Innovation"}, c.Hashtags)
	assert.NotEmpty(t, c.Caption)
	assert.True(t, strings.HasPrefix(c.ID, "content-"), "id %q", c.ID)
	assert.Equal(t, "webapp-1", c.WebAppID)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
	require.Len(t, c.MediaURLs, 1)
	assert.True(t, strings.HasPrefix(c.MediaURLs[0], "/media/generated/youtube-"), "media url %q", c.MediaURLs[0])
}

func TestGenerate_NonVideoPlatformsGetImages(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.Content.Generate(ctx, "webapp-1", models.PlatformFacebook)
	require.NoError(t, err)
	assert.Equal(t, models.TypeImage, c.Type)
	assert.Equal(t, "Why Smart Teams Choose AI", c.Title)

	c, err = svc.Content.Generate(ctx, "webapp-1", models.PlatformTikTok)
	require.NoError(t, err)
	assert.Equal(t, models.TypeVideo, c.Type)
}

func TestGenerate_EveryPlatformHasATemplate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, p := range models.AllPlatforms {
		c, err := svc.Content.Generate(ctx, "webapp-1", p)
		require.NoError(t, err, "platform %s", p)
		assert.NotEmpty(t, c.Title, "platform %s", p)
		assert.NotEmpty(t, c.Caption, "platform %s", p)
		assert.NotEmpty(t, c.Hashtags, "platform %s", p)
	}
}

func TestApproveRejectFlow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.Content.Generate(ctx, "webapp-1", models.PlatformInstagram)
	require.NoError(t, err)

	approved, err := svc.Content.Approve(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)
	assert.True(t, approved.UpdatedAt.After(c.UpdatedAt))

	_, err = svc.Content.Reject(ctx, "content-missing")
	require.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, err.Error(), "content")
}

func TestApproveAll_SkipsMissingIDs(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Content.Generate(ctx, "webapp-1", models.PlatformYouTube)
	require.NoError(t, err)
	c, err := svc.Content.Generate(ctx, "webapp-1", models.PlatformTwitter)
	require.NoError(t, err)

	approved, err := svc.Content.ApproveAll(ctx, []string{a.ID, "content-missing", c.ID})
	require.NoError(t, err, "missing ids must not fail the bulk operation")
	assert.Equal(t, 2, approved)

	for _, id := range []string{a.ID, c.ID} {
		got, err := svc.Content.Get(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, models.StatusApproved, got.Status)
	}
}

func TestUpdateCaption(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.Content.Generate(ctx, "webapp-1", models.PlatformLinkedIn)
	require.NoError(t, err)

	updated, err := svc.Content.UpdateCaption(ctx, c.ID, "Rewritten for our audience.")
	require.NoError(t, err)
	assert.Equal(t, "Rewritten for our audience.", updated.Caption)
	assert.Equal(t, c.Title, updated.Title)
	assert.True(t, updated.UpdatedAt.After(c.UpdatedAt))

	_, err = svc.Content.UpdateCaption(ctx, "content-missing", "x")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestListContent_StatusFilter(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a, err := svc.Content.Generate(ctx, "webapp-1", models.PlatformYouTube)
	require.NoError(t, err)
	_, err = svc.Content.Generate(ctx, "webapp-1", models.PlatformTikTok)
	require.NoError(t, err)

	_, err = svc.Content.Approve(ctx, a.ID)
	require.NoError(t, err)

	all, err := svc.Content.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	approved := models.StatusApproved
	filtered, err := svc.Content.List(ctx, &approved)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, a.ID, filtered[0].ID)

	pending, err := svc.Content.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, models.StatusPending, pending[0].Status)
}

func TestContentGet_MissingIsNilNotError(t *testing.T) {
	svc := newTestService()
	got, err := svc.Content.Get(context.Background(), "content-nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}
