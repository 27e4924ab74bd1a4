package service

import (
	"context"
	"time"

	"github.com/amarktai/marketing-backend/internal/models"
	"github.com/amarktai/marketing-backend/internal/store"
)

type ContentService struct {
	st  *store.Store
	lat Latency
}

// List returns all content, or only items with the given status when the
// filter is non-nil.
func (s *ContentService) List(ctx context.Context, status *models.ContentStatus) ([]models.Content, error) {
	s.lat.Sleep("content.list")
	if status == nil {
		return s.st.ContentAll(), nil
	}
	return s.st.ContentByStatus(*status), nil
}

func (s *ContentService) ListPending(ctx context.Context) ([]models.Content, error) {
	s.lat.Sleep("content.listPending")
	return s.st.ContentByStatus(models.StatusPending), nil
}

// Get returns (nil, nil) for a missing id.
func (s *ContentService) Get(ctx context.Context, id string) (*models.Content, error) {
	s.lat.Sleep("content.get")
	c, ok := s.st.ContentByID(id)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *ContentService) Approve(ctx context.Context, id string) (models.Content, error) {
	s.lat.Sleep("content.approve")
	return s.setStatus(id, models.StatusApproved)
}

func (s *ContentService) Reject(ctx context.Context, id string) (models.Content, error) {
	s.lat.Sleep("content.reject")
	return s.setStatus(id, models.StatusRejected)
}

func (s *ContentService) setStatus(id string, status models.ContentStatus) (models.Content, error) {
	now := time.Now().UTC()
	c, ok := s.st.UpdateContent(id, func(c *models.Content) {
		c.Status = status
		c.UpdatedAt = now
	})
	if !ok {
		return models.Content{}, models.NotFoundf("content", id)
	}
	return c, nil
}

// ApproveAll approves every id that exists and silently skips the rest.
// The bulk operation is not atomic and reports no partial failures; the
// returned count is how many items were actually approved.
func (s *ContentService) ApproveAll(ctx context.Context, ids []string) (int, error) {
	s.lat.Sleep("content.approveAll")
	now := time.Now().UTC()
	approved := 0
	for _, id := range ids {
		if _, ok := s.st.UpdateContent(id, func(c *models.Content) {
			c.Status = models.StatusApproved
			c.UpdatedAt = now
		}); ok {
			approved++
		}
	}
	return approved, nil
}

func (s *ContentService) UpdateCaption(ctx context.Context, id, caption string) (models.Content, error) {
	s.lat.Sleep("content.updateCaption")
	now := time.Now().UTC()
	c, ok := s.st.UpdateContent(id, func(c *models.Content) {
		c.Caption = caption
		c.UpdatedAt = now
	})
	if !ok {
		return models.Content{}, models.NotFoundf("content", id)
	}
	return c, nil
}

// Generate produces one pending content item for the platform from its fixed
// template. The long delay models the AI generation round trip.
func (s *ContentService) Generate(ctx context.Context, webAppID string, p models.Platform) (models.Content, error) {
	s.lat.Sleep("content.generate")
	tpl := contentTemplates[p]
	now := time.Now().UTC()
	c := models.Content{
		ID:        s.st.NextID("content"),
		UserID:    store.DemoUserID,
		WebAppID:  webAppID,
		Platform:  p,
		Type:      typeForPlatform(p),
		Status:    models.StatusPending,
		Title:     tpl.Title,
		Caption:   tpl.Caption,
		Hashtags:  append([]string(nil), tpl.Hashtags...),
		MediaURLs: []string{"/media/generated/" + string(p) + "-" + randBase36(9) + ".png"},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.st.AddContent(c)
	return c, nil
}
