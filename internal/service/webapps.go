package service

import (
	"context"
	"time"

	"github.com/amarktai/marketing-backend/internal/models"
	"github.com/amarktai/marketing-backend/internal/store"
)

type WebAppService struct {
	st  *store.Store
	lat Latency
}

func (s *WebAppService) List(ctx context.Context) ([]models.WebApp, error) {
	s.lat.Sleep("webapps.list")
	return s.st.WebApps(), nil
}

// Get returns (nil, nil) for a missing id; absence is not an error.
func (s *WebAppService) Get(ctx context.Context, id string) (*models.WebApp, error) {
	s.lat.Sleep("webapps.get")
	w, ok := s.st.WebAppByID(id)
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (s *WebAppService) Create(ctx context.Context, in models.WebAppInput) (models.WebApp, error) {
	s.lat.Sleep("webapps.create")
	now := time.Now().UTC()
	w := models.WebApp{
		ID:             s.st.NextID("webapp"),
		UserID:         store.DemoUserID,
		Name:           in.Name,
		URL:            in.URL,
		Description:    in.Description,
		Category:       in.Category,
		TargetAudience: in.TargetAudience,
		Features:       in.Features,
		IsActive:       in.IsActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.st.AddWebApp(w)
	return w, nil
}

func (s *WebAppService) Update(ctx context.Context, id string, patch models.WebAppPatch) (models.WebApp, error) {
	s.lat.Sleep("webapps.update")
	now := time.Now().UTC()
	w, ok := s.st.UpdateWebApp(id, func(w *models.WebApp) {
		if patch.Name != nil {
			w.Name = *patch.Name
		}
		if patch.URL != nil {
			w.URL = *patch.URL
		}
		if patch.Description != nil {
			w.Description = *patch.Description
		}
		if patch.Category != nil {
			w.Category = *patch.Category
		}
		if patch.TargetAudience != nil {
			w.TargetAudience = *patch.TargetAudience
		}
		if patch.Features != nil {
			w.Features = patch.Features
		}
		if patch.IsActive != nil {
			w.IsActive = *patch.IsActive
		}
		w.UpdatedAt = now
	})
	if !ok {
		return models.WebApp{}, models.NotFoundf("web app", id)
	}
	return w, nil
}

// Delete is idempotent; deleting an absent id is a no-op.
func (s *WebAppService) Delete(ctx context.Context, id string) error {
	s.lat.Sleep("webapps.delete")
	s.st.DeleteWebApp(id)
	return nil
}
