package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/amarktai/marketing-backend/internal/auth"
	"github.com/amarktai/marketing-backend/internal/service"
)

type Handler struct {
	svc      *service.Service
	sessions auth.SessionProvider
	log      zerolog.Logger
	rt       *realtimeHub
}

func New(svc *service.Service, sessions auth.SessionProvider, log zerolog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		sessions: sessions,
		log:      log,
		rt:       newRealtimeHub(),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
