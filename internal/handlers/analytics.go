package handlers

import (
	"net/http"

	"github.com/amarktai/marketing-backend/internal/models"
)

func (h *Handler) GetAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Analytics.Summary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (h *Handler) GetPlatformStats(w http.ResponseWriter, r *http.Request) {
	p, ok := models.ParsePlatform(pathVar(r, "platform"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown platform")
		return
	}
	stats, err := h.svc.Analytics.PlatformStats(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
