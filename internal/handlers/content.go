package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/amarktai/marketing-backend/internal/models"
)

func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	var filter *models.ContentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := models.ParseContentStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "Unknown status")
			return
		}
		filter = &status
	}
	items, err := h.svc.Content.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) ListPendingContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Content.ListPending(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Content.Get(r.Context(), pathVar(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "Content not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) ApproveContent(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Content.Approve(r.Context(), pathVar(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Content not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.emitContentEvent("content.approved", item)
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) RejectContent(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Content.Reject(r.Context(), pathVar(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Content not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.emitContentEvent("content.rejected", item)
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) ApproveAllContent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	approved, err := h.svc.Content.ApproveAll(r.Context(), body.IDs)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"approved": approved,
		"message":  fmt.Sprintf("Approved %d items", approved),
	})
}

func (h *Handler) UpdateContentCaption(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Caption string `json:"caption"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.svc.Content.UpdateCaption(r.Context(), pathVar(r, "id"), body.Caption)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Content not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WebAppID string `json:"webappId"`
		Platform string `json:"platform"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p, ok := models.ParsePlatform(body.Platform)
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown platform")
		return
	}
	item, err := h.svc.Content.Generate(r.Context(), body.WebAppID, p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.emitContentEvent("content.pending", item)
	writeJSON(w, http.StatusCreated, item)
}
