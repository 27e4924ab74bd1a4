package handlers

import (
	"net/http"

	"github.com/amarktai/marketing-backend/internal/models"
)

func (h *Handler) ListPlatforms(w http.ResponseWriter, r *http.Request) {
	conns, err := h.svc.Platforms.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, conns)
}

func (h *Handler) GetPlatform(w http.ResponseWriter, r *http.Request) {
	p, ok := models.ParsePlatform(pathVar(r, "platform"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown platform")
		return
	}
	conn, err := h.svc.Platforms.GetByPlatform(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if conn == nil {
		writeError(w, http.StatusNotFound, "Platform not connected")
		return
	}
	writeJSON(w, http.StatusOK, conn)
}

func (h *Handler) ConnectPlatform(w http.ResponseWriter, r *http.Request) {
	p, ok := models.ParsePlatform(pathVar(r, "platform"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown platform")
		return
	}
	var body struct {
		AccountName string `json:"accountName"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	conn, err := h.svc.Platforms.Connect(r.Context(), p, body.AccountName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, conn)
}

func (h *Handler) DisconnectPlatform(w http.ResponseWriter, r *http.Request) {
	p, ok := models.ParsePlatform(pathVar(r, "platform"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Unknown platform")
		return
	}
	if err := h.svc.Platforms.Disconnect(r.Context(), p); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
