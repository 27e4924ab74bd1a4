package handlers

import (
	"errors"
	"net/http"

	"github.com/amarktai/marketing-backend/internal/models"
)

func (h *Handler) ListWebApps(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.WebApps.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *Handler) GetWebApp(w http.ResponseWriter, r *http.Request) {
	app, err := h.svc.WebApps.Get(r.Context(), pathVar(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if app == nil {
		writeError(w, http.StatusNotFound, "Web app not found")
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *Handler) CreateWebApp(w http.ResponseWriter, r *http.Request) {
	var in models.WebAppInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	app, err := h.svc.WebApps.Create(r.Context(), in)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

func (h *Handler) UpdateWebApp(w http.ResponseWriter, r *http.Request) {
	var patch models.WebAppPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	app, err := h.svc.WebApps.Update(r.Context(), pathVar(r, "id"), patch)
	if errors.Is(err, models.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Web app not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (h *Handler) DeleteWebApp(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.WebApps.Delete(r.Context(), pathVar(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
