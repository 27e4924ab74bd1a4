package handlers

import (
	"errors"
	"net/http"

	"github.com/amarktai/marketing-backend/internal/auth"
)

func (h *Handler) GetAuthMode(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"mode": string(h.sessions.Mode())})
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	session, err := h.sessions.SignIn(r.Context(), body.Email, body.Name)
	if err != nil {
		// Provider-backed mode never signs in here; the hosted UI does.
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(r.Context(), bearerToken(r)); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Current(r.Context(), bearerToken(r))
	if errors.Is(err, auth.ErrNoSession) {
		writeError(w, http.StatusUnauthorized, "No active session")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, session)
}
