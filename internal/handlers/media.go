package handlers

import (
	"net/http"
	"strings"

	"github.com/amarktai/marketing-backend/internal/media"
)

// ServeGeneratedMedia renders the placeholder creative for a fabricated
// media URL. The platform is the name's prefix ("youtube-ab12cd9.png").
func (h *Handler) ServeGeneratedMedia(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "name")
	platform, _, _ := strings.Cut(name, "-")

	title := "Amarktai Marketing"
	if id := r.URL.Query().Get("contentId"); id != "" {
		if item, err := h.svc.Content.Get(r.Context(), id); err == nil && item != nil {
			title = item.Title
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if err := media.Render(w, platform, title); err != nil {
		h.log.Error().Err(err).Str("name", name).Msg("placeholder render failed")
	}
}
