package handlers

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes registers every endpoint on the router. bdd_test.go builds the same
// table through this function, so the BDD suite always exercises the real
// routing.
func (h *Handler) Routes(r *mux.Router) {
	r.Use(RequestID, h.AccessLog, Metrics)

	r.HandleFunc("/health", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Web apps
	r.HandleFunc("/api/webapps", h.ListWebApps).Methods("GET")
	r.HandleFunc("/api/webapps", h.CreateWebApp).Methods("POST")
	r.HandleFunc("/api/webapps/{id}", h.GetWebApp).Methods("GET")
	r.HandleFunc("/api/webapps/{id}", h.UpdateWebApp).Methods("PUT")
	r.HandleFunc("/api/webapps/{id}", h.DeleteWebApp).Methods("DELETE")

	// Platform connections
	r.HandleFunc("/api/platforms", h.ListPlatforms).Methods("GET")
	r.HandleFunc("/api/platforms/{platform}", h.GetPlatform).Methods("GET")
	r.HandleFunc("/api/platforms/{platform}/connect", h.ConnectPlatform).Methods("POST")
	r.HandleFunc("/api/platforms/{platform}", h.DisconnectPlatform).Methods("DELETE")

	// Content review flow
	r.HandleFunc("/api/content", h.ListContent).Methods("GET")
	r.HandleFunc("/api/content/pending", h.ListPendingContent).Methods("GET")
	r.HandleFunc("/api/content/approve-all", h.ApproveAllContent).Methods("POST")
	r.HandleFunc("/api/content/generate", h.GenerateContent).Methods("POST")
	r.HandleFunc("/api/content/{id}", h.GetContent).Methods("GET")
	r.HandleFunc("/api/content/{id}", h.UpdateContentCaption).Methods("PUT")
	r.HandleFunc("/api/content/{id}/approve", h.ApproveContent).Methods("POST")
	r.HandleFunc("/api/content/{id}/reject", h.RejectContent).Methods("POST")

	// Analytics read model
	r.HandleFunc("/api/analytics/summary", h.GetAnalyticsSummary).Methods("GET")
	r.HandleFunc("/api/analytics/platforms/{platform}", h.GetPlatformStats).Methods("GET")

	// Sessions
	r.HandleFunc("/api/auth/mode", h.GetAuthMode).Methods("GET")
	r.HandleFunc("/api/auth/sign-in", h.SignIn).Methods("POST")
	r.HandleFunc("/api/auth/sign-out", h.SignOut).Methods("POST")
	r.HandleFunc("/api/auth/session", h.CurrentSession).Methods("GET")

	// Realtime + generated media
	r.HandleFunc("/api/events/ws", h.EventsWebSocket)
	r.HandleFunc("/media/generated/{name}", h.ServeGeneratedMedia).Methods("GET")
}
