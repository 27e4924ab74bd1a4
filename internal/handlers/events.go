package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"github.com/amarktai/marketing-backend/internal/auth"
	"github.com/amarktai/marketing-backend/internal/models"
)

// realtimeHub fans content lifecycle events out to dashboard websockets,
// keyed by user id.
type realtimeHub struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]struct{}
}

func newRealtimeHub() *realtimeHub {
	return &realtimeHub{conns: make(map[string]map[*websocket.Conn]struct{})}
}

func (rt *realtimeHub) add(userID string, c *websocket.Conn) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	m := rt.conns[userID]
	if m == nil {
		m = make(map[*websocket.Conn]struct{})
		rt.conns[userID] = m
	}
	m[c] = struct{}{}
}

func (rt *realtimeHub) remove(userID string, c *websocket.Conn) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	m := rt.conns[userID]
	if m == nil {
		return
	}
	delete(m, c)
	if len(m) == 0 {
		delete(rt.conns, userID)
	}
}

func (rt *realtimeHub) broadcast(userID string, msg []byte) {
	rt.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(rt.conns[userID]))
	for c := range rt.conns[userID] {
		conns = append(conns, c)
	}
	rt.mu.Unlock()

	for _, c := range conns {
		if err := websocket.Message.Send(c, string(msg)); err != nil {
			_ = c.Close()
			rt.remove(userID, c)
		}
	}
}

type contentEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"userId"`
	ContentID string `json:"contentId,omitempty"`
	Platform  string `json:"platform,omitempty"`
	Status    string `json:"status,omitempty"`
	At        string `json:"at"`
}

// EmitContentEvent broadcasts one lifecycle transition; the poster worker is
// wired to this through main.
func (h *Handler) EmitContentEvent(typ string, c models.Content) {
	ev := contentEvent{
		Type:      typ,
		UserID:    c.UserID,
		ContentID: c.ID,
		Platform:  string(c.Platform),
		Status:    string(c.Status),
		At:        time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	h.log.Debug().Str("type", typ).Str("contentId", c.ID).Msg("realtime emit")
	h.rt.broadcast(c.UserID, b)
}

func (h *Handler) emitContentEvent(typ string, c models.Content) {
	h.EmitContentEvent(typ, c)
}

// EventsWebSocket streams content lifecycle events to the dashboard.
//
// URL: /api/events/ws?userId=...
func (h *Handler) EventsWebSocket(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))
	if userID == "" {
		userID = auth.DemoUserID
	}

	// The default handshake rejects mismatched Origins with a 403; the
	// dashboard dev server runs on another port, so accept any origin.
	wsServer := websocket.Server{
		Handshake: func(cfg *websocket.Config, req *http.Request) error { return nil },
		Handler: func(c *websocket.Conn) {
			h.log.Info().Str("userId", userID).Str("remote", r.RemoteAddr).Msg("realtime connect")
			h.rt.add(userID, c)
			defer h.rt.remove(userID, c)
			defer h.log.Info().Str("userId", userID).Msg("realtime disconnect")

			hello := contentEvent{
				Type:   "hello",
				UserID: userID,
				At:     time.Now().UTC().Format(time.RFC3339),
			}
			if b, err := json.Marshal(hello); err == nil {
				_ = websocket.Message.Send(c, string(b))
			}

			// Read loop keeps the connection open and detects disconnects.
			for {
				var ignored string
				if err := websocket.Message.Receive(c, &ignored); err != nil {
					break
				}
			}
		},
	}
	wsServer.ServeHTTP(w, r)
}
