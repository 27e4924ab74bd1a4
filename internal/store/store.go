// Package store holds the process-wide in-memory collections behind the
// service layer. Nothing here survives a restart.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/amarktai/marketing-backend/internal/models"
)

type Store struct {
	mu          sync.RWMutex
	webapps     []models.WebApp
	connections []models.PlatformConnection
	content     []models.Content
	analytics   models.AnalyticsSummary

	lastIDMillis int64
}

func New() *Store {
	return &Store{}
}

// NextID fabricates a "<prefix>-<epoch-millis>" identifier. When two calls
// land on the same millisecond the value is bumped so ids stay
// time-ordered-unique.
func (s *Store) NextID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	millis := time.Now().UnixMilli()
	if millis <= s.lastIDMillis {
		millis = s.lastIDMillis + 1
	}
	s.lastIDMillis = millis
	return fmt.Sprintf("%s-%d", prefix, millis)
}

// WebApps returns a snapshot copy; callers may mutate the returned slice
// without affecting the store.
func (s *Store) WebApps() []models.WebApp {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.WebApp, len(s.webapps))
	copy(out, s.webapps)
	return out
}

func (s *Store) WebAppByID(id string) (models.WebApp, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.webapps {
		if w.ID == id {
			return w, true
		}
	}
	return models.WebApp{}, false
}

func (s *Store) AddWebApp(w models.WebApp) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.webapps = append(s.webapps, w)
}

// UpdateWebApp applies fn to the matching record under the write lock and
// returns the mutated copy. ok is false when the id is absent.
func (s *Store) UpdateWebApp(id string, fn func(*models.WebApp)) (models.WebApp, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.webapps {
		if s.webapps[i].ID == id {
			fn(&s.webapps[i])
			return s.webapps[i], true
		}
	}
	return models.WebApp{}, false
}

func (s *Store) DeleteWebApp(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.webapps {
		if s.webapps[i].ID == id {
			s.webapps = append(s.webapps[:i], s.webapps[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Connections() []models.PlatformConnection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PlatformConnection, len(s.connections))
	copy(out, s.connections)
	return out
}

func (s *Store) ConnectionByPlatform(p models.Platform) (models.PlatformConnection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.connections {
		if c.Platform == p {
			return c, true
		}
	}
	return models.PlatformConnection{}, false
}

// UpsertConnection replaces an existing connection for the same platform or
// appends a new one. One connection per platform is the invariant here.
func (s *Store) UpsertConnection(c models.PlatformConnection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.connections {
		if s.connections[i].Platform == c.Platform {
			s.connections[i] = c
			return
		}
	}
	s.connections = append(s.connections, c)
}

func (s *Store) DeleteConnectionByPlatform(p models.Platform) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.connections {
		if s.connections[i].Platform == p {
			s.connections = append(s.connections[:i], s.connections[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ContentAll() []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Content, len(s.content))
	copy(out, s.content)
	return out
}

func (s *Store) ContentByStatus(status models.ContentStatus) []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Content
	for _, c := range s.content {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) ContentByID(id string) (models.Content, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.content {
		if c.ID == id {
			return c, true
		}
	}
	return models.Content{}, false
}

func (s *Store) AddContent(c models.Content) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content = append(s.content, c)
}

func (s *Store) UpdateContent(id string, fn func(*models.Content)) (models.Content, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.content {
		if s.content[i].ID == id {
			fn(&s.content[i])
			return s.content[i], true
		}
	}
	return models.Content{}, false
}

// DueApprovedContent returns approved items whose scheduledFor is at or
// before now. Items without a schedule are left for an explicit publish.
func (s *Store) DueApprovedContent(now time.Time) []models.Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Content
	for _, c := range s.content {
		if c.Status == models.StatusApproved && c.ScheduledFor != nil && !c.ScheduledFor.After(now) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) Analytics() models.AnalyticsSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.analytics
	breakdown := make(map[models.Platform]models.PlatformStats, len(s.analytics.PlatformBreakdown))
	for k, v := range s.analytics.PlatformBreakdown {
		breakdown[k] = v
	}
	out.PlatformBreakdown = breakdown
	out.DailyStats = make([]models.DailyStat, len(s.analytics.DailyStats))
	copy(out.DailyStats, s.analytics.DailyStats)
	return out
}

func (s *Store) SetAnalytics(a models.AnalyticsSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics = a
}
