package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DemoUserID matches the single-tenant placeholder the service layer stamps
// on every record.
const DemoUserID = "user-1"

// localDemoSessions keeps sessions in process memory; restarting the server
// signs everyone out.
type localDemoSessions struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func newLocalDemoSessions() *localDemoSessions {
	return &localDemoSessions{sessions: make(map[string]Session)}
}

func (l *localDemoSessions) Mode() Mode { return ModeLocalDemo }

func (l *localDemoSessions) SignIn(ctx context.Context, email, name string) (Session, error) {
	if strings.TrimSpace(email) == "" {
		email = "demo@amarktai.com"
	}
	if strings.TrimSpace(name) == "" {
		name = "Demo User"
	}
	s := Session{
		Token:     "demo_" + uuid.NewString(),
		UserID:    DemoUserID,
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	l.mu.Lock()
	l.sessions[s.Token] = s
	l.mu.Unlock()
	return s, nil
}

func (l *localDemoSessions) SignOut(ctx context.Context, token string) error {
	l.mu.Lock()
	delete(l.sessions, token)
	l.mu.Unlock()
	return nil
}

func (l *localDemoSessions) Current(ctx context.Context, token string) (Session, error) {
	l.mu.Lock()
	s, ok := l.sessions[token]
	l.mu.Unlock()
	if !ok {
		return Session{}, ErrNoSession
	}
	return s, nil
}
