package auth

import (
	"context"
	"errors"
	"time"
)

var ErrNoSession = errors.New("no active session")

type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionProvider is the capability set both strategies implement. The
// selected provider gates the protected route tree.
type SessionProvider interface {
	Mode() Mode
	SignIn(ctx context.Context, email, name string) (Session, error)
	SignOut(ctx context.Context, token string) error
	// Current returns ErrNoSession when the token does not resolve.
	Current(ctx context.Context, token string) (Session, error)
}

// NewSessionProvider picks the strategy for the configured publishable key.
func NewSessionProvider(publishableKey string) SessionProvider {
	if SelectMode(publishableKey) == ModeProvider {
		return newProviderSessions(publishableKey)
	}
	return newLocalDemoSessions()
}
