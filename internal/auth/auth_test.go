package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectMode(t *testing.T) {
	cases := []struct {
		key  string
		want Mode
	}{
		{"pk_test_Y2xlcmsuZXhhbXBsZS5jb20k", ModeProvider},
		{"pk_live_abc123", ModeProvider},
		{"pk_", ModeProvider},
		{"", ModeLocalDemo},
		{"sk_test_abc", ModeLocalDemo},
		{"PK_test_abc", ModeLocalDemo},
		{" pk_test", ModeLocalDemo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SelectMode(tc.key), "key %q", tc.key)
	}
}

func TestNewSessionProvider_PicksStrategyOnce(t *testing.T) {
	assert.Equal(t, ModeProvider, NewSessionProvider("pk_test_x").Mode())
	assert.Equal(t, ModeLocalDemo, NewSessionProvider("").Mode())
	assert.Equal(t, ModeLocalDemo, NewSessionProvider("nonsense").Mode())
}

func TestLocalDemoSessions_Lifecycle(t *testing.T) {
	p := newLocalDemoSessions()
	ctx := context.Background()

	s, err := p.SignIn(ctx, "demo@amarktai.com", "Demo User")
	require.NoError(t, err)
	assert.Equal(t, DemoUserID, s.UserID)
	assert.NotEmpty(t, s.Token)

	got, err := p.Current(ctx, s.Token)
	require.NoError(t, err)
	assert.Equal(t, s.Token, got.Token)

	require.NoError(t, p.SignOut(ctx, s.Token))
	_, err = p.Current(ctx, s.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestLocalDemoSessions_DefaultsIdentity(t *testing.T) {
	p := newLocalDemoSessions()
	s, err := p.SignIn(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "demo@amarktai.com", s.Email)
	assert.Equal(t, "Demo User", s.Name)
}

func TestProviderSessions_AcceptsProviderTokensOnly(t *testing.T) {
	p := newProviderSessions("pk_test_x")
	ctx := context.Background()

	_, err := p.SignIn(ctx, "a@b.c", "A")
	assert.Error(t, err, "sign-in belongs to the hosted provider UI")

	s, err := p.Current(ctx, "sess_2abcDEF")
	require.NoError(t, err)
	assert.Equal(t, DemoUserID, s.UserID)

	_, err = p.Current(ctx, "demo_123")
	assert.ErrorIs(t, err, ErrNoSession)

	_, err = p.Current(ctx, "")
	assert.ErrorIs(t, err, ErrNoSession)

	assert.NoError(t, p.SignOut(ctx, "sess_2abcDEF"))
}
