// Package auth selects the authentication mode and provides the two session
// strategies behind a common SessionProvider interface.
package auth

import "strings"

// Mode names one of the two disjoint authentication strategies.
type Mode string

const (
	// ModeProvider delegates sessions to the external identity provider.
	ModeProvider Mode = "provider"
	// ModeLocalDemo is the unpersisted in-process stand-in.
	ModeLocalDemo Mode = "local-demo"
)

// publishableKeyPrefix is the shape of a valid-looking Clerk publishable key.
const publishableKeyPrefix = "pk_"

// SelectMode is the pure mode decision: provider-backed iff the configured
// publishable key is non-empty and carries the expected prefix. Computed once
// at startup and held for the process lifetime.
func SelectMode(publishableKey string) Mode {
	if strings.HasPrefix(publishableKey, publishableKeyPrefix) {
		return ModeProvider
	}
	return ModeLocalDemo
}
