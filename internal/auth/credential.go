// Package auth holds the admin credential check for destructive routes.
//
// There are no user accounts: viewers are opaque ids, and the only privileged
// action (note deletion) is gated by a single shared secret carried in the
// x-admin-key header.
package auth

import "crypto/subtle"

// HeaderName is the request header the admin secret travels in.
const HeaderName = "x-admin-key"

// Credential is the secret supplied by a request, passed explicitly into
// service calls instead of being read from ambient request state.
type Credential string

// Matches reports whether the credential equals the configured secret.
// An empty secret means admin deletion is disabled: nothing matches it.
// Comparison is constant-time.
func (c Credential) Matches(secret string) bool {
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(c), []byte(secret)) == 1
}
