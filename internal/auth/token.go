// Package auth provides session token minting and CSRF token handling.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// sessionTokenBytes is the entropy of an opaque session token.
const sessionTokenBytes = 32

// NewSessionToken returns a cryptographically random opaque token. The
// token carries no claims; identity and expiry live server-side in the
// session store.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
