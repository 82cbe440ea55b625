package auth

import (
	"crypto/rand"
	"encoding/hex"
)

const sessionTokenBytes = 32

// NewSessionToken returns an opaque random token used as the session cookie value.
func NewSessionToken() (string, error) {
	b := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
