// Package sessions keeps authenticated identities server side. The cookie
// only carries an opaque token; user id and role live in the store.
package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	UserID    uuid.UUID `json:"userId"`
	UserRole  string    `json:"userRole"`
	Admin     bool      `json:"admin,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store interface {
	// Create persists s and returns the token that identifies it.
	Create(ctx context.Context, s Session) (string, error)
	// Get returns ErrNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
