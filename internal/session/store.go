package session

import (
	"context"
	"errors"

	"github.com/fjod/go_storefront/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps storefront state for the lifetime of a session. Entries expire after an idle TTL.
type Store interface {
	// Get returns ErrSessionNotFound for unknown or expired sessions
	Get(ctx context.Context, sessionID string) (*domain.State, error)

	// Save replaces the session state and refreshes its TTL
	Save(ctx context.Context, state *domain.State) error

	Delete(ctx context.Context, sessionID string) error

	Close() error
}
