package ports

import (
	"context"

	"github.com/quillon/quillon/pkg/domain"
)

// SessionStore defines the interface for persisting answer sessions, so a
// questionnaire can be stopped and resumed, possibly on another instance.
type SessionStore interface {
	// Save persists the session under its ID, overwriting any prior state.
	Save(ctx context.Context, session *domain.Session) error

	// Load retrieves a session by ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions, in no particular order.
	List(ctx context.Context) ([]string, error)
}
