package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/agendacraft/internal/domain/entities"
)

// SessionRepository persists transient agenda sessions
type SessionRepository interface {
	// Get retrieves a session, returning entities.ErrSessionNotFound when absent or expired
	Get(ctx context.Context, id uuid.UUID) (*entities.Session, error)

	// Save stores a session and refreshes its TTL
	Save(ctx context.Context, session *entities.Session) error

	// Delete removes a session
	Delete(ctx context.Context, id uuid.UUID) error
}
