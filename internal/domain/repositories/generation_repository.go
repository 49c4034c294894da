package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/johnquangdev/agendacraft/internal/domain/entities"
)

// GenerationRepository records generation attempts for auditing
type GenerationRepository interface {
	// Create stores a new record
	Create(ctx context.Context, record *entities.GenerationRecord) error

	// FindByID retrieves a record by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.GenerationRecord, error)

	// ListBySession retrieves the records of one session, newest first
	ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*entities.GenerationRecord, error)
}
