package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// GenerationRepository stores generation audit records using GORM
type GenerationRepository struct {
	db *gorm.DB
}

// NewGenerationRepository creates a new generation repository
func NewGenerationRepository(db *gorm.DB) *GenerationRepository {
	return &GenerationRepository{db: db}
}

// Create stores a new record
func (r *GenerationRepository) Create(ctx context.Context, record *entities.GenerationRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create generation record: %w", err)
	}
	return nil
}

// FindByID retrieves a record by ID
func (r *GenerationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.GenerationRecord, error) {
	var record entities.GenerationRecord
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrGenerationRecordNotFound
		}
		return nil, fmt.Errorf("failed to find generation record: %w", err)
	}
	return &record, nil
}

// ListBySession retrieves the records of one session, newest first
func (r *GenerationRepository) ListBySession(ctx context.Context, sessionID uuid.UUID, limit int) ([]*entities.GenerationRecord, error) {
	var records []*entities.GenerationRecord
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(NormalizeLimit(limit)).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list generation records by session: %w", err)
	}
	return records, nil
}

// NormalizeLimit applies the default page size and caps large requests
func NormalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
