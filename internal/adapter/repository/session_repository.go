package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
	"github.com/johnquangdev/agendacraft/internal/infrastructure/cache"
)

const sessionKeyPrefix = "agenda:session:"

// SessionRepository stores agenda sessions as JSON in a key-value store
type SessionRepository struct {
	store cache.Store
	ttl   time.Duration
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(store cache.Store, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		store: store,
		ttl:   ttl,
	}
}

// SessionKey returns the store key of a session
func SessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*entities.Session, error) {
	raw, err := r.store.Get(ctx, SessionKey(id))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, entities.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session entities.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Save stores a session and refreshes its TTL
func (r *SessionRepository) Save(ctx context.Context, session *entities.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.store.Set(ctx, SessionKey(session.ID), raw, r.ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.Delete(ctx, SessionKey(id)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
