package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/agendacraft/internal/domain/entities"
	"github.com/johnquangdev/agendacraft/internal/infrastructure/cache"
)

func sampleSession() *entities.Session {
	sess := entities.NewSession(uuid.New(), 45)
	sess.MarkDisplaying(&entities.MeetingAgenda{
		Title:         "Weekly",
		TotalDuration: 45,
		Items: []entities.AgendaItem{{
			ID:                  uuid.NewString(),
			Title:               "Updates",
			Summary:             "Round the table.",
			ActionItems:         []string{"Post notes"},
			Stakeholders:        []string{"Team"},
			SuggestedPercentage: 100,
		}},
	})
	return sess
}

func TestSessionRepository_MemoryRoundTrip(t *testing.T) {
	store := cache.NewMemoryStore()
	defer store.Close()
	repo := NewSessionRepository(store, time.Hour)
	ctx := context.Background()

	sess := sampleSession()
	require.NoError(t, repo.Save(ctx, sess))

	got, err := repo.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SessionStateDisplaying, got.State)
	assert.Equal(t, 45, got.TotalDuration)
	require.NotNil(t, got.Agenda)
	assert.Equal(t, sess.Agenda.Items, got.Agenda.Items)

	require.NoError(t, repo.Delete(ctx, sess.ID))
	_, err = repo.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestSessionRepository_RedisTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cache.NewRedisStore(client)
	defer store.Close()
	repo := NewSessionRepository(store, 30*time.Minute)
	ctx := context.Background()

	sess := sampleSession()
	require.NoError(t, repo.Save(ctx, sess))
	assert.True(t, mr.Exists(SessionKey(sess.ID)))
	assert.Equal(t, 30*time.Minute, mr.TTL(SessionKey(sess.ID)))

	mr.FastForward(31 * time.Minute)
	_, err := repo.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestSessionRepository_CorruptValue(t *testing.T) {
	store := cache.NewMemoryStore()
	defer store.Close()
	repo := NewSessionRepository(store, time.Hour)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, store.Set(ctx, SessionKey(id), []byte("not json"), time.Hour))

	_, err := repo.Get(ctx, id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestNormalizeLimit(t *testing.T) {
	assert.Equal(t, 20, NormalizeLimit(0))
	assert.Equal(t, 20, NormalizeLimit(-3))
	assert.Equal(t, 5, NormalizeLimit(5))
	assert.Equal(t, 100, NormalizeLimit(1000))
}
