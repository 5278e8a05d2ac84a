package session

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillon/quillon/pkg/adapters/memory"
	"github.com/quillon/quillon/pkg/domain"
	"github.com/quillon/quillon/pkg/ports"
)

// wrappingStore decorates a store, adding context to Load errors the way
// file-backed stores tend to.
type wrappingStore struct {
	ports.SessionStore
}

func (s wrappingStore) Load(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.SessionStore.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session %q: %w", sessionID, err)
	}
	return session, nil
}

func TestLoadOrCreate(t *testing.T) {
	m := NewManager(memory.NewStore())
	ctx := context.Background()

	created, err := m.LoadOrCreate(ctx, "s1", "bail-habitation")
	require.NoError(t, err)
	assert.Equal(t, "bail-habitation", created.DocumentID)
	assert.Empty(t, created.Answers)

	// The session was persisted on creation.
	loaded, err := m.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "bail-habitation", loaded.DocumentID)
}

func TestLoadOrCreateWithWrappedNotFound(t *testing.T) {
	// A store may wrap the not-found sentinel; creation must still kick in.
	m := NewManager(wrappingStore{memory.NewStore()})
	ctx := context.Background()

	created, err := m.LoadOrCreate(ctx, "s1", "bail-habitation")
	require.NoError(t, err)
	assert.Equal(t, "bail-habitation", created.DocumentID)
}

func TestLoadOrCreateDocumentMismatch(t *testing.T) {
	m := NewManager(memory.NewStore())
	ctx := context.Background()

	_, err := m.LoadOrCreate(ctx, "s1", "bail-habitation")
	require.NoError(t, err)

	_, err = m.LoadOrCreate(ctx, "s1", "procuration")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "belongs to document")
}

func TestLoadMissing(t *testing.T) {
	m := NewManager(memory.NewStore())

	_, err := m.Load(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSaveRoundTrip(t *testing.T) {
	m := NewManager(memory.NewStore())
	ctx := context.Background()

	session, err := m.LoadOrCreate(ctx, "s1", "procuration")
	require.NoError(t, err)

	session.Answers["mandant_nom"] = "Durand"
	require.NoError(t, m.Save(ctx, session))

	loaded, err := m.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Durand", loaded.Answers["mandant_nom"])
	assert.False(t, loaded.UpdatedAt.Before(loaded.CreatedAt))
}

func TestDelete(t *testing.T) {
	m := NewManager(memory.NewStore())
	ctx := context.Background()

	_, err := m.LoadOrCreate(ctx, "s1", "procuration")
	require.NoError(t, err)
	require.NoError(t, m.Delete(ctx, "s1"))

	_, err = m.Load(ctx, "s1")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)

	ids, err := m.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, ids, "s1")
}

func TestWithLockSerializesAccess(t *testing.T) {
	m := NewManager(memory.NewStore())
	ctx := context.Background()

	const workers = 20
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithLock(ctx, "same", func(ctx context.Context) error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)

	// All lock entries were reference-counted away.
	m.mu.Lock()
	defer m.mu.Unlock()
	assert.Empty(t, m.locks)
}
