package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveAndLookup(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, "sess-1", userID, time.Minute))

	got, err := store.Lookup(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestMemoryStoreUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Lookup(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", uuid.New(), time.Minute))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Lookup(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "sess-1", uuid.New(), -time.Second))

	_, err := store.Lookup(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
