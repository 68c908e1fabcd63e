package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentgate/talentgate/pkg/errx"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	s := Session{
		ID:          "sess-1",
		AccessToken: "token-abc",
		ExpiresAt:   time.Now().Add(time.Hour),
		CreatedAt:   time.Now(),
	}
	require.NoError(t, store.Set(ctx, s))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "token-abc", got.AccessToken)
}

func TestMemoryStoreMissingSession(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nope")
	require.Error(t, err)

	e, ok := errx.AsError(err)
	require.True(t, ok)
	assert.Equal(t, errx.TypeAuthentication, e.Type)
}

func TestMemoryStoreExpiredSession(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Session{
		ID:        "sess-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := store.Get(ctx, "sess-old")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")

	// la sesión vencida quedó purgada
	_, err = store.Get(ctx, "sess-old")
	e, _ := errx.AsError(err)
	assert.Equal(t, "SESSION_NOT_FOUND", e.Code)
}

func TestMemoryStoreTouchSlidesExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Session{
		ID:        "sess-touch",
		ExpiresAt: time.Now().Add(time.Minute),
	}))
	require.NoError(t, store.Touch(ctx, "sess-touch", time.Hour))

	got, err := store.Get(ctx, "sess-touch")
	require.NoError(t, err)
	assert.True(t, got.ExpiresAt.After(time.Now().Add(30*time.Minute)),
		"touch extends the session past its original expiry")
}

func TestMemoryStoreTouchUnknownSession(t *testing.T) {
	store := NewMemoryStore()

	err := store.Touch(context.Background(), "nope", time.Hour)
	require.Error(t, err)

	e, ok := errx.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "SESSION_NOT_FOUND", e.Code)
}

func TestMemoryStoreClearLogsOutEveryHolder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Session{
		ID:        "shared",
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, store.Clear(ctx, "shared"))

	// cualquier "tab" que tenga el mismo ID de sesión queda afuera
	_, err := store.Get(ctx, "shared")
	require.Error(t, err)
}
