package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ClinicaAdmin/cache"
	"ClinicaAdmin/models"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	c, err := cache.NewCache(client)
	require.NoError(t, err)
	return NewStore(c), mr
}

func TestStore_SaveAndGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	sess := &Session{
		ID:    "sess-1",
		Token: "backend-token",
		User: models.User{
			ID:       7,
			Name:     "Ana Reyes",
			Username: "areyes",
			RoleID:   models.RoleAdmin,
		},
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "backend-token", got.Token)
	assert.Equal(t, "areyes", got.User.Username)
	assert.Equal(t, models.RoleAdmin, got.User.RoleID)
}

func TestStore_GetUnknownIDReturnsNil(t *testing.T) {
	store, _ := newTestStore(t)

	got, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_DeleteRemovesSession(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "sess-1", Token: "tok"}))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_DeleteAllRevokesEverySession(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "sess-1", Token: "tok-1"}))
	require.NoError(t, store.Save(ctx, &Session{ID: "sess-2", Token: "tok-2"}))
	// Keys outside the session namespace must survive the sweep.
	require.NoError(t, mr.Set("login_lock:areyes", "owner"))

	require.NoError(t, store.DeleteAll(ctx))

	for _, id := range []string{"sess-1", "sess-2"} {
		got, err := store.Get(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got, "session %s should be revoked", id)
	}
	assert.True(t, mr.Exists("login_lock:areyes"))
}

func TestStore_SessionExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Session{ID: "sess-1", Token: "tok"}))
	mr.FastForward(SessionExpiry + time.Minute)

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
