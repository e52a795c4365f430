package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmoriguchi/mindtracer/internal/common"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

func openTestRecordStore(t *testing.T) *SQLiteRecordStore {
	t.Helper()
	store, err := OpenRecordStore(filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestRecordStore_UserRoundTrip(t *testing.T) {
	store := openTestRecordStore(t)
	ctx := context.Background()

	_, err := store.GetUser(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrNotFound))

	login := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	user := &model.UserProfile{DisplayName: "Tatsuya", Email: "t@example.com", LastLogin: &login}
	require.NoError(t, store.SaveUser(ctx, user))
	require.NotEmpty(t, user.ID)

	got, err := store.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "Tatsuya", got.DisplayName)
	require.NotNil(t, got.LastLogin)
	assert.True(t, got.LastLogin.Equal(login))

	// Saving again with the same ID updates in place.
	user.DisplayName = "T. Moriguchi"
	require.NoError(t, store.SaveUser(ctx, user))
	got, err = store.GetUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T. Moriguchi", got.DisplayName)
}

func TestRecordStore_SubscriptionDefaultsToFree(t *testing.T) {
	store := openTestRecordStore(t)
	ctx := context.Background()

	sub := &model.SubscriptionStatus{UserID: "user-1"}
	require.NoError(t, store.SaveSubscription(ctx, sub))

	got, err := store.GetSubscription(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.AccessFree, got.Tier)
	assert.Nil(t, got.ExpiresOn)
}

func TestRecordStore_Messages(t *testing.T) {
	store := openTestRecordStore(t)
	ctx := context.Background()

	older := &model.Message{
		Date:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Title:    "Welcome",
		Body:     "Thanks for trying MindTracer.",
		Category: model.MessageSupport,
		IsActive: true,
	}
	newer := &model.Message{
		Date:     time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Title:    "Maintenance",
		Body:     "Sync will be offline briefly.",
		Category: model.MessageAdministration,
		IsActive: false,
	}
	require.NoError(t, store.SaveMessage(ctx, older))
	require.NoError(t, store.SaveMessage(ctx, newer))

	all, err := store.ListMessages(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Maintenance", all[0].Title, "newest first")

	active, err := store.ListMessages(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Welcome", active[0].Title)

	require.NoError(t, store.DeleteMessage(ctx, older.ID))
	err = store.DeleteMessage(ctx, older.ID)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestRecordStore_UnknownCategoryParses(t *testing.T) {
	store := openTestRecordStore(t)
	ctx := context.Background()

	msg := &model.Message{Title: "x", Body: "y", Category: model.MessageCategory("Gossip"), IsActive: true}
	require.NoError(t, store.SaveMessage(ctx, msg))

	got, err := store.ListMessages(ctx, false)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.MessageUnknown, got[0].Category)
}

func TestOpenRecordStore_UnusablePath(t *testing.T) {
	// A directory cannot be opened as a database file; Open must fail
	// cleanly instead of handing back a store.
	store, err := OpenRecordStore(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, store)
}

func TestRecordStore_MigrateIsIdempotent(t *testing.T) {
	store := openTestRecordStore(t)
	require.NoError(t, store.Migrate(context.Background()))
}
