package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmoriguchi/mindtracer/internal/common"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

func TestSavedLocationStore(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenSavedLocationStore(dir)
	require.NoError(t, err)

	loc := model.SavedLocation{Name: "Office", Latitude: 37.3349, Longitude: -122.0090}
	require.NoError(t, store.Add(loc))

	all := store.All()
	require.Len(t, all, 1)
	assert.Equal(t, "37.335,-122.009", all[0].ID, "ID defaults to rounded key")
	assert.Equal(t, "Office", all[0].Name)

	// Same rounded coordinate is a duplicate.
	err = store.Add(model.SavedLocation{Name: "Office again", Latitude: 37.33492, Longitude: -122.00901})
	assert.True(t, errors.Is(err, common.ErrDuplicateEntry))

	reopened, err := OpenSavedLocationStore(dir)
	require.NoError(t, err)
	require.Len(t, reopened.All(), 1)

	require.NoError(t, reopened.Delete(all[0].ID))
	assert.Empty(t, reopened.All())
	assert.True(t, errors.Is(reopened.Delete("nope"), common.ErrNotFound))
}
