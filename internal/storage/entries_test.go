package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

func testEntry(t time.Time, valence float64) model.Entry {
	return model.NewEntry(t, model.KindMomentaryEmotion, valence,
		[]model.Feeling{model.FeelingCalm}, []model.Context{model.ContextHealth}, nil, "", nil)
}

func TestOpenEntryStore_MissingFileIsEmpty(t *testing.T) {
	store, err := OpenEntryStore(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, store.All())
}

func TestJSONEntryStore_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

	store, err := OpenEntryStore(dir)
	require.NoError(t, err)

	first := testEntry(ts, 0.4)
	second := model.NewEntry(ts.Add(time.Hour), model.KindDailyMood, -0.6,
		[]model.Feeling{model.FeelingSad}, nil,
		&model.Coordinate{Latitude: 37.3349, Longitude: -122.0090}, "Office",
		map[string]string{"source": "healthkit"})

	require.NoError(t, store.Add(first))
	require.NoError(t, store.Add(second))

	reopened, err := OpenEntryStore(dir)
	require.NoError(t, err)

	entries := reopened.All()
	require.Len(t, entries, 2)
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
	assert.True(t, entries[1].Timestamp.Equal(second.Timestamp))
	require.NotNil(t, entries[1].Location)
	assert.Equal(t, *second.Location, *entries[1].Location)
	assert.Equal(t, "Office", entries[1].LocationName)
	assert.Equal(t, second.Valence, entries[1].Valence)
}

func TestJSONEntryStore_Delete(t *testing.T) {
	store, err := OpenEntryStore(t.TempDir())
	require.NoError(t, err)

	entry := testEntry(time.Now(), 0.1)
	require.NoError(t, store.Add(entry))
	require.NoError(t, store.Delete(entry.ID))
	assert.Empty(t, store.All())

	err = store.Delete(uuid.New())
	assert.Error(t, err)
}

func TestJSONEntryStore_Replace(t *testing.T) {
	store, err := OpenEntryStore(t.TempDir())
	require.NoError(t, err)

	entry := testEntry(time.Now(), 0.1)
	require.NoError(t, store.Add(entry))

	entry.LocationName = "Updated"
	require.NoError(t, store.Replace(entry))

	got, ok := store.Get(entry.ID)
	require.True(t, ok)
	assert.Equal(t, "Updated", got.LocationName)

	missing := testEntry(time.Now(), 0.2)
	assert.Error(t, store.Replace(missing))
}

func TestJSONEntryStore_NotifiesObservers(t *testing.T) {
	store, err := OpenEntryStore(t.TempDir())
	require.NoError(t, err)

	var fired int
	store.Subscribe(func() { fired++ })

	entry := testEntry(time.Now(), 0)
	require.NoError(t, store.Add(entry))
	require.NoError(t, store.Replace(entry))
	require.NoError(t, store.Delete(entry.ID))

	assert.Equal(t, 3, fired)
}

func TestJSONEntryStore_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, EntriesFileName), []byte("{not json"), 0o600))

	store, err := OpenEntryStore(dir)
	require.NoError(t, err)
	assert.Empty(t, store.All())
}

func TestJSONEntryStore_SnapshotIsACopy(t *testing.T) {
	store, err := OpenEntryStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Add(testEntry(time.Now(), 0.3)))

	snapshot := store.All()
	snapshot[0].Valence = -1

	assert.Equal(t, 0.3, store.All()[0].Valence)
}
