package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmoriguchi/mindtracer/internal/model"
)

type fakeStore struct {
	entries []model.Entry
	addErr  error
}

func (s *fakeStore) All() []model.Entry { return s.entries }

func (s *fakeStore) Get(uuid.UUID) (model.Entry, bool) { return model.Entry{}, false }

func (s *fakeStore) Add(e model.Entry) error {
	if s.addErr != nil {
		return s.addErr
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *fakeStore) Delete(uuid.UUID) error { return nil }

func (s *fakeStore) Replace(model.Entry) error { return nil }

func (s *fakeStore) Subscribe(func()) {}

func press(t *testing.T, m tea.Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func runes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestFlow_CompletesAndSaves(t *testing.T) {
	store := &fakeStore{}
	now := time.Date(2026, 7, 4, 12, 0, 0, 0, time.UTC)
	office := model.SavedLocation{ID: "37.335,-122.009", Name: "Office", Latitude: 37.3349, Longitude: -122.0090}

	m := NewModel(store, []model.SavedLocation{office}, func() time.Time { return now })

	// Kind: pick the second option (daily mood).
	m = press(t, m, runes('j'))
	m = press(t, m, enter)
	assert.Equal(t, stepFeelings, m.step)

	// Feelings: toggle happy (first) and calm (fourth).
	m = press(t, m, runes('x'))
	m = press(t, m, runes('j'))
	m = press(t, m, runes('j'))
	m = press(t, m, runes('j'))
	m = press(t, m, runes('x'))
	m = press(t, m, enter)
	assert.Equal(t, stepContexts, m.step)

	// Contexts: toggle work (first) and continue.
	m = press(t, m, runes('x'))
	m = press(t, m, enter)
	assert.Equal(t, stepValence, m.step)

	// Valence seeds from the selected feelings, then one nudge right.
	seeded := model.FeelingsValence([]model.Feeling{model.FeelingHappy, model.FeelingCalm})
	assert.InDelta(t, seeded, m.valence, 1e-9)
	m = press(t, m, runes('l'))
	assert.InDelta(t, seeded+valenceStep, m.valence, 1e-9)
	m = press(t, m, enter)
	assert.Equal(t, stepLocation, m.step)

	// Location: pick Office (second choice after "No location").
	m = press(t, m, runes('j'))
	m = press(t, m, enter)
	assert.Equal(t, stepConfirm, m.step)

	m = press(t, m, enter)

	require.NotNil(t, m.Saved())
	require.Len(t, store.entries, 1)
	entry := store.entries[0]
	assert.Equal(t, model.KindDailyMood, entry.Kind)
	assert.Equal(t, []model.Feeling{model.FeelingHappy, model.FeelingCalm}, entry.Feelings)
	assert.Equal(t, []model.Context{model.ContextWork}, entry.Contexts)
	assert.InDelta(t, seeded+valenceStep, entry.Valence, 1e-9)
	assert.Equal(t, "Office", entry.LocationName)
	require.NotNil(t, entry.Location)
	assert.Equal(t, "37.335,-122.009", entry.Location.RoundedKey())
	assert.True(t, entry.Timestamp.Equal(now))
}

func TestFlow_RequiresAFeeling(t *testing.T) {
	m := NewModel(&fakeStore{}, nil, nil)
	m = press(t, m, enter) // kind
	require.Equal(t, stepFeelings, m.step)

	// Enter without any selection stays put.
	m = press(t, m, enter)
	assert.Equal(t, stepFeelings, m.step)
}

func TestFlow_BackStepsRewind(t *testing.T) {
	m := NewModel(&fakeStore{}, nil, nil)
	m = press(t, m, enter)
	m = press(t, m, runes('x'))
	m = press(t, m, enter)
	require.Equal(t, stepContexts, m.step)

	m = press(t, m, runes('b'))
	assert.Equal(t, stepFeelings, m.step)
}

func TestFlow_QuitWithoutSaving(t *testing.T) {
	store := &fakeStore{}
	m := NewModel(store, nil, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, m.Saved())
	assert.Empty(t, store.entries)
}

func TestFlow_ViewShowsChoices(t *testing.T) {
	m := NewModel(&fakeStore{}, nil, nil)
	view := m.View()
	assert.Contains(t, view, "What kind of entry is this?")
	assert.Contains(t, view, "Momentary emotion")
	assert.Contains(t, view, "Daily mood")
}
