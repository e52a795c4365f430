package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tmoriguchi/mindtracer/internal/model"
	"github.com/tmoriguchi/mindtracer/internal/service"
)

// RunEntryFlow runs the interactive entry wizard against the given store.
// It returns the saved entry, or nil when the user quit without saving.
func RunEntryFlow(store service.EntryStore, locations []model.SavedLocation) (*model.Entry, error) {
	if store == nil {
		return nil, fmt.Errorf("entry store is required")
	}

	program := tea.NewProgram(NewModel(store, locations, nil))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("entry flow failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("entry flow returned an unexpected model")
	}
	if m.Err() != nil {
		return nil, fmt.Errorf("failed to save entry: %w", m.Err())
	}
	return m.Saved(), nil
}
