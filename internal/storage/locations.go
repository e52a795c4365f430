package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tmoriguchi/mindtracer/internal/common"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

// SavedLocationsFileName holds the user's named coordinates.
const SavedLocationsFileName = "saved_locations.json"

// JSONSavedLocationStore persists saved locations as a JSON array,
// separate from the entry collection.
type JSONSavedLocationStore struct {
	path string
	locs []model.SavedLocation
	mu   sync.Mutex
}

// OpenSavedLocationStore loads saved locations from dir. A missing file
// yields an empty store.
func OpenSavedLocationStore(dir string) (*JSONSavedLocationStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &JSONSavedLocationStore{path: filepath.Join(dir, SavedLocationsFileName)}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saved locations: %w", err)
	}
	if err := json.Unmarshal(data, &s.locs); err != nil {
		return nil, fmt.Errorf("failed to decode saved locations: %w", err)
	}
	return s, nil
}

// All returns a snapshot of every saved location.
func (s *JSONSavedLocationStore) All() []model.SavedLocation {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]model.SavedLocation, len(s.locs))
	copy(snapshot, s.locs)
	return snapshot
}

// Add stores a named coordinate. The ID defaults to the rounded
// coordinate key when unset.
func (s *JSONSavedLocationStore) Add(loc model.SavedLocation) error {
	if loc.ID == "" {
		loc.ID = loc.ToCoordinate().RoundedKey()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.locs {
		if existing.ID == loc.ID {
			return fmt.Errorf("saved location %q: %w", loc.ID, common.ErrDuplicateEntry)
		}
	}
	s.locs = append(s.locs, loc)
	return s.save()
}

// Delete removes a saved location by ID.
func (s *JSONSavedLocationStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.locs[:0]
	found := false
	for _, loc := range s.locs {
		if loc.ID == id {
			found = true
			continue
		}
		kept = append(kept, loc)
	}
	s.locs = kept
	if !found {
		return fmt.Errorf("saved location %q: %w", id, common.ErrNotFound)
	}
	return s.save()
}

func (s *JSONSavedLocationStore) save() error {
	locs := s.locs
	if locs == nil {
		locs = []model.SavedLocation{}
	}
	data, err := json.MarshalIndent(locs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode saved locations: %w", err)
	}
	return writeFileAtomic(s.path, data)
}
