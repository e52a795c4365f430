// Package storage implements the persistence collaborators: flat-file
// JSON stores for entries, saved locations, and notification settings,
// and a SQLite-backed record store for account records.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/tmoriguchi/mindtracer/internal/common"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

// EntriesFileName is the flat-file holding the full entry collection.
const EntriesFileName = "mind_states.json"

// JSONEntryStore keeps the entry collection in memory and rewrites the
// whole JSON array after every mutation. All mutations are serialized by
// a mutex so snapshots handed to the analysis engine are consistent.
type JSONEntryStore struct {
	path      string
	entries   []model.Entry
	observers []func()
	mu        sync.Mutex
}

// OpenEntryStore loads the entry collection from dir, creating the
// directory if needed. A missing file is not an error; the store starts
// empty, matching the app's degrade-to-empty policy.
func OpenEntryStore(dir string) (*JSONEntryStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &JSONEntryStore{path: filepath.Join(dir, EntriesFileName)}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		// A corrupt file should not brick the app; start empty but keep
		// the broken file out of the write path until the next save.
		slog.Warn("entries file is corrupt, starting empty", "path", s.path, "error", err)
		s.entries = nil
	}
	return s, nil
}

// All returns a snapshot copy of every entry in insertion order.
func (s *JSONEntryStore) All() []model.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]model.Entry, len(s.entries))
	copy(snapshot, s.entries)
	return snapshot
}

// Get returns the entry with the given ID.
func (s *JSONEntryStore) Get(id uuid.UUID) (model.Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Entry{}, false
}

// Add appends an entry and persists the collection.
func (s *JSONEntryStore) Add(entry model.Entry) error {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	err := s.save()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Delete removes the entry with the given ID and persists the collection.
func (s *JSONEntryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	kept := s.entries[:0]
	found := false
	for _, e := range s.entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("entry %s: %w", id, common.ErrNotFound)
	}
	err := s.save()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Replace swaps the stored entry with the same ID and persists the
// collection. The entry keeps its position in insertion order.
func (s *JSONEntryStore) Replace(entry model.Entry) error {
	s.mu.Lock()
	found := false
	for i, e := range s.entries {
		if e.ID == entry.ID {
			s.entries[i] = entry
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("entry %s: %w", entry.ID, common.ErrNotFound)
	}
	err := s.save()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notify()
	return nil
}

// Subscribe registers a callback invoked after every successful mutation.
func (s *JSONEntryStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *JSONEntryStore) notify() {
	s.mu.Lock()
	observers := make([]func(), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}

// save must be called with the mutex held.
func (s *JSONEntryStore) save() error {
	entries := s.entries
	if entries == nil {
		entries = []model.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// never leaves a truncated collection behind.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
