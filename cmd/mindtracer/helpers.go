package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tmoriguchi/mindtracer/internal/config"
	"github.com/tmoriguchi/mindtracer/internal/model"
	"github.com/tmoriguchi/mindtracer/internal/storage"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// initEntryStore opens the JSON entry store under the configured data
// directory.
func initEntryStore() (*storage.JSONEntryStore, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	return storage.OpenEntryStore(dir)
}

// initLocationStore opens the saved-locations store under the configured
// data directory.
func initLocationStore() (*storage.JSONSavedLocationStore, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	return storage.OpenSavedLocationStore(dir)
}

// initSettingsStorage opens the notification settings file under the
// configured data directory.
func initSettingsStorage() (*storage.SettingsStorage, error) {
	dir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	return storage.NewSettingsStorage(dir)
}

// initRecordStore opens the SQLite record store and runs migrations.
func initRecordStore(ctx context.Context) (*storage.SQLiteRecordStore, error) {
	path, err := config.RecordsDBPath()
	if err != nil {
		return nil, err
	}

	store, err := storage.OpenRecordStore(path)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// parseFeelings parses a comma-separated feeling list, rejecting names
// outside the known set.
func parseFeelings(s string) ([]model.Feeling, error) {
	if s == "" {
		return nil, nil
	}
	var out []model.Feeling
	for _, part := range strings.Split(s, ",") {
		f := model.Feeling(strings.ToLower(strings.TrimSpace(part)))
		if !f.Valid() {
			return nil, fmt.Errorf("unknown feeling %q", part)
		}
		out = append(out, f)
	}
	return out, nil
}

// parseContexts parses a comma-separated context list.
func parseContexts(s string) ([]model.Context, error) {
	if s == "" {
		return nil, nil
	}
	var out []model.Context
	for _, part := range strings.Split(s, ",") {
		c := model.Context(strings.ToLower(strings.TrimSpace(part)))
		if !c.Valid() {
			return nil, fmt.Errorf("unknown context %q", part)
		}
		out = append(out, c)
	}
	return out, nil
}

// parseTimestamp accepts RFC 3339 or a bare date.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	ts, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (want RFC 3339 or YYYY-MM-DD)", s)
	}
	return ts, nil
}
