package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tmoriguchi/mindtracer/internal/reminder"
)

// SettingsFileName holds the single notification-settings document.
const SettingsFileName = "NotificationSettings.json"

// SettingsStorage persists the reminder settings as one JSON object.
type SettingsStorage struct {
	path string
}

// NewSettingsStorage returns settings storage rooted at dir.
func NewSettingsStorage(dir string) (*SettingsStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &SettingsStorage{path: filepath.Join(dir, SettingsFileName)}, nil
}

// Load reads the saved settings, falling back to defaults when no file
// exists yet.
func (s *SettingsStorage) Load() (reminder.Settings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return reminder.DefaultSettings(), nil
	}
	if err != nil {
		return reminder.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings reminder.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return reminder.Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

// Save writes the settings document.
func (s *SettingsStorage) Save(settings reminder.Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return writeFileAtomic(s.path, data)
}
