// Package config provides configuration utilities for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DataDir resolves the directory holding the JSON stores. Precedence:
// the data.dir config key, then $MINDTRACER_DATA_DIR (via viper's env
// binding), then ~/.local/share/mindtracer.
func DataDir() (string, error) {
	if v := viper.GetString("data.dir"); v != "" {
		return ExpandPath(v), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "mindtracer"), nil
}

// RecordsDBPath resolves the SQLite record database path. Defaults to
// records.db inside the data directory.
func RecordsDBPath() (string, error) {
	if v := viper.GetString("records.db"); v != "" {
		return ExpandPath(v), nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "records.db"), nil
}
