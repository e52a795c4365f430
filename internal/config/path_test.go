package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "data"), ExpandPath("~/data"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "/var/lib/mindtracer", ExpandPath("/var/lib/mindtracer"))
	assert.Equal(t, "", ExpandPath(""))

	t.Setenv("MINDTRACER_TEST_DIR", "/tmp/mt")
	assert.Equal(t, "/tmp/mt/data", ExpandPath("$MINDTRACER_TEST_DIR/data"))
}

func TestDataDir_ConfigOverride(t *testing.T) {
	viper.Set("data.dir", "/tmp/mindtracer-test")
	defer viper.Reset()

	dir, err := DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mindtracer-test", dir)
}

func TestRecordsDBPath_DefaultsInsideDataDir(t *testing.T) {
	viper.Set("data.dir", "/tmp/mindtracer-test")
	defer viper.Reset()

	path, err := RecordsDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/mindtracer-test", "records.db"), path)
}
