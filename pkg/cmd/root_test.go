package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUserConfig(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "renkochart.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("brickSize: 25\nchart:\n  window: 50\n"), 0644))

	cfg, err := loadUserConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.BrickSize)
	assert.Equal(t, 50, cfg.Chart.Window)

	t.Setenv("RENKOCHART_BRICK_SIZE", "5")
	cfg, err = loadUserConfig(configFile)
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.BrickSize)
}

func TestLoadUserConfig_MissingFile(t *testing.T) {
	_, err := loadUserConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080", baseURL(":8080"))
	assert.Equal(t, "http://127.0.0.1:9090", baseURL("127.0.0.1:9090"))
}
