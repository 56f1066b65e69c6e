package xdg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_DevMode(t *testing.T) {
	t.Setenv("ENV", "dev")
	cwd, err := os.Getwd()
	require.NoError(t, err)
	devDir := filepath.Join(cwd, ".dev", "synapse")

	adapter := New()

	configDir, err := adapter.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, devDir, configDir)

	scripts, err := adapter.ScriptsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(devDir, "scripts"), scripts)

	logs, err := adapter.LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(devDir, "logs"), logs)
}

func TestAdapter_XDGOverrides(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")

	adapter := New()

	configDir, err := adapter.ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cfg/synapse", configDir)

	dataDir, err := adapter.DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data/synapse", dataDir)

	stateDir, err := adapter.StateDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/state/synapse", stateDir)
}

func TestAdapter_ManDirFollowsDataHome(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")

	manDir, err := New().ManDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data/man/man1", manDir)
}
