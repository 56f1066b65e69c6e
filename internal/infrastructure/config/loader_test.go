package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	return m
}

func TestManager_Load_MissingFileUsesDefaults(t *testing.T) {
	m := newTestManager(t)

	settings, err := m.Load(testContext())

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), settings)
}

func TestManager_Load_CorruptFileUsesDefaults(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(m.Path(), []byte("{not json"), 0o644))

	settings, err := m.Load(testContext())

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), settings)
}

func TestManager_Load_WrongTypesUseDefaults(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(m.Path(), []byte(`{"ignored_keys": "ctrl"}`), 0o644))

	settings, err := m.Load(testContext())

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings(), settings)
}

func TestManager_Load_MissingFieldsFilledFromDefaults(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(m.Path(), []byte(`{"device_path": "/dev/input/event7"}`), 0o644))

	settings, err := m.Load(testContext())

	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event7", settings.DevicePath)
	assert.Equal(t, entity.DefaultSettings().Normalize().IgnoredKeys, settings.IgnoredKeys)
}

func TestManager_SaveLoadRoundTrip(t *testing.T) {
	ctx := testContext()
	m := newTestManager(t)
	want := entity.Settings{DevicePath: "/dev/input/event3", IgnoredKeys: []entity.EventCode{42, 29}}

	require.NoError(t, m.Save(ctx, want))

	other, err := NewManager(m.Path())
	require.NoError(t, err)
	got, err := other.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event3", got.DevicePath)
	assert.Equal(t, []entity.EventCode{29, 42}, got.IgnoredKeys)
	assert.Equal(t, got, m.Current())
}

func TestManager_EnvOverridesDevicePath(t *testing.T) {
	t.Setenv("SYNAPSE_DEVICE_PATH", "/dev/input/event9")
	m := newTestManager(t)

	settings, err := m.Load(testContext())

	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event9", settings.DevicePath)
}

func TestManager_EnvOverridesCorruptFile(t *testing.T) {
	t.Setenv("SYNAPSE_DEVICE_PATH", "/dev/input/event9")
	m := newTestManager(t)
	require.NoError(t, os.WriteFile(m.Path(), []byte("{not json"), 0o644))

	settings, err := m.Load(testContext())

	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event9", settings.DevicePath)
	assert.Equal(t, entity.DefaultSettings().Normalize().IgnoredKeys, settings.IgnoredKeys)
}

func TestManager_Save_RejectsInvalidSettings(t *testing.T) {
	ctx := testContext()
	m := newTestManager(t)

	err := m.Save(ctx, entity.Settings{DevicePath: "event3"})

	require.ErrorIs(t, err, entity.ErrInvalidSettings)
	_, statErr := os.Stat(m.Path())
	assert.True(t, os.IsNotExist(statErr))
}

func TestManager_Watch_IgnoresOwnSaveAndReportsExternalEdits(t *testing.T) {
	ctx := testContext()
	m := newTestManager(t)
	_, err := m.Load(ctx)
	require.NoError(t, err)

	changes := make(chan entity.Settings, 4)
	m.OnChange(func(s entity.Settings) { changes <- s })
	require.NoError(t, m.Watch(ctx))

	require.NoError(t, m.Save(ctx, entity.Settings{DevicePath: "/dev/input/event1"}))
	select {
	case s := <-changes:
		t.Fatalf("unexpected change notification for own save: %+v", s)
	case <-time.After(300 * time.Millisecond):
	}

	external := []byte(`{"device_path": "/dev/input/event2", "ignored_keys": [1]}`)
	require.NoError(t, os.WriteFile(m.Path(), external, 0o644))

	select {
	case s := <-changes:
		assert.Equal(t, "/dev/input/event2", s.DevicePath)
		assert.Equal(t, []entity.EventCode{1}, s.IgnoredKeys)
	case <-time.After(3 * time.Second):
		t.Fatal("external edit not reported")
	}
}

func TestSchema(t *testing.T) {
	data, err := Schema()

	require.NoError(t, err)
	assert.Contains(t, string(data), "device_path")
	assert.Contains(t, string(data), "ignored_keys")
}
