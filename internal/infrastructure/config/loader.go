// Package config persists device settings and resolves synapse's directories.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/domain/repository"
	"github.com/bnema/synapse/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles settings loading, saving and watching.
// It implements repository.SettingsRepository.
type Manager struct {
	viper          *viper.Viper
	path           string
	settings       entity.Settings
	mu             sync.RWMutex
	callbacks      []func(entity.Settings)
	watching       bool
	skipNextReload bool
}

var _ repository.SettingsRepository = (*Manager)(nil)

// NewManager creates a manager for the settings file at path.
func NewManager(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(settingsExt)

	v.SetEnvPrefix("SYNAPSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("device_path", "SYNAPSE_DEVICE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind SYNAPSE_DEVICE_PATH: %w", err)
	}

	m := &Manager{
		viper:     v,
		path:      path,
		settings:  entity.DefaultSettings(),
		callbacks: make([]func(entity.Settings), 0),
	}
	m.setDefaults()
	return m, nil
}

// NewDefaultManager creates a manager for the XDG settings file.
func NewDefaultManager() (*Manager, error) {
	path, err := GetSettingsFile()
	if err != nil {
		return nil, fmt.Errorf("failed to determine settings file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManager(path)
}

func (m *Manager) setDefaults() {
	def := entity.DefaultSettings()
	m.viper.SetDefault("device_path", def.DevicePath)
	codes := make([]int, len(def.IgnoredKeys))
	for i, c := range def.IgnoredKeys {
		codes[i] = int(c)
	}
	m.viper.SetDefault("ignored_keys", codes)
}

// Path returns the settings file location.
func (m *Manager) Path() string {
	return m.path
}

// Load reads settings.json. A missing file yields defaults. A corrupt file is
// logged and also yields defaults; the error never reaches the caller.
func (m *Manager) Load(ctx context.Context) (entity.Settings, error) {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	settings, err := m.read()
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("path", m.path).Msg("settings file not found, using defaults")
		settings = m.fallback(ctx)
	default:
		log.Warn().Err(err).Str("path", m.path).Msg("settings unreadable, using defaults")
		settings = m.fallback(ctx)
	}

	m.settings = settings
	return settings, nil
}

// read must be called with m.mu held.
func (m *Manager) read() (entity.Settings, error) {
	if err := m.viper.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.Settings{}, fs.ErrNotExist
		}
		return entity.Settings{}, fmt.Errorf("%w: %s: %v", entity.ErrConfigCorrupt, m.path, err)
	}

	return m.decode()
}

func (m *Manager) decode() (entity.Settings, error) {
	var settings entity.Settings
	if err := m.viper.Unmarshal(&settings); err != nil {
		return entity.Settings{}, fmt.Errorf("%w: %s: %v", entity.ErrConfigCorrupt, m.path, err)
	}
	return settings.Normalize(), nil
}

// fallback returns the defaults with environment overrides applied.
// Must be called with m.mu held.
func (m *Manager) fallback(ctx context.Context) entity.Settings {
	settings, err := m.decode()
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("environment overrides unusable, using defaults")
		return entity.DefaultSettings()
	}
	return settings
}

// Save overwrites settings.json wholesale. Invalid settings are rejected
// before anything is written.
func (m *Manager) Save(ctx context.Context, settings entity.Settings) error {
	if err := validateSettings(settings); err != nil {
		return err
	}
	settings = settings.Normalize()

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(m.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if m.watching {
		m.skipNextReload = true
	}
	if err := os.WriteFile(m.path, append(data, '\n'), filePerm); err != nil {
		m.skipNextReload = false
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	m.settings = settings
	logging.FromContext(ctx).Debug().
		Str("path", m.path).
		Str("device", settings.DevicePath).
		Msg("settings saved")
	return nil
}

// Current returns the last loaded or saved settings.
func (m *Manager) Current() entity.Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings
}
