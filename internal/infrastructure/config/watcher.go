package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the settings file and reports external edits to the
// registered callbacks. The file is created with the current settings when
// it does not exist yet, since fsnotify needs something to watch.
func (m *Manager) Watch(ctx context.Context) error {
	log := logging.FromContext(ctx)

	m.mu.Lock()
	if m.watching {
		m.mu.Unlock()
		return nil // Already watching
	}
	current := m.settings
	m.mu.Unlock()

	if _, err := m.readOnly(); errors.Is(err, fs.ErrNotExist) {
		if err := m.Save(ctx, current); err != nil {
			return fmt.Errorf("failed to create settings file for watching: %w", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify settings change detected")

		m.mu.Lock()

		// Our own Save already updated m.settings.
		if m.skipNextReload {
			log.Debug().Msg("skipping reload (triggered by own Save)")
			m.skipNextReload = false
			m.mu.Unlock()
			return
		}

		settings, err := m.read()
		if err != nil {
			// Editors often truncate before writing; keep what we have.
			log.Warn().Err(err).Msg("failed to reload settings")
			m.mu.Unlock()
			return
		}
		if settings.Equal(m.settings) {
			m.mu.Unlock()
			return
		}

		log.Info().Str("device", settings.DevicePath).Msg("settings changed on disk")
		m.settings = settings
		m.notifyCallbacksLocked()
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// readOnly probes the file without touching cached state.
func (m *Manager) readOnly() (entity.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.read()
}

// notifyCallbacksLocked copies callbacks and settings, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	settings := m.settings
	callbacks := make([]func(entity.Settings), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(settings)
	}
}

// OnChange registers a callback invoked with the new settings after an
// external edit of the settings file.
func (m *Manager) OnChange(callback func(entity.Settings)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}
