package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/synapse/internal/domain/entity"
)

func TestValidateSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings entity.Settings
		wantErr  string
	}{
		{name: "defaults", settings: entity.DefaultSettings()},
		{name: "empty path falls back later", settings: entity.Settings{}},
		{name: "relative path", settings: entity.Settings{DevicePath: "input/event3"}, wantErr: "device_path must be absolute"},
		{name: "unclean path", settings: entity.Settings{DevicePath: "/dev/input/../input/event3"}, wantErr: "device_path must be clean"},
		{name: "negative key", settings: entity.Settings{DevicePath: "/dev/input/event3", IgnoredKeys: []entity.EventCode{-1}}, wantErr: "ignored_keys: -1"},
		{name: "key above KEY_MAX", settings: entity.Settings{DevicePath: "/dev/input/event3", IgnoredKeys: []entity.EventCode{29, 800}}, wantErr: "ignored_keys: 800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSettings(tt.settings)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, entity.ErrInvalidSettings)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
