package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/synapse/internal/domain/entity"
)

// maxKeyCode is KEY_MAX from linux/input-event-codes.h.
const maxKeyCode entity.EventCode = 0x2ff

// validateSettings checks values that can never name a usable device or key.
func validateSettings(s entity.Settings) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateDevicePath(s.DevicePath)...)
	validationErrors = append(validationErrors, validateIgnoredKeys(s.IgnoredKeys)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("%w:\n  - %s", entity.ErrInvalidSettings, strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateDevicePath(path string) []string {
	if path == "" {
		return nil
	}
	if !filepath.IsAbs(path) {
		return []string{fmt.Sprintf("device_path must be absolute, got %q", path)}
	}
	if filepath.Clean(path) != path {
		return []string{fmt.Sprintf("device_path must be clean, got %q", path)}
	}
	return nil
}

func validateIgnoredKeys(keys []entity.EventCode) []string {
	var validationErrors []string
	for _, c := range keys {
		if c < 0 || c > maxKeyCode {
			validationErrors = append(validationErrors,
				fmt.Sprintf("ignored_keys: %d is outside 0..%d", c, maxKeyCode))
		}
	}
	return validationErrors
}
