package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/synapse/internal/infrastructure/env"
)

const (
	appName      = "synapse"
	settingsName = "settings"
	settingsExt  = "json"
	databaseName = "synapse.db"

	dirPerm  = 0o755
	filePerm = 0o644
)

// XDGDirs holds the XDG Base Directory paths for the application.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// GetXDGDirs returns the XDG Base Directory paths for synapse.
// Paths are resolved against the home of the real user, so running under
// sudo still reads and writes the invoking user's files:
// - $XDG_CONFIG_HOME/synapse (default: ~/.config/synapse)
// - $XDG_DATA_HOME/synapse (default: ~/.local/share/synapse)
// - $XDG_STATE_HOME/synapse (default: ~/.local/state/synapse)
func GetXDGDirs() (*XDGDirs, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		devDir := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{
			ConfigHome: devDir,
			DataHome:   devDir,
			StateHome:  devDir,
		}, nil
	}

	homeDir, err := userHome()
	if err != nil {
		return nil, err
	}

	return &XDGDirs{
		ConfigHome: filepath.Join(xdgBase("XDG_CONFIG_HOME", homeDir, ".config"), appName),
		DataHome:   filepath.Join(xdgBase("XDG_DATA_HOME", homeDir, ".local", "share"), appName),
		StateHome:  filepath.Join(xdgBase("XDG_STATE_HOME", homeDir, ".local", "state"), appName),
	}, nil
}

func userHome() (string, error) {
	if u, err := env.TargetUser(); err == nil && u.Home != "" {
		return u.Home, nil
	}
	return os.UserHomeDir()
}

func xdgBase(envKey, home string, fallback ...string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

// GetConfigDir returns the XDG config directory for synapse.
func GetConfigDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.ConfigHome, nil
}

// GetDataDir returns the XDG data directory for synapse.
func GetDataDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.DataHome, nil
}

// GetStateDir returns the XDG state directory for synapse.
func GetStateDir() (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return dirs.StateHome, nil
}

// GetLogDir returns the directory of the optional log file.
func GetLogDir() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, "logs"), nil
}

// GetScriptsDir returns the directory generated action scripts are written to.
func GetScriptsDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "scripts"), nil
}

// GetSettingsFile returns the path to settings.json.
func GetSettingsFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsName+"."+settingsExt), nil
}

// GetDatabaseFile returns the path to the activity database.
func GetDatabaseFile() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, databaseName), nil
}

// EnsureDirectories creates every directory synapse persists into.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return fmt.Errorf("resolve directories: %w", err)
	}
	scripts, err := GetScriptsDir()
	if err != nil {
		return fmt.Errorf("resolve scripts directory: %w", err)
	}

	for _, dir := range []string{dirs.ConfigHome, dirs.DataHome, dirs.StateHome, scripts} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// GetManDir returns the user man page directory (section 1), outside the
// synapse tree so man finds the pages without extra MANPATH entries.
func GetManDir() (string, error) {
	homeDir, err := userHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(xdgBase("XDG_DATA_HOME", homeDir, ".local", "share"), "man", "man1"), nil
}
