package xdg

import (
	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

func (a *Adapter) ScriptsDir() (string, error) {
	return config.GetScriptsDir()
}

func (a *Adapter) LogDir() (string, error) {
	return config.GetLogDir()
}

func (a *Adapter) ManDir() (string, error) {
	return config.GetManDir()
}

var _ port.XDGPaths = (*Adapter)(nil)
