package session

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/logging"
)

// Defaults returns a fixed context for an X display :0.
type Defaults struct {
	Home string
	UID  uint32
}

var _ port.SessionContextProvider = Defaults{}

// SessionContext never fails.
func (d Defaults) SessionContext(_ context.Context) (entity.SessionContext, error) {
	return entity.SessionContext{
		Source:     entity.SessionSourceDefaults,
		Home:       d.Home,
		Display:    ":0",
		XAuthority: filepath.Join(d.Home, ".Xauthority"),
		RuntimeDir: fmt.Sprintf("/run/user/%d", d.UID),
	}, nil
}

// Fallback tries Primary and falls back to Secondary when it fails.
type Fallback struct {
	Primary   port.SessionContextProvider
	Secondary port.SessionContextProvider
}

var _ port.SessionContextProvider = (*Fallback)(nil)

// NewFallbackProvider composes a live provider with a fixed one.
func NewFallbackProvider(primary, secondary port.SessionContextProvider) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary}
}

// SessionContext returns the primary context, with the home directory filled
// from the secondary one when missing.
func (f *Fallback) SessionContext(ctx context.Context) (entity.SessionContext, error) {
	def, defErr := f.Secondary.SessionContext(ctx)

	sc, err := f.Primary.SessionContext(ctx)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("session discovery failed, using defaults")
		return def, defErr
	}

	if sc.Home == "" {
		sc.Home = def.Home
	}
	if sc.Display != "" && sc.XAuthority == "" {
		sc.XAuthority = def.XAuthority
	}
	return sc, nil
}
