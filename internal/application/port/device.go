package port

import (
	"context"

	"github.com/bnema/synapse/internal/domain/entity"
)

// DeviceListener owns the input device handle and streams key presses.
//
// The returned channel is unbuffered and closed when the listener stops or
// the device fails. Only one stream is live at a time.
type DeviceListener interface {
	// Start opens settings.DevicePath and begins streaming presses whose code
	// is not in settings.IgnoredKeys. A missing device yields an error wrapping
	// entity.ErrDeviceUnavailable and no stream.
	Start(ctx context.Context, settings entity.Settings) (<-chan entity.KeyEvent, error)

	// Restart stops the current stream, waits for its handle to be released,
	// then starts a new one.
	Restart(ctx context.Context, settings entity.Settings) (<-chan entity.KeyEvent, error)

	// Stop closes the device handle and waits for the read loop to exit.
	// Safe to call when nothing is running.
	Stop() error
}
