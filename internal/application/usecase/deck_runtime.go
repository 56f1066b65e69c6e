package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/domain/repository"
	"github.com/bnema/synapse/internal/logging"
)

// DeckRuntime connects the device listener to the controller and owns the
// listener lifecycle across reconfigurations.
type DeckRuntime struct {
	listener   port.DeviceListener
	controller *BindingController
	settings   repository.SettingsRepository

	mu       sync.Mutex
	baseCtx  context.Context
	current  entity.Settings
	pumpDone chan struct{}

	// generation identifies the live pump; pumps of older generations were
	// stopped on purpose and do not report a lost device.
	generation atomic.Uint64
}

// NewDeckRuntime creates a runtime. Nothing is opened until Start.
func NewDeckRuntime(
	listener port.DeviceListener,
	controller *BindingController,
	settings repository.SettingsRepository,
) *DeckRuntime {
	return &DeckRuntime{
		listener:   listener,
		controller: controller,
		settings:   settings,
	}
}

// Start opens the configured device and feeds its presses to the controller.
// ctx bounds every event handled for the lifetime of the runtime.
// A missing device is reported through the controller status and returned,
// but the runtime stays usable for a later Reconfigure.
func (r *DeckRuntime) Start(ctx context.Context, settings entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.baseCtx = logging.WithComponent(ctx, "deck")
	return r.applyLocked(settings)
}

// Reconfigure persists settings and restarts the listener with them.
func (r *DeckRuntime) Reconfigure(ctx context.Context, settings entity.Settings) error {
	settings = settings.Normalize()
	if err := r.settings.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return r.Apply(ctx, settings)
}

// Apply restarts the listener with settings without persisting them, for
// settings that already changed on disk.
func (r *DeckRuntime) Apply(ctx context.Context, settings entity.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.baseCtx == nil {
		r.baseCtx = logging.WithComponent(ctx, "deck")
	}
	logging.FromContext(ctx).Info().Str("device", settings.DevicePath).Msg("reconfiguring listener")
	return r.applyLocked(settings)
}

// Settings returns the settings the listener was last started with.
func (r *DeckRuntime) Settings() entity.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Stop closes the device and waits for the pump to drain.
func (r *DeckRuntime) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.generation.Add(1)
	err := r.listener.Stop()
	r.waitPumpLocked()
	return err
}

func (r *DeckRuntime) applyLocked(settings entity.Settings) error {
	gen := r.generation.Add(1)

	// Restart releases the old handle and joins its reader before opening the
	// new device; the old pump then sees its stream closed.
	events, err := r.listener.Restart(r.baseCtx, settings)
	r.waitPumpLocked()
	r.current = settings

	if err != nil {
		detail := settings.DevicePath
		if !errors.Is(err, entity.ErrDeviceUnavailable) {
			detail = err.Error()
		}
		r.controller.DeviceLost(detail)
		return err
	}

	r.controller.DeviceReady()
	done := make(chan struct{})
	r.pumpDone = done
	go r.pump(r.baseCtx, events, gen, done)
	return nil
}

func (r *DeckRuntime) waitPumpLocked() {
	if r.pumpDone != nil {
		<-r.pumpDone
		r.pumpDone = nil
	}
}

// pump hands events to the controller one at a time, in arrival order.
func (r *DeckRuntime) pump(ctx context.Context, events <-chan entity.KeyEvent, gen uint64, done chan<- struct{}) {
	defer close(done)

	for ev := range events {
		r.handle(ctx, ev)
	}

	if r.generation.Load() == gen {
		logging.FromContext(ctx).Warn().Msg("input device disconnected")
		r.controller.DeviceLost(entity.ErrDeviceDisconnected.Error())
	}
}

// handle keeps the pump alive when a single event panics.
func (r *DeckRuntime) handle(ctx context.Context, ev entity.KeyEvent) {
	defer logging.Recover(ctx, "handle event")
	r.controller.HandleEvent(ctx, ev)
}
