package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/domain/repository"
	"github.com/bnema/synapse/internal/logging"
)

// BindingController is the learning state machine. It routes each key press
// either to the pending learn request or to the bound action.
//
// All state transitions hold mu, so applying one event (check the learning
// session, bind or dispatch, persist) is atomic with respect to learn
// requests coming from the UI.
type BindingController struct {
	deck       *entity.Deck
	store      repository.BindingRepository
	dispatcher port.ActionDispatcher
	activity   repository.ActivityRepository

	mu       sync.Mutex
	learning bool
	target   entity.BindingKey
	status   entity.Status

	hooksMu  sync.RWMutex
	observer port.StatusObserver
	capture  port.CaptureHandler
}

// NewBindingController creates a controller in the idle state.
// activity may be nil.
func NewBindingController(
	deck *entity.Deck,
	store repository.BindingRepository,
	dispatcher port.ActionDispatcher,
	activity repository.ActivityRepository,
) *BindingController {
	return &BindingController{
		deck:       deck,
		store:      store,
		dispatcher: dispatcher,
		activity:   activity,
		status:     entity.IdleStatus(),
	}
}

// SetStatusObserver registers the single status observer. nil removes it.
func (c *BindingController) SetStatusObserver(o port.StatusObserver) {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()
	c.observer = o
}

// SetCaptureHandler registers the hand-off invoked after a binding is learned.
func (c *BindingController) SetCaptureHandler(h port.CaptureHandler) {
	c.hooksMu.Lock()
	defer c.hooksMu.Unlock()
	c.capture = h
}

// Deck returns the deck the controller mutates.
func (c *BindingController) Deck() *entity.Deck {
	return c.deck
}

// Status returns the current status.
func (c *BindingController) Status() entity.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Learning returns the slot waiting for input, if any.
func (c *BindingController) Learning() (entity.BindingKey, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target, c.learning
}

// RequestLearn makes the next qualifying key press define the binding of key.
// A pending request for another slot is replaced.
func (c *BindingController) RequestLearn(ctx context.Context, key entity.BindingKey) error {
	if !c.deck.Layout().Contains(key) {
		return fmt.Errorf("%w: %q", entity.ErrUnknownBindingKey, key)
	}

	c.mu.Lock()
	c.learning, c.target = true, key
	status := c.setStatusLocked(entity.Status{Kind: entity.StatusWaitingForInput, Key: key})
	c.mu.Unlock()

	logging.FromContext(ctx).Info().Str("key", string(key)).Msg("waiting for input")
	c.notify(status)
	return nil
}

// CancelLearn abandons the pending learn request.
func (c *BindingController) CancelLearn(ctx context.Context) error {
	c.mu.Lock()
	if !c.learning {
		c.mu.Unlock()
		return entity.ErrNotLearning
	}
	key := c.target
	c.learning, c.target = false, ""
	status := c.setStatusLocked(entity.Status{Kind: entity.StatusLearnCancelled, Key: key})
	c.mu.Unlock()

	logging.FromContext(ctx).Info().Str("key", string(key)).Msg("learning cancelled")
	c.notify(status)
	return nil
}

// HandleEvent applies one key press. While learning, the press is consumed as
// the binding and never dispatched. Otherwise the bound action, if any, is
// launched. Failures are logged; the caller keeps reading events.
func (c *BindingController) HandleEvent(ctx context.Context, ev entity.KeyEvent) {
	log := logging.FromContext(ctx).With().Int("code", int(ev.Code)).Logger()

	c.mu.Lock()
	if c.learning {
		key := c.target
		c.learning, c.target = false, ""
		c.deck.Bind(key, ev.Code)
		if err := c.persistLocked(ctx); err != nil {
			log.Error().Err(err).Str("key", string(key)).Msg("failed to persist binding")
		}
		status := c.setStatusLocked(entity.Status{Kind: entity.StatusCommandAssigned, Key: key, Code: ev.Code})
		c.mu.Unlock()

		log.Info().Str("key", string(key)).Msg("binding learned")
		c.record(ctx, &entity.Activity{Kind: entity.ActivityLearned, BindingKey: key, EventCode: ev.Code})
		c.notify(status)
		c.handOff(ctx, key, ev.Code)
		return
	}

	action, ok := c.deck.ActionFor(ev.Code)
	if !ok {
		c.mu.Unlock()
		log.Debug().Msg("no action bound")
		return
	}

	// Launching does not wait for the child, so holding mu here is short.
	err := c.dispatcher.Dispatch(ctx, action)
	c.mu.Unlock()

	entry := &entity.Activity{Kind: entity.ActivityDispatched, EventCode: ev.Code, ActionPath: action.Path}
	if err != nil {
		log.Warn().Err(err).Str("path", action.Path).Msg("dispatch failed")
		entry.Kind = entity.ActivityDispatchFailed
		entry.Error = err.Error()
	} else {
		log.Info().Str("path", action.Path).Msg("action dispatched")
	}
	c.record(ctx, entry)
}

// AssignAction writes a script for code and binds it as the code's action.
func (c *BindingController) AssignAction(ctx context.Context, code entity.EventCode, name, content string) (entity.Action, error) {
	log := logging.FromContext(ctx)

	action, err := c.dispatcher.Finalize(ctx, code, name, content)
	if err != nil {
		return entity.Action{}, fmt.Errorf("failed to finalize action: %w", err)
	}

	c.mu.Lock()
	c.deck.SetAction(code, action)
	if err := c.persistLocked(ctx); err != nil {
		c.mu.Unlock()
		return action, fmt.Errorf("failed to persist action: %w", err)
	}
	status := c.setStatusLocked(entity.Status{Kind: entity.StatusCommandAssigned, Code: code, Detail: name})
	c.mu.Unlock()

	log.Info().Int("code", int(code)).Str("path", action.Path).Msg("action assigned")
	c.record(ctx, &entity.Activity{Kind: entity.ActivityAssigned, EventCode: code, ActionPath: action.Path})
	c.notify(status)
	return action, nil
}

// ClearBinding removes the code bound to key. The action of the code is kept.
func (c *BindingController) ClearBinding(ctx context.Context, key entity.BindingKey) error {
	if !c.deck.Layout().Contains(key) {
		return fmt.Errorf("%w: %q", entity.ErrUnknownBindingKey, key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.deck.Unbind(key) {
		return nil
	}
	if err := c.persistLocked(ctx); err != nil {
		return fmt.Errorf("failed to persist bindings: %w", err)
	}
	logging.FromContext(ctx).Info().Str("key", string(key)).Msg("binding cleared")
	return nil
}

// DeviceLost reports that no events can arrive until the device is reconfigured.
// A pending learn request is kept.
func (c *BindingController) DeviceLost(detail string) {
	c.mu.Lock()
	status := c.setStatusLocked(entity.Status{Kind: entity.StatusNoDevice, Detail: detail})
	c.mu.Unlock()
	c.notify(status)
}

// DeviceReady clears a no-device status.
func (c *BindingController) DeviceReady() {
	c.mu.Lock()
	if c.status.Kind != entity.StatusNoDevice {
		c.mu.Unlock()
		return
	}
	next := entity.IdleStatus()
	if c.learning {
		next = entity.Status{Kind: entity.StatusWaitingForInput, Key: c.target}
	}
	status := c.setStatusLocked(next)
	c.mu.Unlock()
	c.notify(status)
}

func (c *BindingController) setStatusLocked(s entity.Status) entity.Status {
	c.status = s
	return s
}

func (c *BindingController) persistLocked(ctx context.Context) error {
	bindings, actions := c.deck.Snapshot()
	return c.store.Save(ctx, bindings, actions)
}

func (c *BindingController) notify(s entity.Status) {
	c.hooksMu.RLock()
	o := c.observer
	c.hooksMu.RUnlock()
	if o != nil {
		o.StatusChanged(s)
	}
}

func (c *BindingController) handOff(ctx context.Context, key entity.BindingKey, code entity.EventCode) {
	c.hooksMu.RLock()
	h := c.capture
	c.hooksMu.RUnlock()
	if h != nil {
		h.BindingCaptured(ctx, key, code)
	}
}

func (c *BindingController) record(ctx context.Context, a *entity.Activity) {
	if c.activity == nil {
		return
	}
	if err := c.activity.Record(ctx, a); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("kind", string(a.Kind)).Msg("failed to record activity")
	}
}
