package port

import (
	"context"

	"github.com/bnema/synapse/internal/domain/entity"
)

// StatusObserver receives every status transition of the binding controller.
// It is called synchronously on the goroutine that produced the transition,
// so implementations must hand off to their own loop and return quickly.
type StatusObserver interface {
	StatusChanged(status entity.Status)
}

// StatusObserverFunc adapts a function to StatusObserver.
type StatusObserverFunc func(status entity.Status)

// StatusChanged calls f(status).
func (f StatusObserverFunc) StatusChanged(status entity.Status) {
	f(status)
}

// CaptureHandler is handed a freshly learned binding so an action can be configured for it.
type CaptureHandler interface {
	BindingCaptured(ctx context.Context, key entity.BindingKey, code entity.EventCode)
}

// CaptureHandlerFunc adapts a function to CaptureHandler.
type CaptureHandlerFunc func(ctx context.Context, key entity.BindingKey, code entity.EventCode)

// BindingCaptured calls f(ctx, key, code).
func (f CaptureHandlerFunc) BindingCaptured(ctx context.Context, key entity.BindingKey, code entity.EventCode) {
	f(ctx, key, code)
}

// Notifier shows a desktop notification in the user's session.
type Notifier interface {
	Notify(ctx context.Context, summary, body string) error
}
