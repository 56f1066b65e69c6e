package port

import (
	"context"

	"github.com/bnema/synapse/internal/domain/entity"
)

// ActionDispatcher turns scripts into actions and launches them.
type ActionDispatcher interface {
	// Dispatch launches the action detached from the caller. It does not wait
	// for the child to exit.
	Dispatch(ctx context.Context, action entity.Action) error

	// Finalize persists a script for code and returns the resulting action.
	Finalize(ctx context.Context, code entity.EventCode, name, content string) (entity.Action, error)
}

// LaunchRequest describes a detached script launch.
type LaunchRequest struct {
	Path string
	Env  []string
}

// ProcessLauncher starts a script as the session user in its own process group.
type ProcessLauncher interface {
	Launch(ctx context.Context, req LaunchRequest) error
}
