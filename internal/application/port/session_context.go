package port

import (
	"context"

	"github.com/bnema/synapse/internal/domain/entity"
)

// SessionContextProvider discovers the desktop session environment of the target user.
type SessionContextProvider interface {
	SessionContext(ctx context.Context) (entity.SessionContext, error)
}
