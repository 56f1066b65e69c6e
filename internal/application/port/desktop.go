package port

import (
	"context"

	"github.com/bnema/synapse/internal/domain/entity"
)

// AppCatalog enumerates installed desktop applications.
// Results are read on demand and never cached by the core.
type AppCatalog interface {
	ListApps(ctx context.Context) (entity.AppCatalog, error)
}
