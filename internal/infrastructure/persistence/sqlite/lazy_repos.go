package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/synapse/internal/application/port"
	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/domain/repository"
)

// LazyActivityRepository wraps the activity repository with lazy database initialization.
type LazyActivityRepository struct {
	provider port.DatabaseProvider
	repo     repository.ActivityRepository
	once     sync.Once
	initErr  error
}

// NewLazyActivityRepository creates a lazy-loading activity repository.
func NewLazyActivityRepository(provider port.DatabaseProvider) repository.ActivityRepository {
	return &LazyActivityRepository{provider: provider}
}

func (r *LazyActivityRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewActivityRepository(db)
	})
	return r.initErr
}

func (r *LazyActivityRepository) Record(ctx context.Context, a *entity.Activity) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Record(ctx, a)
}

func (r *LazyActivityRepository) Recent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Recent(ctx, limit)
}

func (r *LazyActivityRepository) Clear(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Clear(ctx)
}
