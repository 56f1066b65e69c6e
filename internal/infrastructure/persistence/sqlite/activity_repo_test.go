package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/synapse/internal/domain/entity"
	"github.com/bnema/synapse/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/synapse/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestActivityRepository_RecentNewestFirst(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "synapse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewActivityRepository(db)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	learned := &entity.Activity{Kind: entity.ActivityLearned, BindingKey: "K5", EventCode: 42, CreatedAt: base}
	assigned := &entity.Activity{Kind: entity.ActivityAssigned, EventCode: 42, ActionPath: "/s/Open_Firefox.sh", CreatedAt: base.Add(time.Second)}
	failed := &entity.Activity{Kind: entity.ActivityDispatchFailed, EventCode: 42, ActionPath: "/s/Open_Firefox.sh", Error: "boom", CreatedAt: base.Add(2 * time.Second)}

	for _, a := range []*entity.Activity{learned, assigned, failed} {
		require.NoError(t, repo.Record(ctx, a))
		assert.NotZero(t, a.ID)
	}

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)

	assert.Equal(t, entity.ActivityDispatchFailed, recent[0].Kind)
	assert.Equal(t, "boom", recent[0].Error)
	assert.Equal(t, entity.ActivityAssigned, recent[1].Kind)
	assert.Equal(t, "/s/Open_Firefox.sh", recent[1].ActionPath)
	assert.Equal(t, entity.ActivityLearned, recent[2].Kind)
	assert.Equal(t, entity.BindingKey("K5"), recent[2].BindingKey)
	assert.Equal(t, entity.EventCode(42), recent[2].EventCode)
	assert.True(t, base.Equal(recent[2].CreatedAt))

	limited, err := repo.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, failed.ID, limited[0].ID)
}

func TestActivityRepository_Clear(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "synapse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewActivityRepository(db)
	require.NoError(t, repo.Record(ctx, entity.NewActivity(entity.ActivityDispatched, 7)))

	require.NoError(t, repo.Clear(ctx))

	recent, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestLazyActivityRepository_OpensOnFirstUse(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "synapse.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyActivityRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Record(ctx, entity.NewActivity(entity.ActivityDispatched, 3)))

	assert.True(t, lazy.IsInitialized())
	recent, err := repo.Recent(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
