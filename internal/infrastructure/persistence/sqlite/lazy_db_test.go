package sqlite_test

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/bnema/synapse/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized(), "LazyDB should not be initialized before DB() is called")
}

func TestLazyDB_ConcurrentAccessReturnsSameConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	const goroutines = 8
	var wg sync.WaitGroup
	conns := make(chan any, goroutines)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := lazy.DB(ctx)
			assert.NoError(t, err)
			conns <- db
		}()
	}
	wg.Wait()
	close(conns)

	var first any
	for db := range conns {
		if first == nil {
			first = db
			continue
		}
		assert.Same(t, first, db)
	}
	assert.True(t, lazy.IsInitialized())
}

func TestLazyDB_InvalidPath(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())

	require.Error(t, err)
	assert.False(t, lazy.IsInitialized())
}
