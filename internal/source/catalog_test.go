package source

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/spicylist/internal/database"
	"github.com/jask/spicylist/internal/database/repository"
)

func TestFromCatalogDrawsSeededFoods(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, database.SeedDefaults(ctx, db))

	repo := repository.NewFoodRepo(db)
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Greater(t, n, 0)

	pool, err := FromCatalog(ctx, repo, 1, false)
	require.NoError(t, err)
	require.Equal(t, n, pool.Remaining())

	first, err := pool.Next()
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
	require.Equal(t, "Buffalo Wings", first.Name)
	require.Equal(t, "American", first.Cuisine)

	drawn := 1
	for {
		_, err := pool.Next()
		if errors.Is(err, ErrExhausted) {
			break
		}
		require.NoError(t, err)
		drawn++
	}
	require.Equal(t, n, drawn)
}
