package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/spicylist/internal/database/repository"
)

func openMigrated(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(db))
	return db
}

func TestMigrationsCreateFoodsTable(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openMigrated(t)

	var one int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT 1").Scan(&one))
	require.Equal(t, 1, one)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM foods").Scan(&count))
	require.Equal(t, 0, count)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openMigrated(t)

	require.NoError(t, SeedDefaults(ctx, db))
	repo := repository.NewFoodRepo(db)
	first, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Greater(t, first, 0)

	require.NoError(t, SeedDefaults(ctx, db))
	second, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestFoodRepoInsertAndList(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	db := openMigrated(t)
	repo := repository.NewFoodRepo(db)

	require.NoError(t, repo.Insert(ctx, repository.Food{Name: "Jollof Rice", Cuisine: "Nigerian", HeatLevel: 4}))
	// same name again is ignored, not an error
	require.NoError(t, repo.Insert(ctx, repository.Food{Name: "Jollof Rice", Cuisine: "Nigerian", HeatLevel: 9}))

	foods, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	require.Equal(t, "Jollof Rice", foods[0].Name)
	require.Equal(t, "Nigerian", foods[0].Cuisine)
	require.Equal(t, 4, foods[0].HeatLevel)
	require.NotZero(t, foods[0].ID)
}
