package source

import (
	"context"
	"fmt"

	"github.com/jask/spicylist/internal/database/repository"
)

// FromCatalog builds a pool from the sqlite food catalog. The catalog rows
// are read once up front; the pool then cursors through them like any other,
// so a running app never touches the database again.
func FromCatalog(ctx context.Context, repo *repository.FoodRepo, startID int, shuffle bool) (*Pool, error) {
	foods, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	entries := make([]Entry, 0, len(foods))
	for _, f := range foods {
		entries = append(entries, Entry{
			Name:      f.Name,
			Cuisine:   f.Cuisine,
			HeatLevel: f.HeatLevel,
		})
	}
	if shuffle {
		return NewShuffledPool(startID, entries), nil
	}
	return NewPool(startID, entries), nil
}
