package database

import (
	"context"
	"database/sql"

	"github.com/jask/spicylist/internal/database/repository"
)

// SeedDefaults ensures a baseline food catalog exists for new databases.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	foodRepo := repository.NewFoodRepo(db)
	if n, err := foodRepo.Count(ctx); err == nil && n > 0 {
		return nil
	}
	defaults := []repository.Food{
		{Name: "Buffalo Wings", Cuisine: "American", HeatLevel: 3},
		{Name: "Nashville Hot Chicken", Cuisine: "American", HeatLevel: 7},
		{Name: "Mapo Tofu", Cuisine: "Sichuan", HeatLevel: 6},
		{Name: "Dan Dan Noodles", Cuisine: "Sichuan", HeatLevel: 5},
		{Name: "Green Curry", Cuisine: "Thai", HeatLevel: 9},
		{Name: "Tom Yum Soup", Cuisine: "Thai", HeatLevel: 5},
		{Name: "Vindaloo", Cuisine: "Indian", HeatLevel: 8},
		{Name: "Chicken 65", Cuisine: "Indian", HeatLevel: 6},
		{Name: "Kimchi Jjigae", Cuisine: "Korean", HeatLevel: 4},
		{Name: "Buldak", Cuisine: "Korean", HeatLevel: 10},
		{Name: "Tacos al Pastor", Cuisine: "Mexican", HeatLevel: 4},
		{Name: "Camarones a la Diabla", Cuisine: "Mexican", HeatLevel: 8},
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for _, f := range defaults {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO foods(name, cuisine, heat_level)
			VALUES (?, ?, ?)
			ON CONFLICT(name) DO NOTHING;
			`, f.Name, f.Cuisine, f.HeatLevel)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
