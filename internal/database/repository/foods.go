package repository

import (
	"context"
	"database/sql"
	"time"
)

// FoodRepo handles the food catalog.
type FoodRepo struct {
	db *sql.DB
}

func NewFoodRepo(db *sql.DB) *FoodRepo {
	return &FoodRepo{db: db}
}

func (r *FoodRepo) Insert(ctx context.Context, f Food) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO foods(name, cuisine, heat_level, created_at)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(name) DO NOTHING;
	`, f.Name, f.Cuisine, f.HeatLevel, time.Now().UTC().Truncate(time.Second))
	return err
}

func (r *FoodRepo) List(ctx context.Context) ([]Food, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, cuisine, heat_level, created_at FROM foods ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Food
	for rows.Next() {
		var f Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Cuisine, &f.HeatLevel, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *FoodRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM foods`).Scan(&n)
	return n, err
}
