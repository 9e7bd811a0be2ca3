package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/spicylist/internal/config"
	"github.com/jask/spicylist/internal/database"
	"github.com/jask/spicylist/internal/database/repository"
	"github.com/jask/spicylist/internal/liststate"
	"github.com/jask/spicylist/internal/source"
	"github.com/jask/spicylist/internal/tui"
)

// seedSize is how many records the list starts with; the rest of the pool
// stays behind the add key.
const seedSize = 2

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	src, err := buildSource(ctx, cfg)
	if err != nil {
		log.Fatalf("source: %v", err)
	}

	seed := make([]liststate.Record, 0, seedSize)
	for len(seed) < seedSize {
		r, err := src.Next()
		if errors.Is(err, source.ErrExhausted) {
			break
		}
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		seed = append(seed, r)
	}

	store, err := liststate.NewStore(seed)
	if err != nil {
		log.Fatalf("seed store: %v", err)
	}
	filter := liststate.NewFilter()

	app := tui.New(store, filter, src, cfg)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// buildSource assembles the record source the config asks for. Both kinds
// read their pool up front, so no handle stays open while the TUI runs.
func buildSource(ctx context.Context, cfg config.Config) (source.Source, error) {
	if cfg.Source.Kind == "pool" {
		entries, err := source.LoadPool(cfg.Source.PoolPath)
		if err != nil {
			return nil, err
		}
		if cfg.Source.Shuffle {
			return source.NewShuffledPool(1, entries), nil
		}
		return source.NewPool(1, entries), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, err
	}
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return nil, err
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		return nil, err
	}
	return source.FromCatalog(ctx, repository.NewFoodRepo(db), 1, cfg.Source.Shuffle)
}
