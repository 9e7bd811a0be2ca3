package source

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type poolFile struct {
	Food []Entry `toml:"food"`
}

// LoadPool reads pool entries from a TOML file of [[food]] tables.
func LoadPool(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool file: %w", err)
	}
	return parseEntries(data)
}

func parseEntries(data []byte) ([]Entry, error) {
	var pf poolFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse pool file: %w", err)
	}
	if len(pf.Food) == 0 {
		return nil, fmt.Errorf("no foods defined in pool file")
	}
	for i, e := range pf.Food {
		if e.Name == "" {
			return nil, fmt.Errorf("food[%d]: name is required", i)
		}
		if e.Cuisine == "" {
			return nil, fmt.Errorf("food[%d] %q: cuisine is required", i, e.Name)
		}
	}
	return pf.Food, nil
}
