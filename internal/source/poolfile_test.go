package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEntriesValid(t *testing.T) {
	data := []byte(`
[[food]]
name = "Jerk Chicken"
cuisine = "Jamaican"
heat_level = 6

[[food]]
name = "Phaal Curry"
cuisine = "Indian"
heat_level = 10
`)
	entries, err := parseEntries(data)
	if err != nil {
		t.Fatalf("parseEntries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	e := entries[0]
	if e.Name != "Jerk Chicken" {
		t.Errorf("name = %q, want %q", e.Name, "Jerk Chicken")
	}
	if e.Cuisine != "Jamaican" {
		t.Errorf("cuisine = %q, want %q", e.Cuisine, "Jamaican")
	}
	if e.HeatLevel != 6 {
		t.Errorf("heat_level = %d, want 6", e.HeatLevel)
	}
}

func TestParseEntriesRejectsEmpty(t *testing.T) {
	if _, err := parseEntries([]byte("")); err == nil {
		t.Fatal("expected error for empty pool file")
	}
}

func TestParseEntriesRequiresNameAndCuisine(t *testing.T) {
	missingName := []byte("[[food]]\ncuisine = \"Thai\"\nheat_level = 3\n")
	if _, err := parseEntries(missingName); err == nil {
		t.Error("expected error for missing name")
	}
	missingCuisine := []byte("[[food]]\nname = \"Mystery\"\nheat_level = 3\n")
	if _, err := parseEntries(missingCuisine); err == nil {
		t.Error("expected error for missing cuisine")
	}
}

func TestLoadPoolFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pool.toml")
	content := "[[food]]\nname = \"Sambal Stir Fry\"\ncuisine = \"Indonesian\"\nheat_level = 7\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write pool file: %v", err)
	}
	entries, err := LoadPool(path)
	if err != nil {
		t.Fatalf("LoadPool: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "Sambal Stir Fry" {
		t.Fatalf("entries = %+v", entries)
	}
}
