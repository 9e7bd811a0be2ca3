package widgets

import (
	"testing"

	"github.com/jask/spicylist/internal/liststate"
)

func TestHeatChartEmptyInput(t *testing.T) {
	if got := HeatChart(nil, 40, 8); got != "" {
		t.Errorf("empty rows should render nothing, got %q", got)
	}
	rows := []liststate.Record{{ID: 1, Name: "Mapo Tofu", Cuisine: "Sichuan", HeatLevel: 6}}
	if got := HeatChart(rows, 0, 8); got != "" {
		t.Errorf("zero width should render nothing, got %q", got)
	}
}

func TestHeatChartRendersBars(t *testing.T) {
	rows := []liststate.Record{
		{ID: 1, Name: "Buffalo Wings", Cuisine: "American", HeatLevel: 3},
		{ID: 2, Name: "Mapo Tofu", Cuisine: "Sichuan", HeatLevel: 6},
		{ID: 3, Name: "Dan Dan Noodles", Cuisine: "Sichuan", HeatLevel: 4},
	}
	got := HeatChart(rows, 40, 8)
	if got == "" {
		t.Fatal("expected rendered chart")
	}
}
