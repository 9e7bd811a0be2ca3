package repository

import "time"

// Food represents a catalog row: a dish the record source can draw from.
type Food struct {
	ID        int64
	Name      string
	Cuisine   string
	HeatLevel int
	CreatedAt time.Time
}
