// Package liststate holds the copy-on-write list state at the heart of the
// app: an ordered, id-unique collection of records where every mutation
// allocates a fresh collection and notifies subscribers. Holders of a prior
// snapshot never see it change underneath them.
//
// Controllers here are single-owner and handler-driven. Operations are never
// called concurrently (the Bubble Tea runtime serializes updates), so there
// is no locking.
package liststate

// Record is one food item. Records are immutable values; any edit produces a
// new Record carrying the same ID.
type Record struct {
	ID        int
	Name      string
	Cuisine   string
	HeatLevel int
}

// Cuisines returns the distinct cuisine tags present in rows, in first-seen
// order. Used to build filter cycles without hardcoding a tag set.
func Cuisines(rows []Record) []string {
	seen := make(map[string]bool, len(rows))
	var out []string
	for _, r := range rows {
		if seen[r.Cuisine] {
			continue
		}
		seen[r.Cuisine] = true
		out = append(out, r.Cuisine)
	}
	return out
}
