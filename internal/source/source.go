// Package source supplies new records to the list on demand. A source owns
// its own cursor and id counter; nothing here is package-level state, so two
// sources never interfere and each is testable on its own.
package source

import (
	"errors"
	"math/rand/v2"

	"github.com/jask/spicylist/internal/liststate"
)

// ErrExhausted signals that a source has nothing left to supply. Callers
// leave their collection untouched and surface the condition to the user.
var ErrExhausted = errors.New("record source exhausted")

// Source hands out distinct, fully-formed records until it runs dry.
type Source interface {
	Next() (liststate.Record, error)
}

// Entry is one pool item before an id is assigned.
type Entry struct {
	Name      string `toml:"name"`
	Cuisine   string `toml:"cuisine"`
	HeatLevel int    `toml:"heat_level"`
}

// Pool draws sequentially from a fixed set of entries, assigning ids from an
// owned counter so no two records it produces ever share one.
type Pool struct {
	entries []Entry
	cursor  int
	nextID  int
}

// NewPool returns a pool over a copy of entries. Ids are assigned starting
// at startID; pass one past the highest seeded id so pool records never
// collide with the seed.
func NewPool(startID int, entries []Entry) *Pool {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Pool{entries: copied, nextID: startID}
}

// NewShuffledPool is NewPool with the visiting order randomized.
func NewShuffledPool(startID int, entries []Entry) *Pool {
	p := NewPool(startID, entries)
	rand.Shuffle(len(p.entries), func(i, j int) {
		p.entries[i], p.entries[j] = p.entries[j], p.entries[i]
	})
	return p
}

// Next returns the next record, or ErrExhausted once the pool is spent.
func (p *Pool) Next() (liststate.Record, error) {
	if p.cursor >= len(p.entries) {
		return liststate.Record{}, ErrExhausted
	}
	e := p.entries[p.cursor]
	p.cursor++
	r := liststate.Record{
		ID:        p.nextID,
		Name:      e.Name,
		Cuisine:   e.Cuisine,
		HeatLevel: e.HeatLevel,
	}
	p.nextID++
	return r, nil
}

// Remaining reports how many entries the pool has left.
func (p *Pool) Remaining() int {
	return len(p.entries) - p.cursor
}
