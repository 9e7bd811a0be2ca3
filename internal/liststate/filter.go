package liststate

import (
	"fmt"

	"github.com/google/uuid"
)

// CuisineAll is the show-everything sentinel. A Filter always holds either
// this or a cuisine tag; it is never unset.
const CuisineAll = "All"

// Filter holds the current cuisine selection. Like Store, it replaces its
// value wholesale on every change and notifies subscribers.
type Filter struct {
	current string
	allowed map[string]bool
	subs    map[uuid.UUID]func(string)
}

// NewFilter returns a filter seeded to CuisineAll. With no arguments any tag
// is accepted; passing tags closes the set, and Set rejects anything outside
// it (CuisineAll is always accepted).
func NewFilter(allowed ...string) *Filter {
	f := &Filter{
		current: CuisineAll,
		subs:    make(map[uuid.UUID]func(string)),
	}
	if len(allowed) > 0 {
		f.allowed = make(map[string]bool, len(allowed)+1)
		f.allowed[CuisineAll] = true
		for _, tag := range allowed {
			f.allowed[tag] = true
		}
	}
	return f
}

// Current returns the selected tag.
func (f *Filter) Current() string {
	return f.current
}

// Set replaces the selection and notifies subscribers. Setting the value
// already held still notifies; subscribers treat every publish as "render
// from current state" so redundant publishes are harmless.
func (f *Filter) Set(tag string) error {
	if f.allowed != nil && !f.allowed[tag] {
		return fmt.Errorf("set filter %q: %w", tag, ErrUnknownTag)
	}
	f.current = tag
	for _, fn := range f.subs {
		fn(tag)
	}
	return nil
}

// Subscribe registers fn to be called synchronously with the new tag after
// every Set.
func (f *Filter) Subscribe(fn func(string)) uuid.UUID {
	token := uuid.New()
	f.subs[token] = fn
	return token
}

// Unsubscribe removes the subscription for token.
func (f *Filter) Unsubscribe(token uuid.UUID) {
	delete(f.subs, token)
}

// Project returns the records visible under tag, preserving order. It is
// pure and cheap, so callers recompute it on every read instead of caching.
func Project(rows []Record, tag string) []Record {
	if tag == CuisineAll {
		return rows
	}
	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		if r.Cuisine == tag {
			out = append(out, r)
		}
	}
	return out
}
