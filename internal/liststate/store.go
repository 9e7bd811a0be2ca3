package liststate

import (
	"fmt"

	"github.com/google/uuid"
)

// Store owns the ordered collection of records. Every mutation builds a
// freshly allocated slice, swaps the reference, and notifies subscribers;
// the slice handed out by Records is never written to again, so callers may
// keep it as a stable snapshot.
type Store struct {
	records []Record
	subs    map[uuid.UUID]func([]Record)
}

// NewStore seeds a store with the given records. The seed is defensively
// copied, and duplicate ids in it are rejected with ErrDuplicateID.
func NewStore(seed []Record) (*Store, error) {
	seen := make(map[int]bool, len(seed))
	for _, r := range seed {
		if seen[r.ID] {
			return nil, fmt.Errorf("seed record %d: %w", r.ID, ErrDuplicateID)
		}
		seen[r.ID] = true
	}
	records := make([]Record, len(seed))
	copy(records, seed)
	return &Store{
		records: records,
		subs:    make(map[uuid.UUID]func([]Record)),
	}, nil
}

// Records returns the current snapshot.
func (s *Store) Records() []Record {
	return s.records
}

// Len returns the number of records held.
func (s *Store) Len() int {
	return len(s.records)
}

// Add appends r to a fresh copy of the collection. An id already present is
// a caller bug and is rejected with ErrDuplicateID, leaving the collection
// unchanged.
func (s *Store) Add(r Record) error {
	for _, old := range s.records {
		if old.ID == r.ID {
			return fmt.Errorf("add record %d: %w", r.ID, ErrDuplicateID)
		}
	}
	next := make([]Record, 0, len(s.records)+1)
	next = append(next, s.records...)
	next = append(next, r)
	s.publish(next)
	return nil
}

// Remove drops every record matching id from a fresh copy of the collection.
// A missing id is a no-op; removing twice is the same as removing once.
func (s *Store) Remove(id int) {
	next := make([]Record, 0, len(s.records))
	for _, r := range s.records {
		if r.ID == id {
			continue
		}
		next = append(next, r)
	}
	if len(next) == len(s.records) {
		return
	}
	s.publish(next)
}

// Update replaces the record matching id with transform(old) in a fresh copy
// of the collection. All other records pass through as identical values, so
// consumers comparing snapshots element-wise see only the one change. A
// transform that alters the id is rejected with ErrIDChanged and the
// collection is left unchanged. A missing id is a no-op.
func (s *Store) Update(id int, transform func(Record) Record) error {
	idx := -1
	for i, r := range s.records {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	replaced := transform(s.records[idx])
	if replaced.ID != id {
		return fmt.Errorf("update record %d: %w", id, ErrIDChanged)
	}
	next := make([]Record, len(s.records))
	copy(next, s.records)
	next[idx] = replaced
	s.publish(next)
	return nil
}

// Subscribe registers fn to be called synchronously with the new snapshot
// after every successful mutation. The returned token is the handle for
// Unsubscribe.
func (s *Store) Subscribe(fn func([]Record)) uuid.UUID {
	token := uuid.New()
	s.subs[token] = fn
	return token
}

// Unsubscribe removes the subscription for token. Unknown tokens are ignored.
func (s *Store) Unsubscribe(token uuid.UUID) {
	delete(s.subs, token)
}

func (s *Store) publish(next []Record) {
	s.records = next
	for _, fn := range s.subs {
		fn(next)
	}
}
