package store

import "sync"

// Store is an ordered in-memory collection of records keyed by a string
// id. Construct with New; the id function must return a stable id for a
// given record. The mutex keeps a whole mutation atomic with respect to
// concurrent requests served by the HTTP host.
type Store[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
}

func New[T any](id func(T) string, seed ...T) *Store[T] {
	return &Store[T]{
		id:    id,
		items: append([]T(nil), seed...),
	}
}

// List returns a copy of the collection in insertion order. The copy is
// never nil so an empty collection serializes as [] rather than null.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.items))
	return append(out, s.items...)
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Store[T]) Append(item T) {
	s.mu.Lock()
	s.items = append(s.items, item)
	s.mu.Unlock()
}

// Replace swaps the record with the given id for item, keeping its
// position. It reports whether a record was found.
func (s *Store[T]) Replace(id string, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if s.id(existing) == id {
			s.items[i] = item
			return true
		}
	}
	return false
}

// Remove deletes the record with the given id, preserving the order of
// the remaining records. Removing a missing id is a no-op.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if s.id(existing) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
