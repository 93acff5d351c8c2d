package ids

import "github.com/google/uuid"

// Generator issues identifiers for newly created records. An
// implementation must never return the same value twice within a process,
// and must not collide with seed-data ids.
type Generator interface {
	Next() string
}

// UUID issues random version-4 UUID strings.
type UUID struct{}

func (UUID) Next() string { return uuid.New().String() }
