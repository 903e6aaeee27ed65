package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entity is implemented by every HBnB domain object held in a repository.
// T is the concrete pointer type so Clone can return it without assertions.
type Entity[T any] interface {
	// EntityID returns the immutable identifier.
	EntityID() uuid.UUID

	// Clone returns a deep copy that shares no mutable state with the receiver.
	Clone() T

	// Attribute returns the value of a named attribute for lookups by field.
	Attribute(name string) (any, bool)

	// Validate checks every field invariant of the entity as a whole.
	Validate() error
}

// Base carries identity and timestamps shared by all entities.
type Base struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// newBase generates a fresh identifier and sets both timestamps to now.
func newBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EntityID returns the entity identifier.
func (b *Base) EntityID() uuid.UUID {
	return b.ID
}

// Touch refreshes UpdatedAt. The new value is always strictly later than the
// previous one, even when the clock has not advanced.
func (b *Base) Touch() {
	now := time.Now().UTC()
	if !now.After(b.UpdatedAt) {
		now = b.UpdatedAt.Add(time.Nanosecond)
	}
	b.UpdatedAt = now
}

// baseAttribute resolves the attributes every entity shares.
func (b *Base) baseAttribute(name string) (any, bool) {
	switch name {
	case "id":
		return b.ID, true
	case "created_at":
		return b.CreatedAt, true
	case "updated_at":
		return b.UpdatedAt, true
	}
	return nil, false
}
