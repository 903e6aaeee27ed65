package store

import (
	"github.com/google/uuid"
	"github.com/hbnb/hbnb-api/internal/domain"
)

// Repository defines keyed storage for one entity type.
// Implementations own the canonical copies of their entities: values passed
// in are copied on the way in and every returned value is a copy, so callers
// can never mutate stored state except through Update.
type Repository[T domain.Entity[T]] interface {
	// Add stores entity under its identifier.
	// Returns ErrDuplicate if the identifier is already present.
	Add(entity T) error

	// Get retrieves an entity by identifier.
	// The boolean is false when no entity has that identifier.
	Get(id uuid.UUID) (T, bool)

	// GetAll returns every entity in insertion order.
	GetAll() []T

	// Update applies fn to a copy of the stored entity and saves the copy
	// only when fn returns nil. The stored entity is left untouched on error.
	// Returns ErrNotFound (wrapped) if the identifier is absent, in which
	// case fn is not called.
	Update(id uuid.UUID, fn func(T) error) (T, error)

	// Delete removes the entity. It is a no-op when the identifier is absent;
	// the result reports whether anything was removed.
	Delete(id uuid.UUID) bool

	// FindByAttribute returns the first entity in insertion order whose named
	// attribute equals value.
	FindByAttribute(name string, value any) (T, bool)

	// FindAll returns every entity matching the predicate, in insertion order.
	FindAll(match func(T) bool) []T

	// Count returns the number of stored entities.
	Count() int
}

// Repository aliases for each HBnB entity type.
type (
	UserRepository    = Repository[*domain.User]
	PlaceRepository   = Repository[*domain.Place]
	ReviewRepository  = Repository[*domain.Review]
	AmenityRepository = Repository[*domain.Amenity]
)
