package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/store"
)

// Repository implements store.Repository over a map guarded by an RWMutex.
// Insertion order is tracked separately so GetAll and the find helpers are
// deterministic.
type Repository[T domain.Entity[T]] struct {
	mu      sync.RWMutex
	entity  string
	items   map[uuid.UUID]T
	order   []uuid.UUID
	missing error
}

// NewRepository creates an empty repository. entity names the stored type in
// errors; notFound is the sentinel returned by Update for absent ids.
func NewRepository[T domain.Entity[T]](entity string, notFound error) *Repository[T] {
	if notFound == nil {
		notFound = store.ErrNotFound
	}
	return &Repository[T]{
		entity:  entity,
		items:   make(map[uuid.UUID]T),
		missing: notFound,
	}
}

// NewUserRepository creates an in-memory user repository.
func NewUserRepository() *Repository[*domain.User] {
	return NewRepository[*domain.User]("user", store.ErrUserNotFound)
}

// NewPlaceRepository creates an in-memory place repository.
func NewPlaceRepository() *Repository[*domain.Place] {
	return NewRepository[*domain.Place]("place", store.ErrPlaceNotFound)
}

// NewReviewRepository creates an in-memory review repository.
func NewReviewRepository() *Repository[*domain.Review] {
	return NewRepository[*domain.Review]("review", store.ErrReviewNotFound)
}

// NewAmenityRepository creates an in-memory amenity repository.
func NewAmenityRepository() *Repository[*domain.Amenity] {
	return NewRepository[*domain.Amenity]("amenity", store.ErrAmenityNotFound)
}

// Ensure Repository implements store.Repository for every entity type.
var (
	_ store.UserRepository    = (*Repository[*domain.User])(nil)
	_ store.PlaceRepository   = (*Repository[*domain.Place])(nil)
	_ store.ReviewRepository  = (*Repository[*domain.Review])(nil)
	_ store.AmenityRepository = (*Repository[*domain.Amenity])(nil)
)

// Add implements store.Repository.Add
func (r *Repository[T]) Add(entity T) error {
	id := entity.EntityID()
	if id == uuid.Nil {
		return store.NewStoreError(r.entity, "add", "entity has no identifier", domain.ErrInvalidID)
	}
	if err := entity.Validate(); err != nil {
		return store.NewStoreError(r.entity, "add", "entity failed validation", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; exists {
		return store.NewStoreError(r.entity, "add", "identifier already in use", store.ErrDuplicate)
	}

	r.items[id] = entity.Clone()
	r.order = append(r.order, id)
	return nil
}

// Get implements store.Repository.Get
func (r *Repository[T]) Get(id uuid.UUID) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return entity.Clone(), true
}

// GetAll implements store.Repository.GetAll
func (r *Repository[T]) GetAll() []T {
	return r.FindAll(nil)
}

// Update implements store.Repository.Update
func (r *Repository[T]) Update(id uuid.UUID, fn func(T) error) (T, error) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return zero, fmt.Errorf("%w: %s", r.missing, id)
	}

	working := current.Clone()
	if err := fn(working); err != nil {
		return zero, err
	}
	if working.EntityID() != id {
		return zero, store.NewStoreError(r.entity, "update", "identifier is immutable", domain.ErrInvalidID)
	}
	if err := working.Validate(); err != nil {
		return zero, store.NewStoreError(r.entity, "update", "entity failed validation", err)
	}

	r.items[id] = working
	return working.Clone(), nil
}

// Delete implements store.Repository.Delete
func (r *Repository[T]) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false
	}

	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// FindByAttribute implements store.Repository.FindByAttribute
func (r *Repository[T]) FindByAttribute(name string, value any) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		entity := r.items[id]
		if attr, ok := entity.Attribute(name); ok && attr == value {
			return entity.Clone(), true
		}
	}

	var zero T
	return zero, false
}

// FindAll implements store.Repository.FindAll. A nil predicate matches everything.
func (r *Repository[T]) FindAll(match func(T) bool) []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]T, 0, len(r.order))
	for _, id := range r.order {
		entity := r.items[id]
		if match == nil || match(entity) {
			result = append(result, entity.Clone())
		}
	}
	return result
}

// Count implements store.Repository.Count
func (r *Repository[T]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
