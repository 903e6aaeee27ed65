package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/events"
	"github.com/hbnb/hbnb-api/internal/redact"
	"github.com/hbnb/hbnb-api/internal/store"
)

// apply assigns the non-nil fields through the validating setters. Every
// update refreshes UpdatedAt, even one that sets no field.
func (p AmenityPatch) apply(a *domain.Amenity) error {
	if p.Name != nil {
		if err := a.SetName(*p.Name); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := a.SetDescription(*p.Description); err != nil {
			return err
		}
	}
	a.Touch()
	return nil
}

// CreateAmenity validates and stores a new amenity
func (s *FacadeImpl) CreateAmenity(ctx context.Context, input CreateAmenityInput) (*domain.Amenity, error) {
	log := s.log(ctx)

	amenity, err := domain.NewAmenity(input.Name, input.Description)
	if err != nil {
		log.Debug("invalid amenity input", "error", err)
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.amenities.Add(amenity); err != nil {
		log.Error("failed to store amenity", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}

	log.Info("amenity created successfully",
		"amenity_id", amenity.ID,
		"name", amenity.Name)
	s.emit(ctx, entityAmenity, events.ActionCreated, amenity.ID, amenity)

	return amenity, nil
}

// GetAmenity retrieves an amenity by its ID
func (s *FacadeImpl) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	amenity, ok := s.amenities.Get(id)
	if !ok {
		s.log(ctx).Debug("amenity not found", "amenity_id", id)
		return nil, fmt.Errorf("failed to retrieve amenity: %w", store.ErrAmenityNotFound)
	}
	return amenity, nil
}

// ListAmenities returns all amenities
func (s *FacadeImpl) ListAmenities(ctx context.Context) []*domain.Amenity {
	return s.amenities.GetAll()
}

// UpdateAmenity applies a partial update to an amenity
func (s *FacadeImpl) UpdateAmenity(
	ctx context.Context,
	id uuid.UUID,
	patch AmenityPatch,
) (*domain.Amenity, error) {
	log := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	amenity, err := s.amenities.Update(id, patch.apply)
	if err != nil {
		log.Debug("failed to update amenity", "error", redact.Error(err), "amenity_id", id)
		return nil, fmt.Errorf("failed to update amenity: %w", err)
	}

	log.Info("amenity updated successfully", "amenity_id", id)
	s.emit(ctx, entityAmenity, events.ActionUpdated, id, amenity)

	return amenity, nil
}

// DeleteAmenity detaches an amenity from every place and removes it
func (s *FacadeImpl) DeleteAmenity(ctx context.Context, id uuid.UUID) error {
	log := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	amenity, ok := s.amenities.Get(id)
	if !ok {
		log.Debug("amenity not found", "amenity_id", id)
		return fmt.Errorf("failed to delete amenity: %w", store.ErrAmenityNotFound)
	}

	holders := s.places.FindAll(func(p *domain.Place) bool { return p.HasAmenity(id) })
	for _, holder := range holders {
		place, err := s.places.Update(holder.ID, func(p *domain.Place) error {
			p.RemoveAmenity(id)
			return nil
		})
		if err != nil {
			log.Debug("place vanished while detaching amenity", "place_id", holder.ID)
			continue
		}
		s.emit(ctx, entityPlace, events.ActionUpdated, place.ID, place)
	}

	s.amenities.Delete(id)

	log.Info("amenity deleted successfully",
		"amenity_id", id,
		"places_detached", len(holders))
	s.emit(ctx, entityAmenity, events.ActionDeleted, id, amenity)

	return nil
}
