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
func (p PlacePatch) apply(place *domain.Place) error {
	if p.Title != nil {
		if err := place.SetTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Description != nil {
		if err := place.SetDescription(*p.Description); err != nil {
			return err
		}
	}
	if p.Price != nil {
		if err := place.SetPrice(*p.Price); err != nil {
			return err
		}
	}
	if p.Latitude != nil {
		if err := place.SetLatitude(*p.Latitude); err != nil {
			return err
		}
	}
	if p.Longitude != nil {
		if err := place.SetLongitude(*p.Longitude); err != nil {
			return err
		}
	}
	place.Touch()
	return nil
}

// CreatePlace validates and stores a new place owned by an existing user
func (s *FacadeImpl) CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error) {
	log := s.log(ctx)

	place, err := domain.NewPlace(
		input.Title,
		input.Description,
		input.Price,
		input.Latitude,
		input.Longitude,
		input.OwnerID,
	)
	if err != nil {
		log.Debug("invalid place input", "error", err)
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.Get(input.OwnerID); !ok {
		log.Debug("place owner not found", "owner_id", input.OwnerID)
		return nil, fmt.Errorf("failed to create place: %w", store.ErrUserNotFound)
	}

	for _, amenityID := range input.AmenityIDs {
		if _, ok := s.amenities.Get(amenityID); !ok {
			log.Debug("skipping unknown amenity", "amenity_id", amenityID)
			continue
		}
		place.AddAmenity(amenityID)
	}

	if err := s.places.Add(place); err != nil {
		log.Error("failed to store place", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	log.Info("place created successfully",
		"place_id", place.ID,
		"owner_id", place.OwnerID,
		"amenity_count", len(place.AmenityIDs))
	s.emit(ctx, entityPlace, events.ActionCreated, place.ID, place)

	return place, nil
}

// GetPlace retrieves a place by its ID
func (s *FacadeImpl) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	place, ok := s.places.Get(id)
	if !ok {
		s.log(ctx).Debug("place not found", "place_id", id)
		return nil, fmt.Errorf("failed to retrieve place: %w", store.ErrPlaceNotFound)
	}
	return place, nil
}

// ListPlaces returns all places
func (s *FacadeImpl) ListPlaces(ctx context.Context) []*domain.Place {
	return s.places.GetAll()
}

// ListPlacesByOwner returns the places owned by a user
func (s *FacadeImpl) ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	if _, ok := s.users.Get(ownerID); !ok {
		s.log(ctx).Debug("place owner not found", "owner_id", ownerID)
		return nil, fmt.Errorf("failed to list places: %w", store.ErrUserNotFound)
	}
	return s.places.FindAll(func(p *domain.Place) bool { return p.OwnerID == ownerID }), nil
}

// UpdatePlace applies a partial update to a place
func (s *FacadeImpl) UpdatePlace(ctx context.Context, id uuid.UUID, patch PlacePatch) (*domain.Place, error) {
	log := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	place, err := s.places.Update(id, patch.apply)
	if err != nil {
		log.Debug("failed to update place", "error", redact.Error(err), "place_id", id)
		return nil, fmt.Errorf("failed to update place: %w", err)
	}

	log.Info("place updated successfully", "place_id", id)
	s.emit(ctx, entityPlace, events.ActionUpdated, id, place)

	return place, nil
}

// DeletePlace removes a place and its reviews
func (s *FacadeImpl) DeletePlace(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	place, ok := s.places.Get(id)
	if !ok {
		s.log(ctx).Debug("place not found", "place_id", id)
		return fmt.Errorf("failed to delete place: %w", store.ErrPlaceNotFound)
	}

	s.deletePlaceLocked(ctx, place)
	return nil
}

// deletePlaceLocked removes place and every review that refers to it.
// Callers must hold s.mu.
func (s *FacadeImpl) deletePlaceLocked(ctx context.Context, place *domain.Place) {
	reviews := s.reviews.FindAll(func(r *domain.Review) bool { return r.PlaceID == place.ID })
	for _, review := range reviews {
		if s.reviews.Delete(review.ID) {
			s.emit(ctx, entityReview, events.ActionDeleted, review.ID, review)
		}
	}

	s.places.Delete(place.ID)

	s.log(ctx).Info("place deleted successfully",
		"place_id", place.ID,
		"reviews_deleted", len(reviews))
	s.emit(ctx, entityPlace, events.ActionDeleted, place.ID, place)
}

// AddAmenityToPlace attaches an existing amenity to an existing place
func (s *FacadeImpl) AddAmenityToPlace(
	ctx context.Context,
	placeID, amenityID uuid.UUID,
) (*domain.Place, error) {
	log := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places.Get(placeID); !ok {
		log.Debug("place not found", "place_id", placeID)
		return nil, fmt.Errorf("failed to add amenity to place: %w", store.ErrPlaceNotFound)
	}
	if _, ok := s.amenities.Get(amenityID); !ok {
		log.Debug("amenity not found", "amenity_id", amenityID)
		return nil, fmt.Errorf("failed to add amenity to place: %w", store.ErrAmenityNotFound)
	}

	added := false
	place, err := s.places.Update(placeID, func(p *domain.Place) error {
		added = p.AddAmenity(amenityID)
		return nil
	})
	if err != nil {
		log.Debug("failed to add amenity to place", "error", redact.Error(err), "place_id", placeID)
		return nil, fmt.Errorf("failed to add amenity to place: %w", err)
	}

	if added {
		log.Info("amenity added to place", "place_id", placeID, "amenity_id", amenityID)
		s.emit(ctx, entityPlace, events.ActionUpdated, placeID, place)
	}

	return place, nil
}

// RemoveAmenityFromPlace detaches an amenity from a place
func (s *FacadeImpl) RemoveAmenityFromPlace(
	ctx context.Context,
	placeID, amenityID uuid.UUID,
) (*domain.Place, error) {
	log := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places.Get(placeID); !ok {
		log.Debug("place not found", "place_id", placeID)
		return nil, fmt.Errorf("failed to remove amenity from place: %w", store.ErrPlaceNotFound)
	}
	if _, ok := s.amenities.Get(amenityID); !ok {
		log.Debug("amenity not found", "amenity_id", amenityID)
		return nil, fmt.Errorf("failed to remove amenity from place: %w", store.ErrAmenityNotFound)
	}

	removed := false
	place, err := s.places.Update(placeID, func(p *domain.Place) error {
		removed = p.RemoveAmenity(amenityID)
		return nil
	})
	if err != nil {
		log.Debug("failed to remove amenity from place", "error", redact.Error(err), "place_id", placeID)
		return nil, fmt.Errorf("failed to remove amenity from place: %w", err)
	}

	if removed {
		log.Info("amenity removed from place", "place_id", placeID, "amenity_id", amenityID)
		s.emit(ctx, entityPlace, events.ActionUpdated, placeID, place)
	}

	return place, nil
}

// ListPlaceAmenities resolves the amenities attached to a place
func (s *FacadeImpl) ListPlaceAmenities(ctx context.Context, placeID uuid.UUID) ([]*domain.Amenity, error) {
	place, ok := s.places.Get(placeID)
	if !ok {
		s.log(ctx).Debug("place not found", "place_id", placeID)
		return nil, fmt.Errorf("failed to list place amenities: %w", store.ErrPlaceNotFound)
	}

	amenities := make([]*domain.Amenity, 0, len(place.AmenityIDs))
	for _, id := range place.AmenityIDs {
		if amenity, ok := s.amenities.Get(id); ok {
			amenities = append(amenities, amenity)
		}
	}
	return amenities, nil
}
