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
func (p ReviewPatch) apply(r *domain.Review) error {
	if p.Text != nil {
		if err := r.SetText(*p.Text); err != nil {
			return err
		}
	}
	if p.Rating != nil {
		if err := r.SetRating(*p.Rating); err != nil {
			return err
		}
	}
	r.Touch()
	return nil
}

// CreateReview validates and stores a review, then attaches it to its place.
// Text and rating are validated before the author or place are looked up.
func (s *FacadeImpl) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	log := s.log(ctx)

	review, err := domain.NewReview(input.Text, input.Rating, input.UserID, input.PlaceID)
	if err != nil {
		log.Debug("invalid review input", "error", err)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.Get(input.UserID); !ok {
		log.Debug("review author not found", "user_id", input.UserID)
		return nil, fmt.Errorf("failed to create review: %w", store.ErrUserNotFound)
	}
	if _, ok := s.places.Get(input.PlaceID); !ok {
		log.Debug("reviewed place not found", "place_id", input.PlaceID)
		return nil, fmt.Errorf("failed to create review: %w", store.ErrPlaceNotFound)
	}

	if err := s.reviews.Add(review); err != nil {
		log.Error("failed to store review", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	place, err := s.places.Update(input.PlaceID, func(p *domain.Place) error {
		p.AddReview(review.ID)
		return nil
	})
	if err != nil {
		// Keep the review and place consistent: undo the insert.
		s.reviews.Delete(review.ID)
		log.Error("failed to attach review to place",
			"error", redact.Error(err),
			"review_id", review.ID,
			"place_id", input.PlaceID)
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	log.Info("review created successfully",
		"review_id", review.ID,
		"user_id", review.UserID,
		"place_id", review.PlaceID)
	s.emit(ctx, entityReview, events.ActionCreated, review.ID, review)
	s.emit(ctx, entityPlace, events.ActionUpdated, place.ID, place)

	return review, nil
}

// GetReview retrieves a review by its ID
func (s *FacadeImpl) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	review, ok := s.reviews.Get(id)
	if !ok {
		s.log(ctx).Debug("review not found", "review_id", id)
		return nil, fmt.Errorf("failed to retrieve review: %w", store.ErrReviewNotFound)
	}
	return review, nil
}

// ListReviews returns all reviews
func (s *FacadeImpl) ListReviews(ctx context.Context) []*domain.Review {
	return s.reviews.GetAll()
}

// ListReviewsByPlace resolves the reviews attached to a place
func (s *FacadeImpl) ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	place, ok := s.places.Get(placeID)
	if !ok {
		s.log(ctx).Debug("place not found", "place_id", placeID)
		return nil, fmt.Errorf("failed to list place reviews: %w", store.ErrPlaceNotFound)
	}

	reviews := make([]*domain.Review, 0, len(place.ReviewIDs))
	for _, id := range place.ReviewIDs {
		if review, ok := s.reviews.Get(id); ok {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// UpdateReview applies a partial update to a review
func (s *FacadeImpl) UpdateReview(ctx context.Context, id uuid.UUID, patch ReviewPatch) (*domain.Review, error) {
	log := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	review, err := s.reviews.Update(id, patch.apply)
	if err != nil {
		log.Debug("failed to update review", "error", redact.Error(err), "review_id", id)
		return nil, fmt.Errorf("failed to update review: %w", err)
	}

	log.Info("review updated successfully", "review_id", id)
	s.emit(ctx, entityReview, events.ActionUpdated, id, review)

	return review, nil
}

// DeleteReview detaches a review from its place and removes it
func (s *FacadeImpl) DeleteReview(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.reviews.Get(id)
	if !ok {
		s.log(ctx).Debug("review not found", "review_id", id)
		return fmt.Errorf("failed to delete review: %w", store.ErrReviewNotFound)
	}

	s.deleteReviewLocked(ctx, review)
	return nil
}

// deleteReviewLocked detaches review from its place, then removes it.
// Callers must hold s.mu.
func (s *FacadeImpl) deleteReviewLocked(ctx context.Context, review *domain.Review) {
	log := s.log(ctx)

	detached := false
	place, err := s.places.Update(review.PlaceID, func(p *domain.Place) error {
		detached = p.RemoveReview(review.ID)
		return nil
	})
	if err != nil {
		// The place is already gone; nothing to detach from.
		log.Debug("review place not found while deleting review",
			"review_id", review.ID,
			"place_id", review.PlaceID)
	}

	s.reviews.Delete(review.ID)

	log.Info("review deleted successfully", "review_id", review.ID)
	s.emit(ctx, entityReview, events.ActionDeleted, review.ID, review)
	if detached {
		s.emit(ctx, entityPlace, events.ActionUpdated, place.ID, place)
	}
}
