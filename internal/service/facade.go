package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/events"
	"github.com/hbnb/hbnb-api/internal/platform/logger"
	"github.com/hbnb/hbnb-api/internal/redact"
	"github.com/hbnb/hbnb-api/internal/store"
)

// Entity names used in lifecycle events and log attributes.
const (
	entityUser    = "user"
	entityPlace   = "place"
	entityReview  = "review"
	entityAmenity = "amenity"
)

// Facade is the single entry point for every HBnB use case. It enforces the
// invariants that span more than one repository: owners and authors must
// exist, reviews stay attached to their place, emails stay unique and deletes
// cascade.
type Facade interface {
	// CreateUser validates and stores a new user.
	// Returns store.ErrEmailExists if another user has the same email (case-insensitive).
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// ListUsers returns all users in creation order.
	ListUsers(ctx context.Context) []*domain.User

	// UpdateUser applies the non-nil fields of patch.
	UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*domain.User, error)

	// DeleteUser removes a user together with the reviews they wrote and the
	// places they own.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// CreatePlace validates and stores a new place. The owner must exist.
	// Amenity IDs that do not resolve are skipped.
	CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error)

	// GetPlace retrieves a place by ID.
	GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// ListPlaces returns all places in creation order.
	ListPlaces(ctx context.Context) []*domain.Place

	// ListPlacesByOwner returns the places owned by an existing user.
	ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)

	// UpdatePlace applies the non-nil fields of patch. The owner cannot change.
	UpdatePlace(ctx context.Context, id uuid.UUID, patch PlacePatch) (*domain.Place, error)

	// DeletePlace removes a place and its reviews.
	DeletePlace(ctx context.Context, id uuid.UUID) error

	// AddAmenityToPlace attaches an amenity. Attaching twice is a no-op.
	AddAmenityToPlace(ctx context.Context, placeID, amenityID uuid.UUID) (*domain.Place, error)

	// RemoveAmenityFromPlace detaches an amenity. Detaching an unattached amenity is a no-op.
	RemoveAmenityFromPlace(ctx context.Context, placeID, amenityID uuid.UUID) (*domain.Place, error)

	// ListPlaceAmenities resolves the amenities of a place in attachment order.
	ListPlaceAmenities(ctx context.Context, placeID uuid.UUID) ([]*domain.Amenity, error)

	// CreateReview validates and stores a review, then attaches it to its place.
	CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error)

	// GetReview retrieves a review by ID.
	GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// ListReviews returns all reviews in creation order.
	ListReviews(ctx context.Context) []*domain.Review

	// ListReviewsByPlace resolves the reviews of a place in the place's order.
	ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)

	// UpdateReview applies the non-nil fields of patch. Author and place cannot change.
	UpdateReview(ctx context.Context, id uuid.UUID, patch ReviewPatch) (*domain.Review, error)

	// DeleteReview detaches a review from its place and removes it.
	DeleteReview(ctx context.Context, id uuid.UUID) error

	// CreateAmenity validates and stores a new amenity.
	CreateAmenity(ctx context.Context, input CreateAmenityInput) (*domain.Amenity, error)

	// GetAmenity retrieves an amenity by ID.
	GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)

	// ListAmenities returns all amenities in creation order.
	ListAmenities(ctx context.Context) []*domain.Amenity

	// UpdateAmenity applies the non-nil fields of patch.
	UpdateAmenity(ctx context.Context, id uuid.UUID, patch AmenityPatch) (*domain.Amenity, error)

	// DeleteAmenity detaches an amenity from every place and removes it.
	DeleteAmenity(ctx context.Context, id uuid.UUID) error
}

// FacadeImpl implements the Facade interface
type FacadeImpl struct {
	// mu serializes every write so multi-repository checks and mutations
	// are atomic with respect to other writers. Reads only take the
	// repositories' own read locks.
	mu sync.Mutex

	users     store.UserRepository
	places    store.PlaceRepository
	reviews   store.ReviewRepository
	amenities store.AmenityRepository
	emitter   events.EventEmitter
	logger    *slog.Logger
}

// Repositories groups the four repositories the facade coordinates.
type Repositories struct {
	Users     store.UserRepository
	Places    store.PlaceRepository
	Reviews   store.ReviewRepository
	Amenities store.AmenityRepository
}

// NewFacade creates a new Facade over repos.
// A nil emitter disables lifecycle events.
func NewFacade(repos Repositories, emitter events.EventEmitter, logger *slog.Logger) Facade {
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FacadeImpl{
		users:     repos.Users,
		places:    repos.Places,
		reviews:   repos.Reviews,
		amenities: repos.Amenities,
		emitter:   emitter,
		logger:    logger.With("component", "facade"),
	}
}

// log returns the request-scoped logger when ctx carries one.
func (s *FacadeImpl) log(ctx context.Context) *slog.Logger {
	if l := logger.FromContextOrDefault(ctx, nil); l != nil {
		return l.With("component", "facade")
	}
	return s.logger
}

// emit publishes a lifecycle event after a successful mutation.
// Failures are logged; they never fail the operation that triggered them.
func (s *FacadeImpl) emit(
	ctx context.Context,
	entity string,
	action events.Action,
	id uuid.UUID,
	payload interface{},
) {
	event, err := events.NewEntityEvent(entity, action, id, payload)
	if err != nil {
		s.log(ctx).Error("failed to build entity event",
			"error", redact.Error(err),
			"entity", entity,
			"action", action,
			"entity_id", id)
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		s.log(ctx).Warn("failed to emit entity event",
			"error", redact.Error(err),
			"event_type", event.Type,
			"entity_id", id)
	}
}
