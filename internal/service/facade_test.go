package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/events"
	"github.com/hbnb/hbnb-api/internal/platform/memory"
	"github.com/hbnb/hbnb-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRepositories() Repositories {
	return Repositories{
		Users:     memory.NewUserRepository(),
		Places:    memory.NewPlaceRepository(),
		Reviews:   memory.NewReviewRepository(),
		Amenities: memory.NewAmenityRepository(),
	}
}

func newTestFacade(t *testing.T) (Facade, Repositories, *recordingEmitter) {
	t.Helper()
	repos := newTestRepositories()
	emitter := &recordingEmitter{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFacade(repos, emitter, logger), repos, emitter
}

func mustCreateUser(t *testing.T, f Facade, email string) *domain.User {
	t.Helper()
	user, err := f.CreateUser(context.Background(), CreateUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     email,
	})
	require.NoError(t, err)
	return user
}

func mustCreatePlace(t *testing.T, f Facade, ownerID uuid.UUID, amenityIDs ...uuid.UUID) *domain.Place {
	t.Helper()
	place, err := f.CreatePlace(context.Background(), CreatePlaceInput{
		Title:      "Cozy",
		Price:      100,
		Latitude:   45,
		Longitude:  90,
		OwnerID:    ownerID,
		AmenityIDs: amenityIDs,
	})
	require.NoError(t, err)
	return place
}

func mustCreateReview(t *testing.T, f Facade, userID, placeID uuid.UUID) *domain.Review {
	t.Helper()
	review, err := f.CreateReview(context.Background(), CreateReviewInput{
		Text:    "Great!",
		Rating:  5,
		UserID:  userID,
		PlaceID: placeID,
	})
	require.NoError(t, err)
	return review
}

func mustCreateAmenity(t *testing.T, f Facade, name string) *domain.Amenity {
	t.Helper()
	amenity, err := f.CreateAmenity(context.Background(), CreateAmenityInput{Name: name})
	require.NoError(t, err)
	return amenity
}

func strPtr(s string) *string { return &s }

func TestFacade_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f, repos, emitter := newTestFacade(t)

		user, err := f.CreateUser(ctx, CreateUserInput{
			FirstName: "Alice",
			LastName:  "Smith",
			Email:     "a@x.com",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, 1, repos.Users.Count())
		assert.Equal(t, []string{"user.created"}, emitter.Types())

		fetched, err := f.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", fetched.FirstName)
	})

	t.Run("duplicate email ignoring case", func(t *testing.T) {
		f, repos, _ := newTestFacade(t)
		mustCreateUser(t, f, "alice@example.com")

		_, err := f.CreateUser(ctx, CreateUserInput{
			FirstName: "Other",
			LastName:  "Alice",
			Email:     "ALICE@example.com",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrEmailExists)
		assert.ErrorIs(t, err, store.ErrDuplicate)
		assert.Equal(t, 1, repos.Users.Count())
	})

	t.Run("validation failure stores nothing", func(t *testing.T) {
		f, repos, emitter := newTestFacade(t)

		_, err := f.CreateUser(ctx, CreateUserInput{
			FirstName: "",
			LastName:  "Smith",
			Email:     "a@x.com",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, 0, repos.Users.Count())
		assert.Empty(t, emitter.Types())
	})
}

func TestFacade_GetUser_NotFound(t *testing.T) {
	f, _, _ := newTestFacade(t)

	_, err := f.GetUser(context.Background(), uuid.New())

	assert.ErrorIs(t, err, store.ErrUserNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestFacade_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("updates field and timestamp", func(t *testing.T) {
		f, _, _ := newTestFacade(t)
		user := mustCreateUser(t, f, "a@x.com")

		updated, err := f.UpdateUser(ctx, user.ID, UserPatch{FirstName: strPtr("Alicia")})

		require.NoError(t, err)
		assert.Equal(t, "Alicia", updated.FirstName)
		assert.Equal(t, "Smith", updated.LastName)
		assert.True(t, updated.UpdatedAt.After(user.UpdatedAt))

		fetched, err := f.GetUser(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alicia", fetched.FirstName)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		f, _, _ := newTestFacade(t)
		mustCreateUser(t, f, "taken@x.com")
		user := mustCreateUser(t, f, "mine@x.com")

		_, err := f.UpdateUser(ctx, user.ID, UserPatch{Email: strPtr("Taken@X.com")})

		assert.ErrorIs(t, err, store.ErrEmailExists)
		fetched, _ := f.GetUser(ctx, user.ID)
		assert.Equal(t, "mine@x.com", fetched.Email)
	})

	t.Run("own email with different case is allowed", func(t *testing.T) {
		f, _, _ := newTestFacade(t)
		user := mustCreateUser(t, f, "mine@x.com")

		updated, err := f.UpdateUser(ctx, user.ID, UserPatch{Email: strPtr("MINE@x.com")})

		require.NoError(t, err)
		assert.Equal(t, "MINE@x.com", updated.Email)
	})

	t.Run("invalid patch leaves user unchanged", func(t *testing.T) {
		f, _, emitter := newTestFacade(t)
		user := mustCreateUser(t, f, "a@x.com")

		_, err := f.UpdateUser(ctx, user.ID, UserPatch{
			FirstName: strPtr("Changed"),
			Email:     strPtr("not-an-email"),
		})

		assert.ErrorIs(t, err, domain.ErrValidation)
		fetched, _ := f.GetUser(ctx, user.ID)
		assert.Equal(t, "Alice", fetched.FirstName)
		assert.Equal(t, user.UpdatedAt, fetched.UpdatedAt)
		assert.Equal(t, []string{"user.created"}, emitter.Types())
	})

	t.Run("not found", func(t *testing.T) {
		f, _, _ := newTestFacade(t)

		_, err := f.UpdateUser(ctx, uuid.New(), UserPatch{FirstName: strPtr("X")})

		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})

	t.Run("unknown id with taken email is not found", func(t *testing.T) {
		f, _, _ := newTestFacade(t)
		mustCreateUser(t, f, "alice@example.com")

		_, err := f.UpdateUser(ctx, uuid.New(), UserPatch{Email: strPtr("alice@example.com")})

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.False(t, store.IsDuplicateError(err))
	})
}

func TestFacade_EmptyPatchRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	f, _, emitter := newTestFacade(t)
	owner := mustCreateUser(t, f, "a@x.com")
	place := mustCreatePlace(t, f, owner.ID)
	review := mustCreateReview(t, f, owner.ID, place.ID)
	wifi := mustCreateAmenity(t, f, "Wi-Fi")

	// Reload the place: attaching the review touched it.
	place, err := f.GetPlace(ctx, place.ID)
	require.NoError(t, err)

	updatedUser, err := f.UpdateUser(ctx, owner.ID, UserPatch{})
	require.NoError(t, err)
	assert.True(t, updatedUser.UpdatedAt.After(owner.UpdatedAt))

	updatedPlace, err := f.UpdatePlace(ctx, place.ID, PlacePatch{})
	require.NoError(t, err)
	assert.True(t, updatedPlace.UpdatedAt.After(place.UpdatedAt))

	updatedReview, err := f.UpdateReview(ctx, review.ID, ReviewPatch{})
	require.NoError(t, err)
	assert.True(t, updatedReview.UpdatedAt.After(review.UpdatedAt))

	updatedAmenity, err := f.UpdateAmenity(ctx, wifi.ID, AmenityPatch{})
	require.NoError(t, err)
	assert.True(t, updatedAmenity.UpdatedAt.After(wifi.UpdatedAt))

	fetched, err := f.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, updatedPlace.UpdatedAt, fetched.UpdatedAt)
	assert.Contains(t, emitter.Types(), "amenity.updated")
}

func TestFacade_CreatePlace(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown owner", func(t *testing.T) {
		f, repos, _ := newTestFacade(t)

		_, err := f.CreatePlace(ctx, CreatePlaceInput{
			Title:     "Cozy",
			Price:     100,
			Latitude:  45,
			Longitude: 90,
			OwnerID:   uuid.New(),
		})

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Equal(t, 0, repos.Places.Count())
	})

	t.Run("latitude out of range", func(t *testing.T) {
		f, repos, _ := newTestFacade(t)
		owner := mustCreateUser(t, f, "a@x.com")

		_, err := f.CreatePlace(ctx, CreatePlaceInput{
			Title:     "Cozy",
			Price:     100,
			Latitude:  100,
			Longitude: 90,
			OwnerID:   owner.ID,
		})

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "latitude", validationErr.Field)
		assert.Equal(t, 0, repos.Places.Count())
	})

	t.Run("unknown amenities are skipped", func(t *testing.T) {
		f, _, _ := newTestFacade(t)
		owner := mustCreateUser(t, f, "a@x.com")
		wifi := mustCreateAmenity(t, f, "Wi-Fi")

		place := mustCreatePlace(t, f, owner.ID, wifi.ID, uuid.New(), wifi.ID)

		assert.Equal(t, []uuid.UUID{wifi.ID}, place.AmenityIDs)
	})
}

func TestFacade_UpdatePlace(t *testing.T) {
	ctx := context.Background()
	f, _, _ := newTestFacade(t)
	owner := mustCreateUser(t, f, "a@x.com")
	place := mustCreatePlace(t, f, owner.ID)

	price := 150.0
	updated, err := f.UpdatePlace(ctx, place.ID, PlacePatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, owner.ID, updated.OwnerID)

	negative := -1.0
	_, err = f.UpdatePlace(ctx, place.ID, PlacePatch{Price: &negative})
	assert.ErrorIs(t, err, domain.ErrValidation)

	fetched, err := f.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, fetched.Price)

	_, err = f.UpdatePlace(ctx, uuid.New(), PlacePatch{Price: &price})
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)
}

func TestFacade_ListPlacesByOwner(t *testing.T) {
	ctx := context.Background()
	f, _, _ := newTestFacade(t)
	alice := mustCreateUser(t, f, "alice@x.com")
	bob := mustCreateUser(t, f, "bob@x.com")
	first := mustCreatePlace(t, f, alice.ID)
	mustCreatePlace(t, f, bob.ID)
	second := mustCreatePlace(t, f, alice.ID)

	places, err := f.ListPlacesByOwner(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, first.ID, places[0].ID)
	assert.Equal(t, second.ID, places[1].ID)

	_, err = f.ListPlacesByOwner(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestFacade_PlaceAmenities(t *testing.T) {
	ctx := context.Background()
	f, _, _ := newTestFacade(t)
	owner := mustCreateUser(t, f, "a@x.com")
	place := mustCreatePlace(t, f, owner.ID)
	wifi := mustCreateAmenity(t, f, "Wi-Fi")
	pool := mustCreateAmenity(t, f, "Pool")

	_, err := f.AddAmenityToPlace(ctx, place.ID, wifi.ID)
	require.NoError(t, err)
	_, err = f.AddAmenityToPlace(ctx, place.ID, pool.ID)
	require.NoError(t, err)
	updated, err := f.AddAmenityToPlace(ctx, place.ID, wifi.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{wifi.ID, pool.ID}, updated.AmenityIDs)

	amenities, err := f.ListPlaceAmenities(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, amenities, 2)
	assert.Equal(t, "Wi-Fi", amenities[0].Name)
	assert.Equal(t, "Pool", amenities[1].Name)

	updated, err = f.RemoveAmenityFromPlace(ctx, place.ID, wifi.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{pool.ID}, updated.AmenityIDs)

	_, err = f.AddAmenityToPlace(ctx, place.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)
	_, err = f.AddAmenityToPlace(ctx, uuid.New(), wifi.ID)
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)
	_, err = f.AddAmenityToPlace(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrPlaceNotFound, "place is resolved before amenity")
	_, err = f.RemoveAmenityFromPlace(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrPlaceNotFound, "place is resolved before amenity")
	_, err = f.RemoveAmenityFromPlace(ctx, place.ID, uuid.New())
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)
	_, err = f.ListPlaceAmenities(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)
}

func TestFacade_CreateReview(t *testing.T) {
	ctx := context.Background()

	t.Run("attaches to place", func(t *testing.T) {
		f, _, _ := newTestFacade(t)
		user := mustCreateUser(t, f, "a@x.com")
		place := mustCreatePlace(t, f, user.ID)

		review := mustCreateReview(t, f, user.ID, place.ID)

		fetched, err := f.GetPlace(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{review.ID}, fetched.ReviewIDs)

		reviews, err := f.ListReviewsByPlace(ctx, place.ID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "Great!", reviews[0].Text)
	})

	t.Run("rating validated before lookups", func(t *testing.T) {
		f, repos, _ := newTestFacade(t)

		// Neither the user nor the place exist; validation must win.
		_, err := f.CreateReview(ctx, CreateReviewInput{
			Text:    "Great!",
			Rating:  6,
			UserID:  uuid.New(),
			PlaceID: uuid.New(),
		})

		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.False(t, store.IsNotFoundError(err))
		assert.Equal(t, 0, repos.Reviews.Count())
	})

	t.Run("unknown user", func(t *testing.T) {
		f, repos, _ := newTestFacade(t)
		owner := mustCreateUser(t, f, "a@x.com")
		place := mustCreatePlace(t, f, owner.ID)

		_, err := f.CreateReview(ctx, CreateReviewInput{
			Text:    "Great!",
			Rating:  4,
			UserID:  uuid.New(),
			PlaceID: place.ID,
		})

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.Equal(t, 0, repos.Reviews.Count())
	})

	t.Run("unknown place", func(t *testing.T) {
		f, repos, _ := newTestFacade(t)
		user := mustCreateUser(t, f, "a@x.com")

		_, err := f.CreateReview(ctx, CreateReviewInput{
			Text:    "Great!",
			Rating:  4,
			UserID:  user.ID,
			PlaceID: uuid.New(),
		})

		assert.ErrorIs(t, err, store.ErrPlaceNotFound)
		assert.Equal(t, 0, repos.Reviews.Count())
	})
}

func TestFacade_UpdateReview(t *testing.T) {
	ctx := context.Background()
	f, _, _ := newTestFacade(t)
	user := mustCreateUser(t, f, "a@x.com")
	place := mustCreatePlace(t, f, user.ID)
	review := mustCreateReview(t, f, user.ID, place.ID)

	rating := 3
	updated, err := f.UpdateReview(ctx, review.ID, ReviewPatch{Rating: &rating, Text: strPtr("Okay")})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)
	assert.Equal(t, "Okay", updated.Text)
	assert.Equal(t, user.ID, updated.UserID)
	assert.Equal(t, place.ID, updated.PlaceID)

	zero := 0
	_, err = f.UpdateReview(ctx, review.ID, ReviewPatch{Rating: &zero})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestFacade_DeleteReview(t *testing.T) {
	ctx := context.Background()
	f, repos, _ := newTestFacade(t)
	user := mustCreateUser(t, f, "a@x.com")
	place := mustCreatePlace(t, f, user.ID)
	review := mustCreateReview(t, f, user.ID, place.ID)

	require.NoError(t, f.DeleteReview(ctx, review.ID))

	_, err := f.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
	fetched, _ := repos.Places.Get(place.ID)
	assert.Empty(t, fetched.ReviewIDs)

	err = f.DeleteReview(ctx, review.ID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}

func TestFacade_DeletePlace_CascadesReviews(t *testing.T) {
	ctx := context.Background()
	f, repos, _ := newTestFacade(t)
	owner := mustCreateUser(t, f, "owner@x.com")
	guest := mustCreateUser(t, f, "guest@x.com")
	place := mustCreatePlace(t, f, owner.ID)
	mustCreateReview(t, f, guest.ID, place.ID)
	mustCreateReview(t, f, guest.ID, place.ID)

	require.NoError(t, f.DeletePlace(ctx, place.ID))

	assert.Equal(t, 0, repos.Places.Count())
	assert.Equal(t, 0, repos.Reviews.Count())
	assert.Equal(t, 2, repos.Users.Count())

	err := f.DeletePlace(ctx, place.ID)
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)
}

func TestFacade_DeleteUser_Cascades(t *testing.T) {
	ctx := context.Background()
	f, repos, _ := newTestFacade(t)
	alice := mustCreateUser(t, f, "alice@x.com")
	bob := mustCreateUser(t, f, "bob@x.com")

	alicePlace := mustCreatePlace(t, f, alice.ID)
	bobPlace := mustCreatePlace(t, f, bob.ID)
	mustCreateReview(t, f, bob.ID, alicePlace.ID)
	aliceReview := mustCreateReview(t, f, alice.ID, bobPlace.ID)
	bobReview := mustCreateReview(t, f, bob.ID, bobPlace.ID)

	require.NoError(t, f.DeleteUser(ctx, alice.ID))

	_, err := f.GetUser(ctx, alice.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = f.GetPlace(ctx, alicePlace.ID)
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)
	_, err = f.GetReview(ctx, aliceReview.ID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)

	// Only bob's own review on his own place survives.
	assert.Equal(t, 1, repos.Reviews.Count())
	remaining, err := f.GetPlace(ctx, bobPlace.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{bobReview.ID}, remaining.ReviewIDs)

	err = f.DeleteUser(ctx, alice.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestFacade_Amenities(t *testing.T) {
	ctx := context.Background()
	f, repos, emitter := newTestFacade(t)
	owner := mustCreateUser(t, f, "a@x.com")
	wifi := mustCreateAmenity(t, f, "Wi-Fi")
	place := mustCreatePlace(t, f, owner.ID, wifi.ID)

	updated, err := f.UpdateAmenity(ctx, wifi.ID, AmenityPatch{Description: strPtr("Fast")})
	require.NoError(t, err)
	assert.Equal(t, "Fast", updated.Description)

	_, err = f.UpdateAmenity(ctx, wifi.ID, AmenityPatch{Name: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Len(t, f.ListAmenities(ctx), 1)

	require.NoError(t, f.DeleteAmenity(ctx, wifi.ID))

	assert.Equal(t, 0, repos.Amenities.Count())
	fetched, err := f.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.AmenityIDs)
	assert.Contains(t, emitter.Types(), "amenity.deleted")

	deleted := emitter.Last("amenity.deleted")
	require.NotNil(t, deleted)
	assert.Equal(t, wifi.ID, deleted.EntityID)
	var lastState domain.Amenity
	require.NoError(t, deleted.UnmarshalPayload(&lastState))
	assert.Equal(t, "Wi-Fi", lastState.Name)
	assert.Equal(t, "Fast", lastState.Description)

	_, err = f.GetAmenity(ctx, wifi.ID)
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)
	assert.ErrorIs(t, f.DeleteAmenity(ctx, wifi.ID), store.ErrAmenityNotFound)
}

func TestFacade_EmitFailureDoesNotFailOperation(t *testing.T) {
	emitter := &MockEventEmitter{}
	emitter.On("EmitEvent", mock.Anything, mock.MatchedBy(func(e *events.EntityEvent) bool {
		return e.Type == "user.created"
	})).Return(errors.New("sink unavailable")).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := NewFacade(newTestRepositories(), emitter, logger)

	user, err := f.CreateUser(context.Background(), CreateUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "a@x.com",
	})

	require.NoError(t, err)
	assert.NotNil(t, user)
	emitter.AssertExpectations(t)
}

func TestFacade_ConcurrentCreateUserSameEmail(t *testing.T) {
	f, repos, _ := newTestFacade(t)

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.CreateUser(context.Background(), CreateUserInput{
				FirstName: "Alice",
				LastName:  "Smith",
				Email:     "race@x.com",
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
			} else if errors.Is(err, store.ErrEmailExists) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, 1, repos.Users.Count())
}
