package service

import "github.com/google/uuid"

// CreateUserInput carries the fields accepted when registering a user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// UserPatch lists the updatable user fields. Nil fields are left unchanged.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	IsAdmin   *bool
}

// CreatePlaceInput carries the fields accepted when listing a place.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     uuid.UUID
	AmenityIDs  []uuid.UUID
}

// PlacePatch lists the updatable place fields. Nil fields are left unchanged.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
}

// CreateReviewInput carries the fields accepted when writing a review.
type CreateReviewInput struct {
	Text    string
	Rating  int
	UserID  uuid.UUID
	PlaceID uuid.UUID
}

// ReviewPatch lists the updatable review fields. Nil fields are left unchanged.
type ReviewPatch struct {
	Text   *string
	Rating *int
}

// CreateAmenityInput carries the fields accepted when defining an amenity.
type CreateAmenityInput struct {
	Name        string
	Description string
}

// AmenityPatch lists the updatable amenity fields. Nil fields are left unchanged.
type AmenityPatch struct {
	Name        *string
	Description *string
}
