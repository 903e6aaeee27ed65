package api

import (
	"context"
	"time"

	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/service"
)

// Request payloads. Create requests require every mandatory field; update
// requests use pointers so absent fields are left unchanged. Fields not
// listed here (id, owner_id on update, timestamps) are ignored.

// CreateUserRequest defines the payload for POST /users.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name"  validate:"required,max=50"`
	Email     string `json:"email"      validate:"required,email,max=254"`
	IsAdmin   bool   `json:"is_admin"`
}

// UpdateUserRequest defines the payload for PUT /users/{id}.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name"  validate:"omitempty,max=50"`
	Email     *string `json:"email"      validate:"omitempty,email,max=254"`
	IsAdmin   *bool   `json:"is_admin"`
}

// CreatePlaceRequest defines the payload for POST /places.
type CreatePlaceRequest struct {
	Title       string   `json:"title"       validate:"required,max=100"`
	Description string   `json:"description" validate:"max=1000"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Latitude    *float64 `json:"latitude"    validate:"required,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude"   validate:"required,gte=-180,lte=180"`
	OwnerID     string   `json:"owner_id"    validate:"required"`
	Amenities   []string `json:"amenities"`
}

// UpdatePlaceRequest defines the payload for PUT /places/{id}.
type UpdatePlaceRequest struct {
	Title       *string  `json:"title"       validate:"omitempty,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=1000"`
	Price       *float64 `json:"price"       validate:"omitempty,gte=0"`
	Latitude    *float64 `json:"latitude"    validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude"   validate:"omitempty,gte=-180,lte=180"`
}

// CreateReviewRequest defines the payload for POST /reviews.
type CreateReviewRequest struct {
	Text    string `json:"text"     validate:"required,max=2000"`
	Rating  int    `json:"rating"   validate:"gte=1,lte=5"`
	UserID  string `json:"user_id"  validate:"required"`
	PlaceID string `json:"place_id" validate:"required"`
}

// UpdateReviewRequest defines the payload for PUT /reviews/{id}.
type UpdateReviewRequest struct {
	Text   *string `json:"text"   validate:"omitempty,max=2000"`
	Rating *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// CreateAmenityRequest defines the payload for POST /amenities.
type CreateAmenityRequest struct {
	Name        string `json:"name"        validate:"required,max=50"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateAmenityRequest defines the payload for PUT /amenities/{id}.
type UpdateAmenityRequest struct {
	Name        *string `json:"name"        validate:"omitempty,max=50"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// Response payloads

// UserResponse represents the response data for a user
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenityResponse represents the response data for an amenity
type AmenityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewResponse represents the response data for a review
type ReviewResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    string    `json:"user_id"`
	PlaceID   string    `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaceResponse represents the response data for a place with its owner,
// amenities and reviews resolved.
type PlaceResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	OwnerID     string            `json:"owner_id"`
	Owner       *UserResponse     `json:"owner,omitempty"`
	Amenities   []AmenityResponse `json:"amenities"`
	Reviews     []ReviewResponse  `json:"reviews"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// userToResponse converts a domain.User to a UserResponse
func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// amenityToResponse converts a domain.Amenity to an AmenityResponse
func amenityToResponse(a *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// reviewToResponse converts a domain.Review to a ReviewResponse
func reviewToResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID.String(),
		Text:      r.Text,
		Rating:    r.Rating,
		UserID:    r.UserID.String(),
		PlaceID:   r.PlaceID.String(),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// placeToResponse converts a domain.Place to a PlaceResponse, resolving the
// referenced owner, amenities and reviews. References that no longer
// resolve are omitted.
func placeToResponse(ctx context.Context, facade service.Facade, p *domain.Place) PlaceResponse {
	resp := PlaceResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID.String(),
		Amenities:   make([]AmenityResponse, 0, len(p.AmenityIDs)),
		Reviews:     make([]ReviewResponse, 0, len(p.ReviewIDs)),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	if owner, err := facade.GetUser(ctx, p.OwnerID); err == nil {
		ownerResp := userToResponse(owner)
		resp.Owner = &ownerResp
	}
	for _, id := range p.AmenityIDs {
		if amenity, err := facade.GetAmenity(ctx, id); err == nil {
			resp.Amenities = append(resp.Amenities, amenityToResponse(amenity))
		}
	}
	for _, id := range p.ReviewIDs {
		if review, err := facade.GetReview(ctx, id); err == nil {
			resp.Reviews = append(resp.Reviews, reviewToResponse(review))
		}
	}

	return resp
}

func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}

func amenitiesToResponse(amenities []*domain.Amenity) []AmenityResponse {
	out := make([]AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		out = append(out, amenityToResponse(a))
	}
	return out
}

func reviewsToResponse(reviews []*domain.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, reviewToResponse(r))
	}
	return out
}

func placesToResponse(ctx context.Context, facade service.Facade, places []*domain.Place) []PlaceResponse {
	out := make([]PlaceResponse, 0, len(places))
	for _, p := range places {
		out = append(out, placeToResponse(ctx, facade, p))
	}
	return out
}
