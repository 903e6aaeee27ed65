package domain

import "github.com/google/uuid"

// Review is a rated comment written by a user about a place.
// UserID and PlaceID are fixed at creation.
type Review struct {
	Base
	Text    string    `json:"text"`
	Rating  int       `json:"rating"`
	UserID  uuid.UUID `json:"user_id"`
	PlaceID uuid.UUID `json:"place_id"`
}

// NewReview creates a new Review by userID about placeID.
// Returns a *ValidationError if any field is invalid.
func NewReview(text string, rating int, userID, placeID uuid.UUID) (*Review, error) {
	review := &Review{
		Base:    newBase(),
		Rating:  rating,
		UserID:  userID,
		PlaceID: placeID,
	}

	var err error
	if review.Text, err = requireText("text", text, MaxReviewTextLength); err != nil {
		return nil, err
	}
	if err := checkRating(rating); err != nil {
		return nil, err
	}
	if err := requireID("user_id", userID); err != nil {
		return nil, err
	}
	if err := requireID("place_id", placeID); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
func (r *Review) Validate() error {
	if err := requireID("id", r.ID); err != nil {
		return err
	}
	if _, err := requireText("text", r.Text, MaxReviewTextLength); err != nil {
		return err
	}
	if err := checkRating(r.Rating); err != nil {
		return err
	}
	if err := requireID("user_id", r.UserID); err != nil {
		return err
	}
	return requireID("place_id", r.PlaceID)
}

// SetText validates and assigns the review text.
func (r *Review) SetText(text string) error {
	text, err := requireText("text", text, MaxReviewTextLength)
	if err != nil {
		return err
	}
	r.Text = text
	r.Touch()
	return nil
}

// SetRating validates and assigns the rating.
func (r *Review) SetRating(rating int) error {
	if err := checkRating(rating); err != nil {
		return err
	}
	r.Rating = rating
	r.Touch()
	return nil
}

// Clone returns a copy of the review.
func (r *Review) Clone() *Review {
	c := *r
	return &c
}

// Attribute implements Entity.
func (r *Review) Attribute(name string) (any, bool) {
	switch name {
	case "text":
		return r.Text, true
	case "rating":
		return r.Rating, true
	case "user_id":
		return r.UserID, true
	case "place_id":
		return r.PlaceID, true
	}
	return r.baseAttribute(name)
}
