package domain

import (
	"slices"

	"github.com/google/uuid"
)

// Place is a listing offered by a user. Amenities and reviews are held as
// ordered id references; their lifetimes belong to their own repositories.
type Place struct {
	Base
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
	ReviewIDs   []uuid.UUID `json:"review_ids"`
}

// NewPlace creates a new Place owned by ownerID.
// Returns a *ValidationError if any field is invalid.
func NewPlace(
	title, description string,
	price, latitude, longitude float64,
	ownerID uuid.UUID,
) (*Place, error) {
	place := &Place{
		Base:       newBase(),
		Price:      price,
		Latitude:   latitude,
		Longitude:  longitude,
		OwnerID:    ownerID,
		AmenityIDs: []uuid.UUID{},
		ReviewIDs:  []uuid.UUID{},
	}

	var err error
	if place.Title, err = requireText("title", title, MaxTitleLength); err != nil {
		return nil, err
	}
	if place.Description, err = optionalText("description", description, MaxDescriptionLength); err != nil {
		return nil, err
	}
	if err := place.validateNumbers(); err != nil {
		return nil, err
	}
	if err := requireID("owner_id", ownerID); err != nil {
		return nil, err
	}

	return place, nil
}

func (p *Place) validateNumbers() error {
	if err := checkPrice(p.Price); err != nil {
		return err
	}
	if err := checkRange("latitude", p.Latitude, MinLatitude, MaxLatitude); err != nil {
		return err
	}
	return checkRange("longitude", p.Longitude, MinLongitude, MaxLongitude)
}

// Validate checks if the Place has valid data.
func (p *Place) Validate() error {
	if err := requireID("id", p.ID); err != nil {
		return err
	}
	if _, err := requireText("title", p.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := checkLength("description", p.Description, MaxDescriptionLength); err != nil {
		return err
	}
	if err := p.validateNumbers(); err != nil {
		return err
	}
	return requireID("owner_id", p.OwnerID)
}

// SetTitle validates and assigns the title.
func (p *Place) SetTitle(title string) error {
	title, err := requireText("title", title, MaxTitleLength)
	if err != nil {
		return err
	}
	p.Title = title
	p.Touch()
	return nil
}

// SetDescription validates and assigns the description. Empty clears it.
func (p *Place) SetDescription(description string) error {
	description, err := optionalText("description", description, MaxDescriptionLength)
	if err != nil {
		return err
	}
	p.Description = description
	p.Touch()
	return nil
}

// SetPrice validates and assigns the nightly price.
func (p *Place) SetPrice(price float64) error {
	if err := checkPrice(price); err != nil {
		return err
	}
	p.Price = price
	p.Touch()
	return nil
}

// SetLatitude validates and assigns the latitude.
func (p *Place) SetLatitude(latitude float64) error {
	if err := checkRange("latitude", latitude, MinLatitude, MaxLatitude); err != nil {
		return err
	}
	p.Latitude = latitude
	p.Touch()
	return nil
}

// SetLongitude validates and assigns the longitude.
func (p *Place) SetLongitude(longitude float64) error {
	if err := checkRange("longitude", longitude, MinLongitude, MaxLongitude); err != nil {
		return err
	}
	p.Longitude = longitude
	p.Touch()
	return nil
}

// AddAmenity appends amenityID unless already present.
// Returns false when the place already lists it.
func (p *Place) AddAmenity(amenityID uuid.UUID) bool {
	if slices.Contains(p.AmenityIDs, amenityID) {
		return false
	}
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
	p.Touch()
	return true
}

// RemoveAmenity detaches amenityID. Returns false when it was not listed.
func (p *Place) RemoveAmenity(amenityID uuid.UUID) bool {
	removed := false
	p.AmenityIDs, removed = removeID(p.AmenityIDs, amenityID)
	if removed {
		p.Touch()
	}
	return removed
}

// HasAmenity reports whether amenityID is attached.
func (p *Place) HasAmenity(amenityID uuid.UUID) bool {
	return slices.Contains(p.AmenityIDs, amenityID)
}

// AddReview appends reviewID to the review list.
func (p *Place) AddReview(reviewID uuid.UUID) {
	if slices.Contains(p.ReviewIDs, reviewID) {
		return
	}
	p.ReviewIDs = append(p.ReviewIDs, reviewID)
	p.Touch()
}

// RemoveReview detaches reviewID. Returns false when it was not listed.
func (p *Place) RemoveReview(reviewID uuid.UUID) bool {
	removed := false
	p.ReviewIDs, removed = removeID(p.ReviewIDs, reviewID)
	if removed {
		p.Touch()
	}
	return removed
}

// Clone returns a deep copy of the place.
func (p *Place) Clone() *Place {
	c := *p
	c.AmenityIDs = slices.Clone(p.AmenityIDs)
	c.ReviewIDs = slices.Clone(p.ReviewIDs)
	if c.AmenityIDs == nil {
		c.AmenityIDs = []uuid.UUID{}
	}
	if c.ReviewIDs == nil {
		c.ReviewIDs = []uuid.UUID{}
	}
	return &c
}

// Attribute implements Entity.
func (p *Place) Attribute(name string) (any, bool) {
	switch name {
	case "title":
		return p.Title, true
	case "description":
		return p.Description, true
	case "price":
		return p.Price, true
	case "latitude":
		return p.Latitude, true
	case "longitude":
		return p.Longitude, true
	case "owner_id":
		return p.OwnerID, true
	}
	return p.baseAttribute(name)
}

func removeID(ids []uuid.UUID, id uuid.UUID) ([]uuid.UUID, bool) {
	i := slices.Index(ids, id)
	if i < 0 {
		return ids, false
	}
	return slices.Delete(ids, i, i+1), true
}
