package domain

// Amenity is a feature a place can offer, such as "Wi-Fi".
type Amenity struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewAmenity creates a new Amenity.
func NewAmenity(name, description string) (*Amenity, error) {
	amenity := &Amenity{Base: newBase()}

	var err error
	if amenity.Name, err = requireText("name", name, MaxNameLength); err != nil {
		return nil, err
	}
	if amenity.Description, err = optionalText("description", description, MaxAmenityDescLength); err != nil {
		return nil, err
	}

	return amenity, nil
}

// Validate checks if the Amenity has valid data.
func (a *Amenity) Validate() error {
	if err := requireID("id", a.ID); err != nil {
		return err
	}
	if _, err := requireText("name", a.Name, MaxNameLength); err != nil {
		return err
	}
	return checkLength("description", a.Description, MaxAmenityDescLength)
}

// SetName validates and assigns the name.
func (a *Amenity) SetName(name string) error {
	name, err := requireText("name", name, MaxNameLength)
	if err != nil {
		return err
	}
	a.Name = name
	a.Touch()
	return nil
}

// SetDescription validates and assigns the description. Empty clears it.
func (a *Amenity) SetDescription(description string) error {
	description, err := optionalText("description", description, MaxAmenityDescLength)
	if err != nil {
		return err
	}
	a.Description = description
	a.Touch()
	return nil
}

// Clone returns a copy of the amenity.
func (a *Amenity) Clone() *Amenity {
	c := *a
	return &c
}

// Attribute implements Entity.
func (a *Amenity) Attribute(name string) (any, bool) {
	switch name {
	case "name":
		return a.Name, true
	case "description":
		return a.Description, true
	}
	return a.baseAttribute(name)
}
