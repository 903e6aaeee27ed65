package domain

import "strings"

// User represents a registered HBnB user. Places owned and reviews written by
// the user are resolved by id through the service layer.
type User struct {
	Base
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// NewUser creates a new User with a generated ID and timestamps.
// Returns a *ValidationError if any field is invalid.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	user := &User{
		Base:    newBase(),
		IsAdmin: isAdmin,
	}

	var err error
	if user.FirstName, err = requireText("first_name", firstName, MaxNameLength); err != nil {
		return nil, err
	}
	if user.LastName, err = requireText("last_name", lastName, MaxNameLength); err != nil {
		return nil, err
	}
	if user.Email, err = normalizeEmail(email); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if err := requireID("id", u.ID); err != nil {
		return err
	}
	if _, err := requireText("first_name", u.FirstName, MaxNameLength); err != nil {
		return err
	}
	if _, err := requireText("last_name", u.LastName, MaxNameLength); err != nil {
		return err
	}
	_, err := normalizeEmail(u.Email)
	return err
}

// SetFirstName validates and assigns the first name.
func (u *User) SetFirstName(name string) error {
	name, err := requireText("first_name", name, MaxNameLength)
	if err != nil {
		return err
	}
	u.FirstName = name
	u.Touch()
	return nil
}

// SetLastName validates and assigns the last name.
func (u *User) SetLastName(name string) error {
	name, err := requireText("last_name", name, MaxNameLength)
	if err != nil {
		return err
	}
	u.LastName = name
	u.Touch()
	return nil
}

// SetEmail validates and assigns the email address.
func (u *User) SetEmail(email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	u.Email = email
	u.Touch()
	return nil
}

// SetAdmin assigns the admin flag.
func (u *User) SetAdmin(isAdmin bool) {
	u.IsAdmin = isAdmin
	u.Touch()
}

// HasEmail reports whether the user's email matches, ignoring case.
func (u *User) HasEmail(email string) bool {
	return strings.EqualFold(u.Email, strings.TrimSpace(email))
}

// Clone returns a copy of the user.
func (u *User) Clone() *User {
	c := *u
	return &c
}

// Attribute implements Entity.
func (u *User) Attribute(name string) (any, bool) {
	switch name {
	case "first_name":
		return u.FirstName, true
	case "last_name":
		return u.LastName, true
	case "email":
		return u.Email, true
	case "is_admin":
		return u.IsAdmin, true
	}
	return u.baseAttribute(name)
}
