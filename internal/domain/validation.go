package domain

import (
	"math"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field length limits shared by constructors and setters.
const (
	MaxNameLength        = 50
	MaxEmailLength       = 254
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
	MaxReviewTextLength  = 2000
	MaxAmenityDescLength = 500

	MinRating = 1
	MaxRating = 5

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ParseID parses raw as a UUID identifier. It is the single place where
// identifier format is checked; field names the input for error messages.
func ParseID(field, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, NewValidationError(field, "is required", ErrInvalidID)
	}

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, NewValidationError(field, "has invalid format", ErrInvalidID)
	}

	return id, nil
}

// requireID rejects the nil UUID.
func requireID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return NewValidationError(field, "is required", ErrInvalidID)
	}
	return nil
}

// requireText trims value and checks it is non-blank and at most max runes.
func requireText(field, value string, max int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", NewValidationError(field, "is required", ErrEmptyContent)
	}
	return value, checkLength(field, value, max)
}

// optionalText trims value and enforces max runes; empty is allowed.
func optionalText(field, value string, max int) (string, error) {
	value = strings.TrimSpace(value)
	return value, checkLength(field, value, max)
}

func checkLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return NewValidationError(field, "is too long", ErrTooLong)
	}
	return nil
}

// normalizeEmail validates address and returns its canonical form.
// A bare "user@host" is rejected: the domain must contain a dot.
func normalizeEmail(address string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", NewValidationError("email", "is required", ErrInvalidEmail)
	}
	if len(address) > MaxEmailLength {
		return "", NewValidationError("email", "is too long", ErrTooLong)
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address || parsed.Name != "" {
		return "", NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}

	at := strings.LastIndex(address, "@")
	domainPart := address[at+1:]
	dot := strings.LastIndex(domainPart, ".")
	if dot <= 0 || dot == len(domainPart)-1 {
		return "", NewValidationError("email", "has invalid format", ErrInvalidEmail)
	}

	return address, nil
}

// checkRange ensures value is a finite number within [min, max].
func checkRange(field string, value, min, max float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < min || value > max {
		return NewValidationError(field, "is out of range", ErrOutOfRange)
	}
	return nil
}

func checkPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return NewValidationError("price", "must be a non-negative number", ErrOutOfRange)
	}
	return nil
}

func checkRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return NewValidationError("rating", "must be between 1 and 5", ErrOutOfRange)
	}
	return nil
}
