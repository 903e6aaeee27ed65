package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestParseID(t *testing.T) {
	valid := uuid.New()

	id, err := ParseID("id", valid.String())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if id != valid {
		t.Errorf("Expected %s, got %s", valid, id)
	}

	for _, raw := range []string{"", "   ", "not-a-uuid", "1234", uuid.Nil.String()} {
		_, err := ParseID("owner_id", raw)
		if !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q): expected ErrInvalidID, got %v", raw, err)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "owner_id" {
			t.Errorf("ParseID(%q): expected ValidationError on owner_id, got %v", raw, err)
		}
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("rating", "must be between 1 and 5", nil)
	if err.Error() != "rating must be between 1 and 5" {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("Expected nil sentinel to default to ErrValidation")
	}
}

func TestTouchIsStrictlyMonotonic(t *testing.T) {
	b := newBase()
	b.UpdatedAt = time.Now().UTC().Add(time.Hour)

	prev := b.UpdatedAt
	for i := 0; i < 100; i++ {
		b.Touch()
		if !b.UpdatedAt.After(prev) {
			t.Fatalf("Touch %d did not advance UpdatedAt", i)
		}
		prev = b.UpdatedAt
	}
}

func TestIdentifiersAreUnique(t *testing.T) {
	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 1000; i++ {
		a, err := NewAmenity("Wi-Fi", "")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if seen[a.ID] {
			t.Fatalf("Duplicate identifier %s", a.ID)
		}
		seen[a.ID] = true
	}
}
