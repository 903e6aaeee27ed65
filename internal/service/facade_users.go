package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/events"
	"github.com/hbnb/hbnb-api/internal/redact"
	"github.com/hbnb/hbnb-api/internal/store"
)

// apply assigns the non-nil fields through the validating setters. Every
// update refreshes UpdatedAt, even one that sets no field.
func (p UserPatch) apply(u *domain.User) error {
	if p.FirstName != nil {
		if err := u.SetFirstName(*p.FirstName); err != nil {
			return err
		}
	}
	if p.LastName != nil {
		if err := u.SetLastName(*p.LastName); err != nil {
			return err
		}
	}
	if p.Email != nil {
		if err := u.SetEmail(*p.Email); err != nil {
			return err
		}
	}
	if p.IsAdmin != nil {
		u.SetAdmin(*p.IsAdmin)
	}
	u.Touch()
	return nil
}

// CreateUser validates and stores a new user
func (s *FacadeImpl) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	log := s.log(ctx)

	user, err := domain.NewUser(input.FirstName, input.LastName, input.Email, input.IsAdmin)
	if err != nil {
		log.Debug("invalid user input", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(user.Email, uuid.Nil) {
		log.Debug("attempted to create user with existing email",
			"email", redact.Email(user.Email))
		return nil, fmt.Errorf("failed to create user: %w", store.ErrEmailExists)
	}

	if err := s.users.Add(user); err != nil {
		log.Error("failed to store user", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created successfully",
		"user_id", user.ID,
		"email", redact.Email(user.Email))
	s.emit(ctx, entityUser, events.ActionCreated, user.ID, user)

	return user, nil
}

// GetUser retrieves a user by their ID
func (s *FacadeImpl) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		s.log(ctx).Debug("user not found", "user_id", id)
		return nil, fmt.Errorf("failed to retrieve user: %w", store.ErrUserNotFound)
	}
	return user, nil
}

// ListUsers returns all users
func (s *FacadeImpl) ListUsers(ctx context.Context) []*domain.User {
	return s.users.GetAll()
}

// UpdateUser applies a partial update to a user
func (s *FacadeImpl) UpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*domain.User, error) {
	log := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.Get(id); !ok {
		log.Debug("user not found", "user_id", id)
		return nil, fmt.Errorf("failed to update user: %w", store.ErrUserNotFound)
	}

	if patch.Email != nil && s.emailTaken(*patch.Email, id) {
		log.Debug("attempted to change email to an existing one",
			"user_id", id,
			"email", redact.Email(*patch.Email))
		return nil, fmt.Errorf("failed to update user: %w", store.ErrEmailExists)
	}

	user, err := s.users.Update(id, patch.apply)
	if err != nil {
		log.Debug("failed to update user", "error", redact.Error(err), "user_id", id)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	log.Info("user updated successfully", "user_id", id)
	s.emit(ctx, entityUser, events.ActionUpdated, id, user)

	return user, nil
}

// DeleteUser removes a user and everything that depends on them:
// reviews they wrote, then places they own (with those places' reviews).
func (s *FacadeImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	log := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.Get(id)
	if !ok {
		log.Debug("user not found", "user_id", id)
		return fmt.Errorf("failed to delete user: %w", store.ErrUserNotFound)
	}

	authored := s.reviews.FindAll(func(r *domain.Review) bool { return r.UserID == id })
	for _, review := range authored {
		s.deleteReviewLocked(ctx, review)
	}

	owned := s.places.FindAll(func(p *domain.Place) bool { return p.OwnerID == id })
	for _, place := range owned {
		s.deletePlaceLocked(ctx, place)
	}

	s.users.Delete(id)

	log.Info("user deleted successfully",
		"user_id", id,
		"reviews_deleted", len(authored),
		"places_deleted", len(owned))
	s.emit(ctx, entityUser, events.ActionDeleted, id, user)

	return nil
}

// emailTaken reports whether a user other than exclude already uses email.
// Callers must hold s.mu.
func (s *FacadeImpl) emailTaken(email string, exclude uuid.UUID) bool {
	matches := s.users.FindAll(func(u *domain.User) bool {
		return u.ID != exclude && u.HasEmail(email)
	})
	return len(matches) > 0
}
