package api

import (
	"log/slog"
	"net/http"

	"github.com/hbnb/hbnb-api/internal/api/shared"
	"github.com/hbnb/hbnb-api/internal/platform/logger"
	"github.com/hbnb/hbnb-api/internal/service"
	"github.com/hbnb/hbnb-api/internal/store"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	facade service.Facade
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(facade service.Facade, logger *slog.Logger) *UserHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for UserHandler")
	}
	return &UserHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /users requests
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	user, err := h.facade.CreateUser(r.Context(), service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// ListUsers handles GET /users requests
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(h.facade.ListUsers(r.Context())))
}

// GetUser handles GET /users/{id} requests
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrUserNotFound, log)
	if !ok {
		return
	}

	user, err := h.facade.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// UpdateUser handles PUT /users/{id} requests
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrUserNotFound, log)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	user, err := h.facade.UpdateUser(r.Context(), id, service.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// DeleteUser handles DELETE /users/{id} requests
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrUserNotFound, log)
	if !ok {
		return
	}

	if err := h.facade.DeleteUser(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	log.Debug("user deleted", slog.String("user_id", id.String()))
	shared.RespondNoContent(w)
}

// ListUserPlaces handles GET /users/{id}/places requests
func (h *UserHandler) ListUserPlaces(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrUserNotFound, log)
	if !ok {
		return
	}

	places, err := h.facade.ListPlacesByOwner(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list places")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placesToResponse(r.Context(), h.facade, places))
}
