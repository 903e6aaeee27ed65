package api

import (
	"log/slog"
	"net/http"

	"github.com/hbnb/hbnb-api/internal/api/shared"
	"github.com/hbnb/hbnb-api/internal/platform/logger"
	"github.com/hbnb/hbnb-api/internal/service"
	"github.com/hbnb/hbnb-api/internal/store"
)

// AmenityHandler handles amenity-related HTTP requests
type AmenityHandler struct {
	facade service.Facade
	logger *slog.Logger
}

// NewAmenityHandler creates a new AmenityHandler
func NewAmenityHandler(facade service.Facade, logger *slog.Logger) *AmenityHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AmenityHandler")
	}
	return &AmenityHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "amenity_handler")),
	}
}

// CreateAmenity handles POST /amenities requests
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateAmenityRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	amenity, err := h.facade.CreateAmenity(r.Context(), service.CreateAmenityInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create amenity")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, amenityToResponse(amenity))
}

// ListAmenities handles GET /amenities requests
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, amenitiesToResponse(h.facade.ListAmenities(r.Context())))
}

// GetAmenity handles GET /amenities/{id} requests
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrAmenityNotFound, log)
	if !ok {
		return
	}

	amenity, err := h.facade.GetAmenity(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve amenity")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// UpdateAmenity handles PUT /amenities/{id} requests
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrAmenityNotFound, log)
	if !ok {
		return
	}

	var req UpdateAmenityRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	amenity, err := h.facade.UpdateAmenity(r.Context(), id, service.AmenityPatch{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update amenity")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// DeleteAmenity handles DELETE /amenities/{id} requests
func (h *AmenityHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrAmenityNotFound, log)
	if !ok {
		return
	}

	if err := h.facade.DeleteAmenity(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete amenity")
		return
	}

	shared.RespondNoContent(w)
}
