package api

import (
	"log/slog"
	"net/http"

	"github.com/hbnb/hbnb-api/internal/api/shared"
	"github.com/hbnb/hbnb-api/internal/domain"
	"github.com/hbnb/hbnb-api/internal/platform/logger"
	"github.com/hbnb/hbnb-api/internal/service"
	"github.com/hbnb/hbnb-api/internal/store"
)

// PlaceHandler handles place-related HTTP requests, including the nested
// review and amenity collections of a place.
type PlaceHandler struct {
	facade service.Facade
	logger *slog.Logger
}

// NewPlaceHandler creates a new PlaceHandler
func NewPlaceHandler(facade service.Facade, logger *slog.Logger) *PlaceHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PlaceHandler")
	}
	return &PlaceHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "place_handler")),
	}
}

// CreatePlace handles POST /places requests
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreatePlaceRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	ownerID, err := domain.ParseID("owner_id", req.OwnerID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	amenityIDs, err := parseBodyIDs("amenities", req.Amenities)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	place, err := h.facade.CreatePlace(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		OwnerID:     ownerID,
		AmenityIDs:  amenityIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create place")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, placeToResponse(r.Context(), h.facade, place))
}

// ListPlaces handles GET /places requests
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places := h.facade.ListPlaces(r.Context())
	shared.RespondWithJSON(w, r, http.StatusOK, placesToResponse(r.Context(), h.facade, places))
}

// GetPlace handles GET /places/{id} requests
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	place, err := h.facade.GetPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve place")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(r.Context(), h.facade, place))
}

// UpdatePlace handles PUT /places/{id} requests
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	var req UpdatePlaceRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	place, err := h.facade.UpdatePlace(r.Context(), id, service.PlacePatch{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update place")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(r.Context(), h.facade, place))
}

// DeletePlace handles DELETE /places/{id} requests
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	if err := h.facade.DeletePlace(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete place")
		return
	}

	shared.RespondNoContent(w)
}

// ListPlaceReviews handles GET /places/{id}/reviews requests
func (h *PlaceHandler) ListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	reviews, err := h.facade.ListReviewsByPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list reviews")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponse(reviews))
}

// ListPlaceAmenities handles GET /places/{id}/amenities requests
func (h *PlaceHandler) ListPlaceAmenities(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrPlaceNotFound, log)
	if !ok {
		return
	}

	amenities, err := h.facade.ListPlaceAmenities(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list amenities")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, amenitiesToResponse(amenities))
}

// AddPlaceAmenity handles POST /places/{id}/amenities/{amenity_id} requests
func (h *PlaceHandler) AddPlaceAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	placeID, ok := handlePathUUID(w, r, "id", store.ErrPlaceNotFound, log)
	if !ok {
		return
	}
	amenityID, ok := handlePathUUID(w, r, "amenity_id", store.ErrAmenityNotFound, log)
	if !ok {
		return
	}

	place, err := h.facade.AddAmenityToPlace(r.Context(), placeID, amenityID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add amenity")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(r.Context(), h.facade, place))
}

// RemovePlaceAmenity handles DELETE /places/{id}/amenities/{amenity_id} requests
func (h *PlaceHandler) RemovePlaceAmenity(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	placeID, ok := handlePathUUID(w, r, "id", store.ErrPlaceNotFound, log)
	if !ok {
		return
	}
	amenityID, ok := handlePathUUID(w, r, "amenity_id", store.ErrAmenityNotFound, log)
	if !ok {
		return
	}

	place, err := h.facade.RemoveAmenityFromPlace(r.Context(), placeID, amenityID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to remove amenity")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(r.Context(), h.facade, place))
}
