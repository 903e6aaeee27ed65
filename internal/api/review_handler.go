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

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	facade service.Facade
	logger *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(facade service.Facade, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}
	return &ReviewHandler{
		facade: facade,
		logger: logger.With(slog.String("component", "review_handler")),
	}
}

// CreateReview handles POST /reviews requests
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateReviewRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	userID, err := domain.ParseID("user_id", req.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	placeID, err := domain.ParseID("place_id", req.PlaceID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	review, err := h.facade.CreateReview(r.Context(), service.CreateReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		UserID:  userID,
		PlaceID: placeID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create review")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, reviewToResponse(review))
}

// ListReviews handles GET /reviews requests
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, reviewsToResponse(h.facade.ListReviews(r.Context())))
}

// GetReview handles GET /reviews/{id} requests
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrReviewNotFound, log)
	if !ok {
		return
	}

	review, err := h.facade.GetReview(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve review")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// UpdateReview handles PUT /reviews/{id} requests
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrReviewNotFound, log)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	review, err := h.facade.UpdateReview(r.Context(), id, service.ReviewPatch{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update review")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// DeleteReview handles DELETE /reviews/{id} requests
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := handlePathUUID(w, r, "id", store.ErrReviewNotFound, log)
	if !ok {
		return
	}

	if err := h.facade.DeleteReview(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete review")
		return
	}

	shared.RespondNoContent(w)
}
