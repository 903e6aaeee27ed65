package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/hbnb/hbnb-api/internal/service"
)

// RegisterRoutes mounts every resource endpoint on r. Callers choose the
// prefix (normally /api/v1) by passing a sub-router.
func RegisterRoutes(r chi.Router, facade service.Facade, logger *slog.Logger) {
	users := NewUserHandler(facade, logger)
	places := NewPlaceHandler(facade, logger)
	reviews := NewReviewHandler(facade, logger)
	amenities := NewAmenityHandler(facade, logger)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", users.CreateUser)
		r.Get("/", users.ListUsers)
		r.Get("/{id}", users.GetUser)
		r.Put("/{id}", users.UpdateUser)
		r.Delete("/{id}", users.DeleteUser)
		r.Get("/{id}/places", users.ListUserPlaces)
	})

	r.Route("/places", func(r chi.Router) {
		r.Post("/", places.CreatePlace)
		r.Get("/", places.ListPlaces)
		r.Get("/{id}", places.GetPlace)
		r.Put("/{id}", places.UpdatePlace)
		r.Delete("/{id}", places.DeletePlace)
		r.Get("/{id}/reviews", places.ListPlaceReviews)
		r.Get("/{id}/amenities", places.ListPlaceAmenities)
		r.Post("/{id}/amenities/{amenity_id}", places.AddPlaceAmenity)
		r.Delete("/{id}/amenities/{amenity_id}", places.RemovePlaceAmenity)
	})

	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", reviews.CreateReview)
		r.Get("/", reviews.ListReviews)
		r.Get("/{id}", reviews.GetReview)
		r.Put("/{id}", reviews.UpdateReview)
		r.Delete("/{id}", reviews.DeleteReview)
	})

	r.Route("/amenities", func(r chi.Router) {
		r.Post("/", amenities.CreateAmenity)
		r.Get("/", amenities.ListAmenities)
		r.Get("/{id}", amenities.GetAmenity)
		r.Put("/{id}", amenities.UpdateAmenity)
		r.Delete("/{id}", amenities.DeleteAmenity)
	})
}
