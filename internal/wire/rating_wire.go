package wire

import (
	"luluspa-booking/internal/adaptor"
	"luluspa-booking/pkg/middleware"
	"luluspa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(r chi.Router, ratingHandler *adaptor.RatingHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/ratings - Published reviews, optionally by service
	r.Get("/api/ratings", ratingHandler.ListRatings)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/ratings - Review a checked-out booking
		r.Post("/api/ratings", ratingHandler.CreateRating)
	})
}
