package wire

import (
	"luluspa-booking/internal/adaptor"
	"luluspa-booking/pkg/middleware"
	"luluspa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCheckout(r chi.Router, checkoutHandler *adaptor.CheckoutHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/checkout - Create a payment link for completed bookings
		r.Post("/api/checkout", checkoutHandler.StartCheckout)

		// GET /api/checkout - Current checkout state
		r.Get("/api/checkout", checkoutHandler.Status)

		// DELETE /api/checkout - Discard the in-flight attempt
		r.Delete("/api/checkout", checkoutHandler.CloseAttempt)
	})
}
