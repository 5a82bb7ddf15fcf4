package wire

import (
	"luluspa-booking/internal/adaptor"
	"luluspa-booking/pkg/middleware"
	"luluspa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCart(r chi.Router, cartHandler *adaptor.CartHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// GET /api/cart - Current cart contents
		r.Get("/api/cart", cartHandler.GetCart)

		// POST /api/cart - Add a booking intent to the cart
		r.Post("/api/cart", cartHandler.AddItem)

		// POST /api/cart/submit - Turn the cart into pending bookings
		r.Post("/api/cart/submit", cartHandler.Submit)

		// DELETE /api/cart/{index} - Drop one cart item
		r.Delete("/api/cart/{index}", cartHandler.RemoveItem)

		// DELETE /api/cart - Empty the cart
		r.Delete("/api/cart", cartHandler.ClearCart)
	})
}
