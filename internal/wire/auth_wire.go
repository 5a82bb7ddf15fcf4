package wire

import (
	"luluspa-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/register - Create a customer account
	r.Post("/api/auth/register", authHandler.Register)

	// POST /api/auth/login - Exchange credentials for a token
	r.Post("/api/auth/login", authHandler.Login)
}
