package wire

import (
	"luluspa-booking/internal/adaptor"
	"luluspa-booking/pkg/middleware"
	"luluspa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// GET /api/users/me - Current user's profile
		r.Get("/api/users/me", userHandler.GetProfile)

		// GET /api/users/skincare-staff - Therapists selectable when booking
		r.Get("/api/users/skincare-staff", userHandler.ListSkincareStaff)
	})
}
