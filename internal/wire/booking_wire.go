package wire

import (
	"luluspa-booking/internal/adaptor"
	"luluspa-booking/internal/data/entity"
	"luluspa-booking/pkg/middleware"
	"luluspa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/bookings - Create a pending booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/bookings - Role-scoped booking list
		r.Get("/api/bookings", bookingHandler.ListBookings)

		// DELETE /api/bookings/{id} - Cancel own pending booking
		r.Delete("/api/bookings/{id}", bookingHandler.CancelBooking)
	})

	// ==================== STAFF / ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleStaff), string(entity.RoleAdmin)))

		// PUT /api/bookings/{id}/status - Advance the booking lifecycle
		r.Put("/api/bookings/{id}/status", bookingHandler.UpdateStatus)
	})
}
