package wire

import (
	"luluspa-booking/internal/adaptor"
	"luluspa-booking/pkg/middleware"
	"luluspa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/payments/webhook - Provider callback, no auth header
	r.Post("/api/payments/webhook", paymentHandler.Webhook)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))

		// POST /api/payments/create-payment-link - Legacy web client entry
		r.Post("/api/payments/create-payment-link", paymentHandler.CreatePaymentLink)
	})
}
