package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"luluspa-booking/internal/usecase"
	"luluspa-booking/pkg/utils"

	"go.uber.org/zap"
)

type CheckoutHandler struct {
	service usecase.CheckoutService
	log     *zap.Logger
}

func NewCheckoutHandler(service usecase.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		log:     log.With(zap.String("handler", "checkout")),
	}
}

// StartCheckout handles POST /api/checkout (protected)
func (h *CheckoutHandler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	checkout, err := h.service.StartCheckout(r.Context(), username)
	if err != nil {
		h.handleServiceError(w, err, "start checkout")
		return
	}

	utils.ResponseSuccess(w, "success", checkout)
}

// Status handles GET /api/checkout (protected)
func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	utils.ResponseSuccess(w, "success", h.service.Status(r.Context(), username))
}

// CloseAttempt handles DELETE /api/checkout (protected)
func (h *CheckoutHandler) CloseAttempt(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.CloseAttempt(r.Context(), username); err != nil {
		h.handleServiceError(w, err, "close checkout")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *CheckoutHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNothingToPay):
		h.log.Warn(operation+" failed - nothing to pay", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNoAttempt):
		h.log.Warn(operation+" failed - no attempt", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrCheckoutFailed):
		h.log.Error(operation+" failed - provider error", zap.Error(err))
		utils.ResponseBadGateway(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
