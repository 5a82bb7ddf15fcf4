package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"luluspa-booking/internal/dto/request"
	"luluspa-booking/internal/dto/response"
	"luluspa-booking/internal/usecase"
	"luluspa-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Webhook handles POST /api/payments/webhook (public, called by the
// provider). The provider retries on non-2xx, so anything already
// settled still answers 200.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentWebhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.HandleWebhook(r.Context(), &req); err != nil {
		if errors.Is(err, usecase.ErrPaymentNotFound) {
			h.log.Warn("Webhook for unknown order", zap.Int64("order_code", req.OrderCode))
			utils.ResponseNotFound(w, err.Error())
			return
		}
		h.log.Error("Failed to handle webhook", zap.Error(err), zap.Int64("order_code", req.OrderCode))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreatePaymentLink handles POST /api/payments/create-payment-link
// (protected). The legacy web client reads the provider envelope shape
// rather than the standard response wrapper.
func (h *PaymentHandler) CreatePaymentLink(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	// The posted body is advisory; the amount and booking set come from
	// the store. Decode errors are tolerated for the same reason.
	var req request.CreatePaymentLinkRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	link, err := h.service.CreatePaymentLink(r.Context(), username)
	if err != nil {
		code := http.StatusBadGateway
		if errors.Is(err, usecase.ErrNothingToPay) {
			code = http.StatusBadRequest
		}
		h.log.Warn("Failed to create payment link", zap.Error(err), zap.String("username", username))
		writeEnvelope(w, code, &response.PaymentLinkResponse{
			Error:   1,
			Message: err.Error(),
		})
		return
	}

	writeEnvelope(w, http.StatusOK, link)
}

func writeEnvelope(w http.ResponseWriter, code int, envelope *response.PaymentLinkResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(envelope)
}
