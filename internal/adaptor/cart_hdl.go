package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"luluspa-booking/internal/dto/request"
	"luluspa-booking/internal/usecase"
	"luluspa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// GetCart handles GET /api/cart (protected)
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	items, err := h.service.GetCart(r.Context(), username)
	if err != nil {
		h.handleServiceError(w, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// AddItem handles POST /api/cart (protected)
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	items, err := h.service.AddItem(r.Context(), username, &req)
	if err != nil {
		h.handleServiceError(w, err, "add cart item")
		return
	}

	utils.ResponseCreated(w, "success", items)
}

// RemoveItem handles DELETE /api/cart/{index} (protected)
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid cart index", nil)
		return
	}

	items, err := h.service.RemoveItem(r.Context(), username, index)
	if err != nil {
		h.handleServiceError(w, err, "remove cart item")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// ClearCart handles DELETE /api/cart (protected)
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.ClearCart(r.Context(), username); err != nil {
		h.handleServiceError(w, err, "clear cart")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// Submit handles POST /api/cart/submit (protected)
func (h *CartHandler) Submit(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.service.Submit(r.Context(), username)
	if err != nil {
		h.handleServiceError(w, err, "submit cart")
		return
	}

	utils.ResponseCreated(w, "success", bookings)
}

func (h *CartHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrServiceNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
