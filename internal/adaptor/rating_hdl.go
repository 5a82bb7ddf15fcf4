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

	"go.uber.org/zap"
)

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// CreateRating handles POST /api/ratings (protected)
func (h *RatingHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	rating, err := h.service.CreateRating(r.Context(), username, &req)
	if err != nil {
		h.handleServiceError(w, err, "create rating")
		return
	}

	utils.ResponseCreated(w, "success", rating)
}

// ListRatings handles GET /api/ratings (public). An optional service_id
// query filters by service.
func (h *RatingHandler) ListRatings(w http.ResponseWriter, r *http.Request) {
	serviceID := 0
	if raw := r.URL.Query().Get("service_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid service_id", nil)
			return
		}
		serviceID = parsed
	}

	ratings, err := h.service.ListRatings(r.Context(), serviceID)
	if err != nil {
		h.handleServiceError(w, err, "list ratings")
		return
	}

	utils.ResponseSuccess(w, "success", ratings)
}

func (h *RatingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrNotOwner):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrAlreadyReviewed):
		h.log.Warn(operation+" failed - already reviewed", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
