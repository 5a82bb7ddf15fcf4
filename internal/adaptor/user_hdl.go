package adaptor

import (
	"errors"
	"net/http"

	"luluspa-booking/internal/usecase"
	"luluspa-booking/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// ListSkincareStaff handles GET /api/users/skincare-staff (protected)
func (h *UserHandler) ListSkincareStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.service.ListSkincareStaff(r.Context())
	if err != nil {
		h.log.Error("Failed to list skincare staff", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", staff)
}

// GetProfile handles GET /api/users/me (protected)
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			utils.ResponseNotFound(w, err.Error())
			return
		}
		h.log.Error("Failed to get profile", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}
