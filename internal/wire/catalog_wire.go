package wire

import (
	"luluspa-booking/internal/adaptor"
	"luluspa-booking/internal/data/entity"
	"luluspa-booking/pkg/middleware"
	"luluspa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler, config *utils.Config, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/services - Browse the treatment catalog
	r.Get("/api/services", catalogHandler.ListServices)

	// GET /api/services/{id} - Treatment details
	r.Get("/api/services/{id}", catalogHandler.GetService)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		// POST /api/services - Add a treatment (admin)
		r.Post("/api/services", catalogHandler.CreateService)

		// PUT /api/services/{id} - Update a treatment (admin)
		r.Put("/api/services/{id}", catalogHandler.UpdateService)

		// DELETE /api/services/{id} - Remove a treatment (admin)
		r.Delete("/api/services/{id}", catalogHandler.DeleteService)
	})
}
