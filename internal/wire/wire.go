package wire

import (
	"net/http"

	"luluspa-booking/internal/adaptor"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/payos"
	"luluspa-booking/internal/usecase"
	"luluspa-booking/pkg/middleware"
	"luluspa-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, provider payos.LinkCreator, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, provider, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins))

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, config, logger)
	wireCatalog(r, handler.Catalog, config, logger)
	wireCart(r, handler.Cart, config, logger)
	wireBooking(r, handler.Booking, config, logger)
	wireCheckout(r, handler.Checkout, config, logger)
	wirePayment(r, handler.Payment, config, logger)
	wireRating(r, handler.Rating, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
