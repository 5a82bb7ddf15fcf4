package usecase

import (
	"go.uber.org/zap"

	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/payos"
	"luluspa-booking/pkg/utils"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Catalog  CatalogService
	Cart     CartService
	Booking  BookingService
	Checkout CheckoutService
	Payment  PaymentService
	Rating   RatingService
}

func NewService(repo *repository.Repository, provider payos.LinkCreator, config *utils.Config, log *zap.Logger) *Service {
	booking := NewBookingService(repo, log)
	checkout := NewCheckoutService(repo, provider, config, log)

	return &Service{
		Auth:     NewAuthService(repo, config.JWT, log),
		User:     NewUserService(repo, log),
		Catalog:  NewCatalogService(repo, log),
		Cart:     NewCartService(repo, booking, log),
		Booking:  booking,
		Checkout: checkout,
		Payment:  NewPaymentService(repo, checkout, log),
		Rating:   NewRatingService(repo, log),
	}
}
