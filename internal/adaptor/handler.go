package adaptor

import (
	"luluspa-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Catalog  *CatalogHandler
	Cart     *CartHandler
	Booking  *BookingHandler
	Checkout *CheckoutHandler
	Payment  *PaymentHandler
	Rating   *RatingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Cart:     NewCartHandler(service.Cart, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Checkout: NewCheckoutHandler(service.Checkout, log),
		Payment:  NewPaymentHandler(service.Payment, log),
		Rating:   NewRatingHandler(service.Rating, log),
	}
}
