package repository

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"luluspa-booking/pkg/database"
	"luluspa-booking/pkg/utils"
)

type Repository struct {
	User    UserRepository
	Service ServiceRepository
	Booking BookingRepository
	Payment PaymentRepository
	Rating  RatingRepository
	Cart    CartRepository
}

func NewRepository(db *database.DB, rdb *redis.Client, config *utils.Config, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Service: NewServiceRepository(db, log),
		Booking: NewBookingRepository(db, log),
		Payment: NewPaymentRepository(db, log),
		Rating:  NewRatingRepository(db, log),
		Cart:    NewCartRepository(rdb, config.Redis.CartTTL, log),
	}
}
