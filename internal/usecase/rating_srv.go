package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/dto/request"
	"luluspa-booking/internal/dto/response"
	"luluspa-booking/pkg/utils"
)

type RatingService interface {
	// CreateRating reviews a checked-out booking and moves it to reviewed.
	CreateRating(ctx context.Context, username string, req *request.CreateRatingRequest) (*response.RatingResponse, error)
	ListRatings(ctx context.Context, serviceID int) ([]response.RatingResponse, error)
}

type ratingService struct {
	ratings  repository.RatingRepository
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		ratings:  repo.Rating,
		bookings: repo.Booking,
		log:      log.With(zap.String("service", "rating")),
	}
}

func (s *ratingService) CreateRating(ctx context.Context, username string, req *request.CreateRatingRequest) (*response.RatingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.bookings.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	if booking.Username != username {
		return nil, ErrNotOwner
	}
	if booking.Status == entity.BookingStatusReviewed {
		return nil, ErrAlreadyReviewed
	}
	if booking.Status != entity.BookingStatusCheckedOut {
		return nil, fmt.Errorf("validation failed: only checked-out bookings can be reviewed")
	}

	existing, err := s.ratings.FindByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyReviewed
	}

	rating := &entity.Rating{
		BookingID:      booking.BookingID,
		ServiceID:      booking.ServiceID,
		ServiceName:    booking.ServiceName,
		ServiceRating:  req.ServiceRating,
		ServiceContent: req.ServiceContent,
		Images:         req.Images,
		CreateName:     username,
		Status:         "active",
		CreatedAt:      time.Now(),
	}

	if err := s.ratings.Create(ctx, rating); err != nil {
		s.log.Error("Failed to create rating", zap.Error(err), zap.String("booking_id", req.BookingID))
		return nil, fmt.Errorf("create rating: %w", err)
	}

	if err := s.bookings.UpdateStatus(ctx, booking.BookingID, entity.BookingStatusReviewed); err != nil {
		s.log.Error("Failed to mark booking reviewed",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
		)
		return nil, fmt.Errorf("create rating: %w", err)
	}

	s.log.Info("Rating created",
		zap.String("booking_id", booking.BookingID),
		zap.String("username", username),
		zap.Int("stars", req.ServiceRating),
	)

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func (s *ratingService) ListRatings(ctx context.Context, serviceID int) ([]response.RatingResponse, error) {
	ratings, err := s.ratings.FindAll(ctx, serviceID)
	if err != nil {
		s.log.Error("Failed to list ratings", zap.Error(err), zap.Int("service_id", serviceID))
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return response.RatingsToResponse(ratings), nil
}
