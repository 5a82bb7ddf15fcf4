package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/dto/request"
	"luluspa-booking/internal/dto/response"
	"luluspa-booking/pkg/utils"
)

type BookingService interface {
	CreateBooking(ctx context.Context, username string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, username, role string) ([]response.BookingResponse, error)
	CancelBooking(ctx context.Context, username, bookingID string) error

	// Staff/admin only (role enforced at the route)
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	services repository.ServiceRepository
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: repo.Booking,
		services: repo.Service,
		log:      log.With(zap.String("service", "booking")),
	}
}

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// validateBookingInput checks the rules in order and reports the first
// violation, the way the booking form always has.
func validateBookingInput(name, phone, email, date, slot string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("validation failed: customer name must not be empty")
	}
	if !phonePattern.MatchString(strings.TrimSpace(phone)) {
		return fmt.Errorf("validation failed: phone number must be exactly 10 digits")
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("validation failed: email must be a valid address")
	}
	if date == "" {
		return fmt.Errorf("validation failed: booking date is required")
	}
	if slot == "" {
		return fmt.Errorf("validation failed: time slot is required")
	}
	return nil
}

func (s *bookingService) CreateBooking(ctx context.Context, username string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validateBookingInput(req.CustomerName, req.CustomerPhone, req.CustomerEmail, req.BookingDate, req.StartTime); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err), zap.String("username", username))
		return nil, err
	}

	// Resolve the service being booked
	service, err := s.services.FindByServiceID(ctx, req.ServiceID)
	if err != nil {
		s.log.Error("Failed to load service", zap.Error(err), zap.Int("service_id", req.ServiceID))
		return nil, fmt.Errorf("load service %d: %w", req.ServiceID, err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	price := service.Price
	if service.DiscountedPrice != nil {
		price = *service.DiscountedPrice
	}

	endTime, err := addDuration(req.StartTime, service.Duration)
	if err != nil {
		return nil, fmt.Errorf("validation failed: time slot must be in HH:MM format")
	}

	now := time.Now()
	booking := &entity.Booking{
		BookingID:       utils.GenerateBookingID(),
		Username:        username,
		ServiceID:       service.ServiceID,
		ServiceName:     service.Name,
		Duration:        service.Duration,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerPhone:   strings.TrimSpace(req.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		Notes:           req.Notes,
		BookingDate:     req.BookingDate,
		StartTime:       req.StartTime,
		EndTime:         endTime,
		SkincareStaff:   req.Therapist,
		Status:          entity.BookingStatusPending,
		TotalPrice:      price,
		OriginalPrice:   service.Price,
		DiscountedPrice: service.DiscountedPrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("username", username),
			zap.Int("service_id", req.ServiceID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID),
		zap.String("username", username),
		zap.String("service", service.Name),
		zap.Float64("total_price", price),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, username, role string) ([]response.BookingResponse, error) {
	var (
		bookings []*entity.Booking
		err      error
	)

	switch entity.UserRole(role) {
	case entity.RoleAdmin:
		bookings, err = s.bookings.FindAll(ctx)
	case entity.RoleStaff:
		bookings, err = s.bookings.FindByStaff(ctx, username)
	default:
		bookings, err = s.bookings.FindByUsername(ctx, username)
	}

	if err != nil {
		s.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.String("username", username),
			zap.String("role", role),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, username, bookingID string) error {
	booking, err := s.bookings.FindByBookingID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	if booking.Username != username {
		s.log.Warn("Cancel rejected: caller is not the owner",
			zap.String("booking_id", bookingID),
			zap.String("owner", booking.Username),
			zap.String("caller", username),
		)
		return ErrNotOwner
	}

	if booking.Status != entity.BookingStatusPending {
		return ErrNotCancellable
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("username", username),
	)

	return nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	booking, err := s.bookings.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("update booking %s status: %w", bookingID, err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	newStatus := entity.BookingStatus(req.Status)
	if !entity.CanTransition(booking.Status, newStatus) {
		s.log.Warn("Status transition rejected",
			zap.String("booking_id", bookingID),
			zap.String("from", string(booking.Status)),
			zap.String("to", string(newStatus)),
		)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if req.SkincareStaff != "" && req.SkincareStaff != booking.SkincareStaff {
		if err := s.bookings.AssignStaff(ctx, bookingID, req.SkincareStaff); err != nil {
			return nil, fmt.Errorf("update booking %s status: %w", bookingID, err)
		}
		booking.SkincareStaff = req.SkincareStaff
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	booking.Status = newStatus
	booking.UpdatedAt = time.Now()

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// addDuration computes the end of an HH:MM slot after duration minutes.
func addDuration(slot string, minutes int) (string, error) {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return "", err
	}
	return t.Add(time.Duration(minutes) * time.Minute).Format("15:04"), nil
}
