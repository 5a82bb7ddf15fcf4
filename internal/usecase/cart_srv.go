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

type CartService interface {
	GetCart(ctx context.Context, username string) ([]entity.CartItem, error)
	AddItem(ctx context.Context, username string, req *request.AddCartItemRequest) ([]entity.CartItem, error)
	RemoveItem(ctx context.Context, username string, index int) ([]entity.CartItem, error)
	ClearCart(ctx context.Context, username string) error

	// Submit turns every cart item into a pending booking, then empties
	// the cart. Items that fail validation abort the whole submit.
	Submit(ctx context.Context, username string) ([]response.BookingResponse, error)
}

type cartService struct {
	carts    repository.CartRepository
	services repository.ServiceRepository
	bookings BookingService
	log      *zap.Logger
}

func NewCartService(repo *repository.Repository, bookings BookingService, log *zap.Logger) CartService {
	return &cartService{
		carts:    repo.Cart,
		services: repo.Service,
		bookings: bookings,
		log:      log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) GetCart(ctx context.Context, username string) ([]entity.CartItem, error) {
	items, err := s.carts.Get(ctx, username)
	if err != nil {
		s.log.Error("Failed to load cart", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if items == nil {
		items = []entity.CartItem{}
	}
	return items, nil
}

func (s *cartService) AddItem(ctx context.Context, username string, req *request.AddCartItemRequest) ([]entity.CartItem, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	service, err := s.services.FindByServiceID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("add cart item: %w", err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	items, err := s.GetCart(ctx, username)
	if err != nil {
		return nil, err
	}

	items = append(items, entity.CartItem{
		ServiceID:       service.ServiceID,
		ServiceName:     service.Name,
		Duration:        service.Duration,
		Price:           service.Price,
		DiscountedPrice: service.DiscountedPrice,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		Notes:           req.Notes,
		BookingDate:     req.BookingDate,
		StartTime:       req.StartTime,
		Therapist:       req.Therapist,
		Timestamp:       time.Now().UnixMilli(),
	})

	if err := s.carts.Save(ctx, username, items); err != nil {
		s.log.Error("Failed to save cart", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("add cart item: %w", err)
	}

	s.log.Info("Cart item added",
		zap.String("username", username),
		zap.Int("service_id", service.ServiceID),
		zap.Int("items", len(items)),
	)
	return items, nil
}

func (s *cartService) RemoveItem(ctx context.Context, username string, index int) ([]entity.CartItem, error) {
	items, err := s.GetCart(ctx, username)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return nil, fmt.Errorf("validation failed: cart item %d does not exist", index)
	}

	items = append(items[:index], items[index+1:]...)

	if err := s.carts.Save(ctx, username, items); err != nil {
		s.log.Error("Failed to save cart", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("remove cart item: %w", err)
	}
	return items, nil
}

func (s *cartService) ClearCart(ctx context.Context, username string) error {
	if err := s.carts.Clear(ctx, username); err != nil {
		s.log.Error("Failed to clear cart", zap.Error(err), zap.String("username", username))
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func (s *cartService) Submit(ctx context.Context, username string) ([]response.BookingResponse, error) {
	items, err := s.GetCart(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("validation failed: cart is empty")
	}

	created := make([]response.BookingResponse, 0, len(items))
	for _, item := range items {
		booking, err := s.bookings.CreateBooking(ctx, username, &request.CreateBookingRequest{
			ServiceID:     item.ServiceID,
			CustomerName:  item.CustomerName,
			CustomerPhone: item.CustomerPhone,
			CustomerEmail: item.CustomerEmail,
			Notes:         item.Notes,
			BookingDate:   item.BookingDate,
			StartTime:     item.StartTime,
			Therapist:     item.Therapist,
		})
		if err != nil {
			return nil, fmt.Errorf("submit cart item %d: %w", item.ServiceID, err)
		}
		created = append(created, *booking)
	}

	if err := s.carts.Clear(ctx, username); err != nil {
		// Bookings already exist; a stale cart is the lesser problem.
		s.log.Warn("Failed to clear cart after submit", zap.Error(err), zap.String("username", username))
	}

	s.log.Info("Cart submitted",
		zap.String("username", username),
		zap.Int("bookings", len(created)),
	)
	return created, nil
}
