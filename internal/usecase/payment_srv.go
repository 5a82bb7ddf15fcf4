package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/dto/request"
	"luluspa-booking/internal/dto/response"
)

type PaymentService interface {
	// HandleWebhook settles the payment the provider reports on: paid
	// bookings move to checked-out and the checkout loop is woken.
	// Replays of an already settled order are acknowledged without effect.
	HandleWebhook(ctx context.Context, req *request.PaymentWebhookRequest) error

	// CreatePaymentLink serves the legacy web client. It delegates to the
	// checkout orchestrator and reshapes the result into the provider
	// envelope the client expects.
	CreatePaymentLink(ctx context.Context, username string) (*response.PaymentLinkResponse, error)
}

type paymentService struct {
	payments repository.PaymentRepository
	bookings repository.BookingRepository
	checkout CheckoutService
	log      *zap.Logger
}

func NewPaymentService(repo *repository.Repository, checkout CheckoutService, log *zap.Logger) PaymentService {
	return &paymentService{
		payments: repo.Payment,
		bookings: repo.Booking,
		checkout: checkout,
		log:      log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) HandleWebhook(ctx context.Context, req *request.PaymentWebhookRequest) error {
	payment, err := s.payments.FindByOrderCode(ctx, req.OrderCode)
	if err != nil {
		s.log.Error("Failed to load payment", zap.Error(err), zap.Int64("order_code", req.OrderCode))
		return fmt.Errorf("handle webhook: %w", err)
	}
	if payment == nil {
		s.log.Warn("Webhook for unknown order", zap.Int64("order_code", req.OrderCode))
		return ErrPaymentNotFound
	}

	if payment.Status != entity.PaymentStatusPending {
		// Replay of an order already settled, acknowledge and move on.
		s.log.Info("Webhook replay ignored",
			zap.Int64("order_code", req.OrderCode),
			zap.String("status", string(payment.Status)),
		)
		return nil
	}

	if !req.Success {
		if err := s.payments.UpdateStatus(ctx, req.OrderCode, entity.PaymentStatusCancelled); err != nil {
			return fmt.Errorf("handle webhook: %w", err)
		}
		s.log.Info("Payment cancelled by provider",
			zap.Int64("order_code", req.OrderCode),
			zap.String("code", req.Code),
			zap.String("desc", req.Desc),
		)
		return nil
	}

	for _, bookingID := range payment.BookingIDs {
		booking, err := s.bookings.FindByBookingID(ctx, bookingID)
		if err != nil {
			s.log.Error("Failed to load charged booking",
				zap.Error(err),
				zap.String("booking_id", bookingID),
				zap.Int64("order_code", req.OrderCode),
			)
			return fmt.Errorf("handle webhook: %w", err)
		}
		if booking == nil || booking.Status != entity.BookingStatusCompleted {
			// A booking can change hands between link creation and the
			// callback; skip anything no longer payable.
			continue
		}
		if err := s.bookings.UpdateStatus(ctx, bookingID, entity.BookingStatusCheckedOut); err != nil {
			return fmt.Errorf("handle webhook: %w", err)
		}
	}

	if err := s.payments.UpdateStatus(ctx, req.OrderCode, entity.PaymentStatusPaid); err != nil {
		return fmt.Errorf("handle webhook: %w", err)
	}

	s.checkout.NotifyPaid(payment.Username)

	s.log.Info("Payment settled",
		zap.Int64("order_code", req.OrderCode),
		zap.String("username", payment.Username),
		zap.Float64("amount", payment.Amount),
	)
	return nil
}

func (s *paymentService) CreatePaymentLink(ctx context.Context, username string) (*response.PaymentLinkResponse, error) {
	checkout, err := s.checkout.StartCheckout(ctx, username)
	if err != nil {
		return nil, err
	}

	return &response.PaymentLinkResponse{
		Error:   0,
		Message: "success",
		Data: &response.PaymentLinkData{
			CheckoutURL: checkout.CheckoutURL,
			QRCode:      checkout.QRCode,
		},
	}, nil
}
