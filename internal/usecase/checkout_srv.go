package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/dto/response"
	"luluspa-booking/internal/payos"
	"luluspa-booking/pkg/utils"
)

// Checkout states as reported to the client.
const (
	CheckoutStateIdle            = "idle"
	CheckoutStateCreatingLink    = "creating-link"
	CheckoutStateAwaitingPayment = "awaiting-payment"
	CheckoutStateReconciled      = "reconciled"
	CheckoutStateFailed          = "failed"
	CheckoutStateTimedOut        = "timed-out"
)

const (
	multipleServicesName = "Multiple Services"
	descriptionMaxRunes  = 25
	timeoutWarning       = "Payment status not updated. Please check manually."
)

type CheckoutService interface {
	// StartCheckout creates a payment link covering every completed booking
	// of the user. While a link is already being created or awaited, the
	// existing attempt is returned instead of contacting the provider again.
	StartCheckout(ctx context.Context, username string) (*response.CheckoutResponse, error)

	// Status reports the user's current attempt, or the idle state.
	Status(ctx context.Context, username string) *response.CheckoutResponse

	// CloseAttempt stops reconciliation and discards the user's attempt.
	CloseAttempt(ctx context.Context, username string) error

	// NotifyPaid wakes the reconciliation loop after a webhook settles the
	// user's payment. Safe to call when no attempt is in flight.
	NotifyPaid(username string)
}

type checkoutService struct {
	bookings repository.BookingRepository
	payments repository.PaymentRepository
	provider payos.LinkCreator
	config   utils.CheckoutConfig
	payosCfg utils.PayOSConfig
	log      *zap.Logger

	mu       sync.Mutex
	attempts map[string]*attempt
}

// attempt is one user's in-flight checkout. Fields are guarded by the
// service mutex; the paid channel wakes the reconcile goroutine.
type attempt struct {
	state       string
	orderCode   int64
	amount      float64
	bookingIDs  []string
	checkoutURL string
	qrCode      string
	warning     string
	paid        chan struct{}
	cancel      context.CancelFunc
}

func NewCheckoutService(repo *repository.Repository, provider payos.LinkCreator, config *utils.Config, log *zap.Logger) CheckoutService {
	return &checkoutService{
		bookings: repo.Booking,
		payments: repo.Payment,
		provider: provider,
		config:   config.Checkout,
		payosCfg: config.PayOS,
		log:      log.With(zap.String("service", "checkout")),
		attempts: make(map[string]*attempt),
	}
}

func (s *checkoutService) StartCheckout(ctx context.Context, username string) (*response.CheckoutResponse, error) {
	s.mu.Lock()
	if existing, ok := s.attempts[username]; ok {
		switch existing.state {
		case CheckoutStateCreatingLink, CheckoutStateAwaitingPayment:
			// A link already exists or is being made; never issue a second
			// provider request for the same charge.
			resp := existing.toResponse()
			s.mu.Unlock()
			s.log.Info("Checkout already in flight",
				zap.String("username", username),
				zap.String("state", resp.State),
			)
			return resp, nil
		}
	}
	a := &attempt{
		state: CheckoutStateCreatingLink,
		paid:  make(chan struct{}, 1),
	}
	s.attempts[username] = a
	s.mu.Unlock()

	completed, err := s.bookings.FindByUsernameAndStatus(ctx, username, entity.BookingStatusCompleted)
	if err != nil {
		s.dropAttempt(username)
		s.log.Error("Failed to load completed bookings", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("start checkout: %w", err)
	}
	if len(completed) == 0 {
		s.dropAttempt(username)
		return nil, ErrNothingToPay
	}

	var total float64
	bookingIDs := make([]string, 0, len(completed))
	for _, b := range completed {
		total += b.TotalPrice
		bookingIDs = append(bookingIDs, b.BookingID)
	}
	if total <= 0 {
		s.dropAttempt(username)
		return nil, fmt.Errorf("validation failed: total amount must be greater than 0")
	}

	orderName := completed[0].ServiceName
	if orderName == "" {
		orderName = multipleServicesName
	}

	orderCode := utils.GenerateOrderCode()
	link, err := s.provider.CreatePaymentLink(ctx, payos.CreateLinkRequest{
		OrderCode:   orderCode,
		Amount:      int64(math.Round(total)),
		OrderName:   orderName,
		Description: utils.TruncateRunes("Service "+orderName, descriptionMaxRunes),
		ReturnURL:   s.payosCfg.ReturnURL,
		CancelURL:   s.payosCfg.CancelURL,
		BookingIDs:  bookingIDs,
	})
	if err != nil {
		s.failAttempt(username)
		// Raw provider error stays in the log; the client only learns the
		// link could not be made.
		s.log.Error("Payment link creation failed",
			zap.Error(err),
			zap.String("username", username),
			zap.Int64("order_code", orderCode),
			zap.Float64("amount", total),
		)
		return nil, ErrCheckoutFailed
	}

	payment := &entity.Payment{
		OrderCode:   orderCode,
		Username:    username,
		Amount:      total,
		BookingIDs:  bookingIDs,
		Status:      entity.PaymentStatusPending,
		CheckoutURL: link.CheckoutURL,
		QRCode:      link.QRCode,
		CreatedAt:   time.Now(),
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		s.failAttempt(username)
		s.log.Error("Failed to persist payment", zap.Error(err), zap.Int64("order_code", orderCode))
		return nil, fmt.Errorf("start checkout: %w", err)
	}

	pollCtx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	a.state = CheckoutStateAwaitingPayment
	a.orderCode = orderCode
	a.amount = total
	a.bookingIDs = bookingIDs
	a.checkoutURL = link.CheckoutURL
	a.qrCode = link.QRCode
	a.cancel = cancel
	resp := a.toResponse()
	s.mu.Unlock()

	go s.reconcile(pollCtx, username, a.paid)

	s.log.Info("Checkout started",
		zap.String("username", username),
		zap.Int64("order_code", orderCode),
		zap.Float64("amount", total),
		zap.Int("bookings", len(bookingIDs)),
	)

	return resp, nil
}

// reconcile watches for the payment to settle: the webhook signals through
// paid, and a poll of the booking store covers missed webhooks. After the
// ceiling the attempt is marked timed out with a manual-check warning.
func (s *checkoutService) reconcile(ctx context.Context, username string, paid <-chan struct{}) {
	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	deadline := time.NewTimer(s.config.PollCeiling)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-paid:
			s.settle(ctx, username)
			return
		case <-deadline.C:
			s.timeout(username)
			return
		case <-ticker.C:
			remaining, err := s.bookings.FindByUsernameAndStatus(ctx, username, entity.BookingStatusCompleted)
			if err != nil {
				s.log.Warn("Reconciliation poll failed", zap.Error(err), zap.String("username", username))
				continue
			}
			if len(remaining) == 0 {
				s.settle(ctx, username)
				return
			}
		}
	}
}

// settle marks the attempt reconciled once every charged booking has moved
// past completed.
func (s *checkoutService) settle(ctx context.Context, username string) {
	s.mu.Lock()
	a, ok := s.attempts[username]
	if !ok || a.state != CheckoutStateAwaitingPayment {
		s.mu.Unlock()
		return
	}
	a.state = CheckoutStateReconciled
	orderCode := a.orderCode
	s.mu.Unlock()

	s.log.Info("Checkout reconciled",
		zap.String("username", username),
		zap.Int64("order_code", orderCode),
	)
}

func (s *checkoutService) timeout(username string) {
	s.mu.Lock()
	a, ok := s.attempts[username]
	if !ok || a.state != CheckoutStateAwaitingPayment {
		s.mu.Unlock()
		return
	}
	a.state = CheckoutStateTimedOut
	a.warning = timeoutWarning
	orderCode := a.orderCode
	s.mu.Unlock()

	s.log.Warn("Checkout reconciliation timed out",
		zap.String("username", username),
		zap.Int64("order_code", orderCode),
	)
}

func (s *checkoutService) Status(ctx context.Context, username string) *response.CheckoutResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.attempts[username]
	if !ok {
		return &response.CheckoutResponse{State: CheckoutStateIdle}
	}
	return a.toResponse()
}

func (s *checkoutService) CloseAttempt(ctx context.Context, username string) error {
	s.mu.Lock()
	a, ok := s.attempts[username]
	if ok {
		delete(s.attempts, username)
	}
	s.mu.Unlock()

	if !ok {
		return ErrNoAttempt
	}
	if a.cancel != nil {
		a.cancel()
	}

	s.log.Info("Checkout attempt closed",
		zap.String("username", username),
		zap.Int64("order_code", a.orderCode),
		zap.String("state", a.state),
	)
	return nil
}

func (s *checkoutService) NotifyPaid(username string) {
	s.mu.Lock()
	a, ok := s.attempts[username]
	s.mu.Unlock()

	if !ok {
		return
	}
	select {
	case a.paid <- struct{}{}:
	default:
	}
}

// dropAttempt removes an attempt that never produced a link.
func (s *checkoutService) dropAttempt(username string) {
	s.mu.Lock()
	delete(s.attempts, username)
	s.mu.Unlock()
}

// failAttempt leaves a failed attempt visible to status queries. It does
// not block the next StartCheckout.
func (s *checkoutService) failAttempt(username string) {
	s.mu.Lock()
	if a, ok := s.attempts[username]; ok {
		a.state = CheckoutStateFailed
	}
	s.mu.Unlock()
}

// toResponse is called with the service mutex held.
func (a *attempt) toResponse() *response.CheckoutResponse {
	return &response.CheckoutResponse{
		State:       a.state,
		OrderCode:   a.orderCode,
		Amount:      a.amount,
		CheckoutURL: a.checkoutURL,
		QRCode:      a.qrCode,
		Warning:     a.warning,
	}
}
