package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/pkg/utils"
)

func newCheckoutServiceForTest(bookings *fakeBookingRepo, payments *fakePaymentRepo, provider *fakeLinkCreator) CheckoutService {
	repo := &repository.Repository{Booking: bookings, Payment: payments}
	config := &utils.Config{
		PayOS: utils.PayOSConfig{
			ReturnURL: "https://spa.example/return",
			CancelURL: "https://spa.example/cancel",
		},
		Checkout: utils.CheckoutConfig{
			PollInterval: 10 * time.Millisecond,
			PollCeiling:  200 * time.Millisecond,
		},
	}
	return NewCheckoutService(repo, provider, config, zap.NewNop())
}

func completedBooking(id, serviceName string, price float64) *entity.Booking {
	return &entity.Booking{
		BookingID:   id,
		Username:    "linh",
		ServiceName: serviceName,
		Status:      entity.BookingStatusCompleted,
		TotalPrice:  price,
	}
}

func waitForState(t *testing.T, svc CheckoutService, username, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if svc.Status(context.Background(), username).State == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("state = %q, want %q", svc.Status(context.Background(), username).State, want)
}

func TestStartCheckout(t *testing.T) {
	bookings := newFakeBookingRepo(
		completedBooking("BOOK-1", "Deep Cleansing Facial", 500000),
		completedBooking("BOOK-2", "Hot Stone Massage", 300000),
	)
	provider := &fakeLinkCreator{}
	svc := newCheckoutServiceForTest(bookings, newFakePaymentRepo(), provider)

	resp, err := svc.StartCheckout(context.Background(), "linh")
	if err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}
	defer svc.CloseAttempt(context.Background(), "linh")

	if resp.State != CheckoutStateAwaitingPayment {
		t.Errorf("state = %q, want awaiting-payment", resp.State)
	}
	if resp.Amount != 800000 {
		t.Errorf("amount = %v, want 800000", resp.Amount)
	}
	if resp.CheckoutURL == "" || resp.QRCode == "" {
		t.Error("checkout link or QR code missing")
	}

	req := provider.lastRequest()
	if req.Amount != 800000 {
		t.Errorf("provider amount = %d, want 800000", req.Amount)
	}
	if len(req.BookingIDs) != 2 {
		t.Errorf("provider booking ids = %v, want two", req.BookingIDs)
	}
	if req.OrderCode <= 0 || req.OrderCode > 999999 {
		t.Errorf("order code = %d, want at most six digits", req.OrderCode)
	}
}

func TestStartCheckoutPersistsPayment(t *testing.T) {
	bookings := newFakeBookingRepo(completedBooking("BOOK-1", "Facial", 500000))
	payments := newFakePaymentRepo()
	svc := newCheckoutServiceForTest(bookings, payments, &fakeLinkCreator{})

	resp, err := svc.StartCheckout(context.Background(), "linh")
	if err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}
	defer svc.CloseAttempt(context.Background(), "linh")

	payment, _ := payments.FindByOrderCode(context.Background(), resp.OrderCode)
	if payment == nil {
		t.Fatal("payment not persisted")
	}
	if payment.Status != entity.PaymentStatusPending {
		t.Errorf("payment status = %q, want pending", payment.Status)
	}
	if payment.Username != "linh" {
		t.Errorf("payment username = %q, want linh", payment.Username)
	}
}

func TestStartCheckoutOnlyChargesCompleted(t *testing.T) {
	bookings := newFakeBookingRepo(
		completedBooking("BOOK-1", "Facial", 500000),
		&entity.Booking{BookingID: "BOOK-2", Username: "linh", Status: entity.BookingStatusPending, TotalPrice: 999999},
		&entity.Booking{BookingID: "BOOK-3", Username: "linh", Status: entity.BookingStatusCheckedIn, TotalPrice: 999999},
	)
	provider := &fakeLinkCreator{}
	svc := newCheckoutServiceForTest(bookings, newFakePaymentRepo(), provider)

	resp, err := svc.StartCheckout(context.Background(), "linh")
	if err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}
	defer svc.CloseAttempt(context.Background(), "linh")

	if resp.Amount != 500000 {
		t.Errorf("amount = %v, want only the completed booking charged", resp.Amount)
	}
	if ids := provider.lastRequest().BookingIDs; len(ids) != 1 || ids[0] != "BOOK-1" {
		t.Errorf("provider booking ids = %v, want [BOOK-1]", ids)
	}
}

func TestStartCheckoutNothingToPay(t *testing.T) {
	bookings := newFakeBookingRepo(
		&entity.Booking{BookingID: "BOOK-1", Username: "linh", Status: entity.BookingStatusPending, TotalPrice: 100},
	)
	provider := &fakeLinkCreator{}
	svc := newCheckoutServiceForTest(bookings, newFakePaymentRepo(), provider)

	_, err := svc.StartCheckout(context.Background(), "linh")
	if !errors.Is(err, ErrNothingToPay) {
		t.Fatalf("err = %v, want ErrNothingToPay", err)
	}
	if provider.calls() != 0 {
		t.Errorf("provider called %d times for an empty charge", provider.calls())
	}

	// The failed attempt does not linger
	if state := svc.Status(context.Background(), "linh").State; state != CheckoutStateIdle {
		t.Errorf("state = %q, want idle", state)
	}
}

func TestStartCheckoutSingleFlight(t *testing.T) {
	bookings := newFakeBookingRepo(completedBooking("BOOK-1", "Facial", 500000))
	provider := &fakeLinkCreator{}
	svc := newCheckoutServiceForTest(bookings, newFakePaymentRepo(), provider)

	first, err := svc.StartCheckout(context.Background(), "linh")
	if err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}
	defer svc.CloseAttempt(context.Background(), "linh")

	second, err := svc.StartCheckout(context.Background(), "linh")
	if err != nil {
		t.Fatalf("second StartCheckout: %v", err)
	}

	if provider.calls() != 1 {
		t.Fatalf("provider called %d times, want 1", provider.calls())
	}
	if second.OrderCode != first.OrderCode {
		t.Errorf("second attempt issued a new order code %d", second.OrderCode)
	}
	if second.CheckoutURL != first.CheckoutURL {
		t.Errorf("second attempt returned a different link")
	}
}

func TestStartCheckoutProviderFailure(t *testing.T) {
	bookings := newFakeBookingRepo(completedBooking("BOOK-1", "Facial", 500000))
	provider := &fakeLinkCreator{err: errors.New("payos error: invalid signature")}
	svc := newCheckoutServiceForTest(bookings, newFakePaymentRepo(), provider)

	_, err := svc.StartCheckout(context.Background(), "linh")
	if !errors.Is(err, ErrCheckoutFailed) {
		t.Fatalf("err = %v, want ErrCheckoutFailed", err)
	}
	if state := svc.Status(context.Background(), "linh").State; state != CheckoutStateFailed {
		t.Errorf("state = %q after provider error, want failed", state)
	}

	// A failed attempt does not block a retry
	provider.err = nil
	if _, err := svc.StartCheckout(context.Background(), "linh"); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	svc.CloseAttempt(context.Background(), "linh")
}

func TestCheckoutOrderName(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*entity.Booking
		want     string
	}{
		{
			name:     "named first booking",
			bookings: []*entity.Booking{completedBooking("BOOK-1", "Deep Cleansing Facial", 100)},
			want:     "Deep Cleansing Facial",
		},
		{
			name:     "unnamed first booking",
			bookings: []*entity.Booking{completedBooking("BOOK-1", "", 100)},
			want:     "Multiple Services",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeLinkCreator{}
			svc := newCheckoutServiceForTest(newFakeBookingRepo(tt.bookings...), newFakePaymentRepo(), provider)

			if _, err := svc.StartCheckout(context.Background(), "linh"); err != nil {
				t.Fatalf("StartCheckout: %v", err)
			}
			defer svc.CloseAttempt(context.Background(), "linh")

			if got := provider.lastRequest().OrderName; got != tt.want {
				t.Errorf("order name = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCheckoutDescriptionTruncated(t *testing.T) {
	long := completedBooking("BOOK-1", "Ultimate Rejuvenating Gold Therapy", 100)
	provider := &fakeLinkCreator{}
	svc := newCheckoutServiceForTest(newFakeBookingRepo(long), newFakePaymentRepo(), provider)

	if _, err := svc.StartCheckout(context.Background(), "linh"); err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}
	defer svc.CloseAttempt(context.Background(), "linh")

	desc := provider.lastRequest().Description
	if len([]rune(desc)) > 25 {
		t.Errorf("description %q longer than 25 characters", desc)
	}
	if desc != "Service Ultimate Rejuvena" {
		t.Errorf("description = %q", desc)
	}
}

func TestCheckoutReconciledByWebhookSignal(t *testing.T) {
	bookings := newFakeBookingRepo(completedBooking("BOOK-1", "Facial", 500000))
	svc := newCheckoutServiceForTest(bookings, newFakePaymentRepo(), &fakeLinkCreator{})

	if _, err := svc.StartCheckout(context.Background(), "linh"); err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}

	// The webhook moves the booking past completed, then signals
	bookings.UpdateStatus(context.Background(), "BOOK-1", entity.BookingStatusCheckedOut)
	svc.NotifyPaid("linh")

	waitForState(t, svc, "linh", CheckoutStateReconciled)
	svc.CloseAttempt(context.Background(), "linh")
}

func TestCheckoutReconciledByPolling(t *testing.T) {
	bookings := newFakeBookingRepo(completedBooking("BOOK-1", "Facial", 500000))
	svc := newCheckoutServiceForTest(bookings, newFakePaymentRepo(), &fakeLinkCreator{})

	if _, err := svc.StartCheckout(context.Background(), "linh"); err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}

	// No webhook arrives, but the store shows the booking settled
	bookings.UpdateStatus(context.Background(), "BOOK-1", entity.BookingStatusCheckedOut)

	waitForState(t, svc, "linh", CheckoutStateReconciled)
	svc.CloseAttempt(context.Background(), "linh")
}

func TestCheckoutTimesOut(t *testing.T) {
	bookings := newFakeBookingRepo(completedBooking("BOOK-1", "Facial", 500000))
	svc := newCheckoutServiceForTest(bookings, newFakePaymentRepo(), &fakeLinkCreator{})

	if _, err := svc.StartCheckout(context.Background(), "linh"); err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}

	// The booking never settles
	waitForState(t, svc, "linh", CheckoutStateTimedOut)

	status := svc.Status(context.Background(), "linh")
	if status.Warning == "" {
		t.Error("timed-out attempt carries no warning")
	}
	svc.CloseAttempt(context.Background(), "linh")
}

func TestCloseAttempt(t *testing.T) {
	bookings := newFakeBookingRepo(completedBooking("BOOK-1", "Facial", 500000))
	svc := newCheckoutServiceForTest(bookings, newFakePaymentRepo(), &fakeLinkCreator{})

	if _, err := svc.StartCheckout(context.Background(), "linh"); err != nil {
		t.Fatalf("StartCheckout: %v", err)
	}

	if err := svc.CloseAttempt(context.Background(), "linh"); err != nil {
		t.Fatalf("CloseAttempt: %v", err)
	}
	if state := svc.Status(context.Background(), "linh").State; state != CheckoutStateIdle {
		t.Errorf("state = %q after close, want idle", state)
	}
	if err := svc.CloseAttempt(context.Background(), "linh"); !errors.Is(err, ErrNoAttempt) {
		t.Errorf("second close: err = %v, want ErrNoAttempt", err)
	}
}
