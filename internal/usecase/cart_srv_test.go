package usecase

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/dto/request"
)

func newCartServiceForTest(carts *fakeCartRepo, services *fakeServiceRepo, bookings *fakeBookingRepo) CartService {
	repo := &repository.Repository{Cart: carts, Service: services, Booking: bookings}
	booking := NewBookingService(repo, zap.NewNop())
	return NewCartService(repo, booking, zap.NewNop())
}

func validAddRequest() *request.AddCartItemRequest {
	return &request.AddCartItemRequest{
		ServiceID:     1,
		CustomerName:  "Linh Tran",
		CustomerPhone: "0912345678",
		CustomerEmail: "linh@example.com",
		BookingDate:   "2025-03-10",
		StartTime:     "09:30",
	}
}

func TestAddCartItem(t *testing.T) {
	carts := newFakeCartRepo()
	svc := newCartServiceForTest(carts, newFakeServiceRepo(facialService()), newFakeBookingRepo())

	items, err := svc.AddItem(context.Background(), "linh", validAddRequest())
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart has %d items, want 1", len(items))
	}
	if items[0].ServiceName != "Deep Cleansing Facial" {
		t.Errorf("item service name = %q", items[0].ServiceName)
	}
	if items[0].Price != 500000 {
		t.Errorf("item price = %v, want snapshot of catalog price", items[0].Price)
	}
}

func TestRemoveCartItem(t *testing.T) {
	carts := newFakeCartRepo()
	svc := newCartServiceForTest(carts, newFakeServiceRepo(facialService()), newFakeBookingRepo())

	svc.AddItem(context.Background(), "linh", validAddRequest())
	svc.AddItem(context.Background(), "linh", validAddRequest())

	items, err := svc.RemoveItem(context.Background(), "linh", 0)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("cart has %d items after remove, want 1", len(items))
	}

	if _, err := svc.RemoveItem(context.Background(), "linh", 5); err == nil {
		t.Error("expected error for out-of-range index")
	}
}

func TestSubmitCart(t *testing.T) {
	carts := newFakeCartRepo()
	bookings := newFakeBookingRepo()
	svc := newCartServiceForTest(carts, newFakeServiceRepo(facialService()), bookings)

	svc.AddItem(context.Background(), "linh", validAddRequest())
	svc.AddItem(context.Background(), "linh", validAddRequest())

	created, err := svc.Submit(context.Background(), "linh")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("submitted %d bookings, want 2", len(created))
	}
	for _, b := range created {
		if b.Status != entity.BookingStatusPending {
			t.Errorf("booking %s status = %q, want pending", b.BookingID, b.Status)
		}
	}

	// The cart is emptied after submit
	items, _ := svc.GetCart(context.Background(), "linh")
	if len(items) != 0 {
		t.Errorf("cart has %d items after submit, want 0", len(items))
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	svc := newCartServiceForTest(newFakeCartRepo(), newFakeServiceRepo(), newFakeBookingRepo())

	_, err := svc.Submit(context.Background(), "linh")
	if err == nil || !strings.Contains(err.Error(), "cart is empty") {
		t.Fatalf("err = %v, want empty-cart validation error", err)
	}
}
