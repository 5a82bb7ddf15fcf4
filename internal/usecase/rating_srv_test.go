package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/dto/request"
)

func newRatingServiceForTest(ratings *fakeRatingRepo, bookings *fakeBookingRepo) RatingService {
	repo := &repository.Repository{Rating: ratings, Booking: bookings}
	return NewRatingService(repo, zap.NewNop())
}

func checkedOutBooking() *entity.Booking {
	return &entity.Booking{
		BookingID:   "BOOK-1",
		Username:    "linh",
		ServiceID:   1,
		ServiceName: "Deep Cleansing Facial",
		Status:      entity.BookingStatusCheckedOut,
	}
}

func TestCreateRating(t *testing.T) {
	bookings := newFakeBookingRepo(checkedOutBooking())
	svc := newRatingServiceForTest(&fakeRatingRepo{}, bookings)

	rating, err := svc.CreateRating(context.Background(), "linh", &request.CreateRatingRequest{
		BookingID:      "BOOK-1",
		ServiceRating:  5,
		ServiceContent: "Wonderful, very relaxing",
	})
	if err != nil {
		t.Fatalf("CreateRating: %v", err)
	}
	if rating.ServiceName != "Deep Cleansing Facial" {
		t.Errorf("service name = %q", rating.ServiceName)
	}

	// Reviewing moves the booking to its terminal status
	b, _ := bookings.FindByBookingID(context.Background(), "BOOK-1")
	if b.Status != entity.BookingStatusReviewed {
		t.Errorf("booking status = %q, want reviewed", b.Status)
	}
}

func TestCreateRatingGuards(t *testing.T) {
	pending := &entity.Booking{BookingID: "BOOK-2", Username: "linh", Status: entity.BookingStatusPending}
	bookings := newFakeBookingRepo(checkedOutBooking(), pending)
	svc := newRatingServiceForTest(&fakeRatingRepo{}, bookings)

	req := func(id string) *request.CreateRatingRequest {
		return &request.CreateRatingRequest{BookingID: id, ServiceRating: 4, ServiceContent: "good"}
	}

	if _, err := svc.CreateRating(context.Background(), "mai", req("BOOK-1")); !errors.Is(err, ErrNotOwner) {
		t.Errorf("rating someone else's booking: err = %v, want ErrNotOwner", err)
	}
	if _, err := svc.CreateRating(context.Background(), "linh", req("BOOK-2")); err == nil {
		t.Error("expected error rating a pending booking")
	}
	if _, err := svc.CreateRating(context.Background(), "linh", req("BOOK-404")); !errors.Is(err, ErrBookingNotFound) {
		t.Errorf("rating unknown booking: err = %v, want ErrBookingNotFound", err)
	}
}

func TestCreateRatingOnlyOnce(t *testing.T) {
	bookings := newFakeBookingRepo(checkedOutBooking())
	svc := newRatingServiceForTest(&fakeRatingRepo{}, bookings)

	req := &request.CreateRatingRequest{BookingID: "BOOK-1", ServiceRating: 5, ServiceContent: "great"}
	if _, err := svc.CreateRating(context.Background(), "linh", req); err != nil {
		t.Fatalf("first rating: %v", err)
	}
	if _, err := svc.CreateRating(context.Background(), "linh", req); !errors.Is(err, ErrAlreadyReviewed) {
		t.Errorf("second rating: err = %v, want ErrAlreadyReviewed", err)
	}
}

func TestListRatingsByService(t *testing.T) {
	ratings := &fakeRatingRepo{ratings: []*entity.Rating{
		{BookingID: "BOOK-1", ServiceID: 1, ServiceRating: 5},
		{BookingID: "BOOK-2", ServiceID: 2, ServiceRating: 3},
	}}
	svc := newRatingServiceForTest(ratings, newFakeBookingRepo())

	all, err := svc.ListRatings(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRatings: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all ratings = %d, want 2", len(all))
	}

	filtered, err := svc.ListRatings(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListRatings(1): %v", err)
	}
	if len(filtered) != 1 {
		t.Errorf("filtered ratings = %d, want 1", len(filtered))
	}
}
