package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/pkg/database"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error)
	FindByUsername(ctx context.Context, username string) ([]*entity.Booking, error)
	FindByStaff(ctx context.Context, staff string) ([]*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)

	// Business queries
	FindByUsernameAndStatus(ctx context.Context, username string, status entity.BookingStatus) ([]*entity.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, status entity.BookingStatus) error
	AssignStaff(ctx context.Context, bookingID, staff string) error
	Delete(ctx context.Context, bookingID string) error
}

type bookingRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewBookingRepository(db *database.DB, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		coll: db.Collection("bookings"),
		log:  log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.BookingID),
			zap.String("username", booking.Username),
		)
		return fmt.Errorf("create booking %s: %w", booking.BookingID, err)
	}

	return nil
}

func (r *bookingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Booking, error) {
	var booking entity.Booking
	err := r.coll.FindOne(ctx, bson.M{"BookingID": bookingID}).Decode(&booking)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUsername(ctx context.Context, username string) ([]*entity.Booking, error) {
	return r.find(ctx, bson.M{"username": username})
}

func (r *bookingRepository) FindByStaff(ctx context.Context, staff string) ([]*entity.Booking, error) {
	return r.find(ctx, bson.M{"Skincare_staff": staff})
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *bookingRepository) FindByUsernameAndStatus(ctx context.Context, username string, status entity.BookingStatus) ([]*entity.Booking, error) {
	return r.find(ctx, bson.M{"username": username, "status": status})
}

func (r *bookingRepository) find(ctx context.Context, filter bson.M) ([]*entity.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Any("filter", filter),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*entity.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		r.log.Error("Failed to decode booking rows", zap.Error(err))
		return nil, fmt.Errorf("decode booking rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID string, status entity.BookingStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"BookingID": bookingID}, update)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID, string(status), err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	return nil
}

func (r *bookingRepository) AssignStaff(ctx context.Context, bookingID, staff string) error {
	update := bson.M{"$set": bson.M{"Skincare_staff": staff, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"BookingID": bookingID}, update)
	if err != nil {
		r.log.Error("Failed to assign staff",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("staff", staff),
		)
		return fmt.Errorf("assign staff to booking %s: %w", bookingID, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, bookingID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"BookingID": bookingID})
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", bookingID))
	return nil
}
