package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/pkg/database"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByBookingID(ctx context.Context, bookingID string) (*entity.Rating, error)
	FindAll(ctx context.Context, serviceID int) ([]*entity.Rating, error)
}

type ratingRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewRatingRepository(db *database.DB, log *zap.Logger) RatingRepository {
	return &ratingRepository{
		coll: db.Collection("ratings"),
		log:  log.With(zap.String("repository", "rating")),
	}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	_, err := r.coll.InsertOne(ctx, rating)
	if err != nil {
		r.log.Error("Failed to create rating",
			zap.Error(err),
			zap.String("booking_id", rating.BookingID),
		)
		return fmt.Errorf("create rating for booking %s: %w", rating.BookingID, err)
	}

	return nil
}

func (r *ratingRepository) FindByBookingID(ctx context.Context, bookingID string) (*entity.Rating, error) {
	var rating entity.Rating
	err := r.coll.FindOne(ctx, bson.M{"BookingID": bookingID}).Decode(&rating)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rating",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find rating for booking %s: %w", bookingID, err)
	}

	return &rating, nil
}

// FindAll lists ratings, optionally filtered by service. serviceID 0 means all.
func (r *ratingRepository) FindAll(ctx context.Context, serviceID int) ([]*entity.Rating, error) {
	filter := bson.M{}
	if serviceID > 0 {
		filter["service_id"] = serviceID
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		r.log.Error("Failed to find ratings", zap.Error(err))
		return nil, fmt.Errorf("find ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []*entity.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		r.log.Error("Failed to decode rating rows", zap.Error(err))
		return nil, fmt.Errorf("decode rating rows: %w", err)
	}

	return ratings, nil
}
