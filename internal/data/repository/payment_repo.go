package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/pkg/database"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByOrderCode(ctx context.Context, orderCode int64) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, orderCode int64, status entity.PaymentStatus) error
}

type paymentRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

func NewPaymentRepository(db *database.DB, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		coll: db.Collection("payments"),
		log:  log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	_, err := r.coll.InsertOne(ctx, payment)
	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.Int64("order_code", payment.OrderCode),
		)
		return fmt.Errorf("create payment %d: %w", payment.OrderCode, err)
	}

	return nil
}

func (r *paymentRepository) FindByOrderCode(ctx context.Context, orderCode int64) (*entity.Payment, error) {
	var payment entity.Payment
	err := r.coll.FindOne(ctx, bson.M{"orderCode": orderCode}).Decode(&payment)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment",
			zap.Error(err),
			zap.Int64("order_code", orderCode),
		)
		return nil, fmt.Errorf("find payment %d: %w", orderCode, err)
	}

	return &payment, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, orderCode int64, status entity.PaymentStatus) error {
	update := bson.M{"$set": bson.M{"status": status}}
	if status == entity.PaymentStatusPaid {
		now := time.Now()
		update = bson.M{"$set": bson.M{"status": status, "paidAt": now}}
	}

	result, err := r.coll.UpdateOne(ctx, bson.M{"orderCode": orderCode}, update)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.Int64("order_code", orderCode),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment %d status to %s: %w", orderCode, string(status), err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("payment %d not found", orderCode)
	}

	return nil
}
