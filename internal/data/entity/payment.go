package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Payment records one payment link issued by the provider, keyed by the
// numeric order code the provider echoes back on its webhook.
type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	OrderCode   int64              `bson:"orderCode"`
	Username    string             `bson:"username"`
	Amount      float64            `bson:"amount"`
	BookingIDs  []string           `bson:"bookingIds"`
	Status      PaymentStatus      `bson:"status"`
	CheckoutURL string             `bson:"checkoutUrl"`
	QRCode      string             `bson:"qrCode"`
	CreatedAt   time.Time          `bson:"createdAt"`
	PaidAt      *time.Time         `bson:"paidAt,omitempty"`
}
