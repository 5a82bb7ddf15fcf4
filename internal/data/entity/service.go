package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is one skincare treatment the spa offers.
type Service struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ServiceID       int                `bson:"service_id"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description"`
	Image           string             `bson:"image,omitempty"`
	Duration        int                `bson:"duration"`
	Price           float64            `bson:"price"`
	DiscountedPrice *float64           `bson:"discountedPrice,omitempty"`
	Category        string             `bson:"category"`
	CreateDate      time.Time          `bson:"createDate"`
}
