package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is a customer review of one checked-out booking.
type Rating struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	BookingID      string             `bson:"BookingID"`
	ServiceID      int                `bson:"service_id,omitempty"`
	ServiceName    string             `bson:"serviceName,omitempty"`
	ServiceRating  int                `bson:"serviceRating"`
	ServiceContent string             `bson:"serviceContent"`
	Images         []string           `bson:"images,omitempty"`
	CreateName     string             `bson:"createName"`
	Status         string             `bson:"status"`
	CreatedAt      time.Time          `bson:"createdAt"`
}
