package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusCheckedIn  BookingStatus = "checked-in"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCheckedOut BookingStatus = "checked-out"
	BookingStatusCancel     BookingStatus = "cancel"
	BookingStatusReviewed   BookingStatus = "reviewed"
)

// StatusFlow is the forward lifecycle order. Cancel is only reachable
// from pending (customer action) and reviewed only through the rating
// flow, so neither appears here.
var StatusFlow = map[BookingStatus]BookingStatus{
	BookingStatusPending:   BookingStatusCheckedIn,
	BookingStatusCheckedIn: BookingStatusCompleted,
	BookingStatusCompleted: BookingStatusCheckedOut,
}

// CanTransition reports whether moving from to next follows the lifecycle.
func CanTransition(from, to BookingStatus) bool {
	next, ok := StatusFlow[from]
	return ok && next == to
}

// Booking field names mirror the documents the original Mongoose
// backend wrote, so an existing collection keeps working.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	BookingID       string             `bson:"BookingID"`
	Username        string             `bson:"username"`
	ServiceID       int                `bson:"service_id"`
	ServiceName     string             `bson:"serviceName"`
	Duration        int                `bson:"duration"`
	CustomerName    string             `bson:"customerName"`
	CustomerPhone   string             `bson:"customerPhone"`
	CustomerEmail   string             `bson:"customerEmail"`
	Notes           string             `bson:"notes,omitempty"`
	BookingDate     string             `bson:"bookingDate"`
	StartTime       string             `bson:"startTime"`
	EndTime         string             `bson:"endTime"`
	SkincareStaff   string             `bson:"Skincare_staff,omitempty"`
	Status          BookingStatus      `bson:"status"`
	TotalPrice      float64            `bson:"totalPrice"`
	OriginalPrice   float64            `bson:"originalPrice,omitempty"`
	DiscountedPrice *float64           `bson:"discountedPrice,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}
