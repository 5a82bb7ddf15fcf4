package response

import (
	"time"

	"luluspa-booking/internal/data/entity"
)

type BookingResponse struct {
	BookingID       string               `json:"BookingID"`
	Username        string               `json:"username"`
	ServiceID       int                  `json:"service_id"`
	ServiceName     string               `json:"serviceName"`
	Duration        int                  `json:"duration"`
	CustomerName    string               `json:"customerName"`
	CustomerPhone   string               `json:"customerPhone"`
	CustomerEmail   string               `json:"customerEmail"`
	Notes           string               `json:"notes,omitempty"`
	BookingDate     string               `json:"bookingDate"`
	StartTime       string               `json:"startTime"`
	EndTime         string               `json:"endTime"`
	SkincareStaff   string               `json:"Skincare_staff,omitempty"`
	Status          entity.BookingStatus `json:"status"`
	TotalPrice      float64              `json:"totalPrice"`
	OriginalPrice   float64              `json:"originalPrice,omitempty"`
	DiscountedPrice *float64             `json:"discountedPrice,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		BookingID:       booking.BookingID,
		Username:        booking.Username,
		ServiceID:       booking.ServiceID,
		ServiceName:     booking.ServiceName,
		Duration:        booking.Duration,
		CustomerName:    booking.CustomerName,
		CustomerPhone:   booking.CustomerPhone,
		CustomerEmail:   booking.CustomerEmail,
		Notes:           booking.Notes,
		BookingDate:     booking.BookingDate,
		StartTime:       booking.StartTime,
		EndTime:         booking.EndTime,
		SkincareStaff:   booking.SkincareStaff,
		Status:          booking.Status,
		TotalPrice:      booking.TotalPrice,
		OriginalPrice:   booking.OriginalPrice,
		DiscountedPrice: booking.DiscountedPrice,
		CreatedAt:       booking.CreatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = BookingToResponse(booking)
	}
	return responses
}
