package request

type AddCartItemRequest struct {
	ServiceID     int    `json:"service_id" validate:"required"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerPhone string `json:"customerPhone" validate:"required,len=10,numeric"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	Notes         string `json:"notes,omitempty"`
	BookingDate   string `json:"bookingDate" validate:"required"`
	StartTime     string `json:"startTime" validate:"required"`
	Therapist     string `json:"therapist,omitempty"`
}
