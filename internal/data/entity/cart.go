package entity

// CartItem is one not-yet-submitted booking intent. The cart is a side
// store (Redis, keyed by username) outside the booking store's authority;
// nothing here participates in charging.
type CartItem struct {
	ServiceID       int      `json:"service_id"`
	ServiceName     string   `json:"serviceName"`
	Duration        int      `json:"duration"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty"`
	CustomerName    string   `json:"customerName"`
	CustomerPhone   string   `json:"customerPhone"`
	CustomerEmail   string   `json:"customerEmail"`
	Notes           string   `json:"notes,omitempty"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	Therapist       string   `json:"therapist,omitempty"`
	Timestamp       int64    `json:"timestamp"`
}
