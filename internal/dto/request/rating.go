package request

type CreateRatingRequest struct {
	BookingID      string   `json:"BookingID" validate:"required"`
	ServiceRating  int      `json:"serviceRating" validate:"required,min=1,max=5"`
	ServiceContent string   `json:"serviceContent" validate:"required"`
	Images         []string `json:"images,omitempty"`
}
