package response

import (
	"time"

	"luluspa-booking/internal/data/entity"
)

type RatingResponse struct {
	ID             string    `json:"id"`
	BookingID      string    `json:"BookingID"`
	ServiceID      int       `json:"service_id,omitempty"`
	ServiceName    string    `json:"serviceName,omitempty"`
	ServiceRating  int       `json:"serviceRating"`
	ServiceContent string    `json:"serviceContent"`
	Images         []string  `json:"images,omitempty"`
	CreateName     string    `json:"createName"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:             rating.ID.Hex(),
		BookingID:      rating.BookingID,
		ServiceID:      rating.ServiceID,
		ServiceName:    rating.ServiceName,
		ServiceRating:  rating.ServiceRating,
		ServiceContent: rating.ServiceContent,
		Images:         rating.Images,
		CreateName:     rating.CreateName,
		Status:         rating.Status,
		CreatedAt:      rating.CreatedAt,
	}
}

func RatingsToResponse(ratings []*entity.Rating) []RatingResponse {
	responses := make([]RatingResponse, len(ratings))
	for i, rating := range ratings {
		responses[i] = RatingToResponse(rating)
	}
	return responses
}
