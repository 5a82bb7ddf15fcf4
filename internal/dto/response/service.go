package response

import (
	"time"

	"luluspa-booking/internal/data/entity"
)

type ServiceResponse struct {
	ID              string    `json:"id"`
	ServiceID       int       `json:"service_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Image           string    `json:"image,omitempty"`
	Duration        int       `json:"duration"`
	Price           float64   `json:"price"`
	DiscountedPrice *float64  `json:"discountedPrice,omitempty"`
	Category        string    `json:"category"`
	CreateDate      time.Time `json:"createDate"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID.Hex(),
		ServiceID:       service.ServiceID,
		Name:            service.Name,
		Description:     service.Description,
		Image:           service.Image,
		Duration:        service.Duration,
		Price:           service.Price,
		DiscountedPrice: service.DiscountedPrice,
		Category:        service.Category,
		CreateDate:      service.CreateDate,
	}
}

func ServicesToResponse(services []*entity.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(services))
	for i, service := range services {
		responses[i] = ServiceToResponse(service)
	}
	return responses
}
