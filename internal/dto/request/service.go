package request

type CreateServiceRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Image           string   `json:"image,omitempty"`
	Duration        int      `json:"duration" validate:"required,gt=0"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty" validate:"omitempty,gt=0"`
	Category        string   `json:"category" validate:"required"`
}

type UpdateServiceRequest struct {
	Name            string   `json:"name" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	Image           string   `json:"image,omitempty"`
	Duration        int      `json:"duration" validate:"required,gt=0"`
	Price           float64  `json:"price" validate:"required,gt=0"`
	DiscountedPrice *float64 `json:"discountedPrice,omitempty" validate:"omitempty,gt=0"`
	Category        string   `json:"category" validate:"required"`
}
