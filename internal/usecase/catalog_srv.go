package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/dto/request"
	"luluspa-booking/internal/dto/response"
	"luluspa-booking/pkg/utils"
)

type CatalogService interface {
	ListServices(ctx context.Context) ([]response.ServiceResponse, error)
	GetService(ctx context.Context, serviceID int) (*response.ServiceResponse, error)

	// Admin only (role enforced at the route)
	CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID int, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID int) error
}

type catalogService struct {
	services repository.ServiceRepository
	log      *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		services: repo.Service,
		log:      log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]response.ServiceResponse, error) {
	services, err := s.services.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("list services: %w", err)
	}
	return response.ServicesToResponse(services), nil
}

func (s *catalogService) GetService(ctx context.Context, serviceID int) (*response.ServiceResponse, error) {
	service, err := s.services.FindByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get service %d: %w", serviceID, err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) CreateService(ctx context.Context, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.DiscountedPrice != nil && *req.DiscountedPrice >= req.Price {
		return nil, fmt.Errorf("validation failed: discounted price must be below the regular price")
	}

	serviceID, err := s.nextServiceID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	service := &entity.Service{
		ServiceID:       serviceID,
		Name:            req.Name,
		Description:     req.Description,
		Image:           req.Image,
		Duration:        req.Duration,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Category:        req.Category,
		CreateDate:      time.Now(),
	}

	if err := s.services.Create(ctx, service); err != nil {
		s.log.Error("Failed to create service", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.Int("service_id", service.ServiceID),
		zap.String("name", service.Name),
	)

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID int, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.DiscountedPrice != nil && *req.DiscountedPrice >= req.Price {
		return nil, fmt.Errorf("validation failed: discounted price must be below the regular price")
	}

	service, err := s.services.FindByServiceID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("update service %d: %w", serviceID, err)
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	service.Name = req.Name
	service.Description = req.Description
	service.Image = req.Image
	service.Duration = req.Duration
	service.Price = req.Price
	service.DiscountedPrice = req.DiscountedPrice
	service.Category = req.Category

	if err := s.services.Update(ctx, service); err != nil {
		s.log.Error("Failed to update service", zap.Error(err), zap.Int("service_id", serviceID))
		return nil, fmt.Errorf("update service %d: %w", serviceID, err)
	}

	s.log.Info("Service updated", zap.Int("service_id", serviceID))

	resp := response.ServiceToResponse(service)
	return &resp, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID int) error {
	service, err := s.services.FindByServiceID(ctx, serviceID)
	if err != nil {
		return fmt.Errorf("delete service %d: %w", serviceID, err)
	}
	if service == nil {
		return ErrServiceNotFound
	}

	if err := s.services.Delete(ctx, service.ID); err != nil {
		s.log.Error("Failed to delete service", zap.Error(err), zap.Int("service_id", serviceID))
		return fmt.Errorf("delete service %d: %w", serviceID, err)
	}

	s.log.Info("Service deleted", zap.Int("service_id", serviceID))
	return nil
}

// nextServiceID assigns the next sequential public identifier.
func (s *catalogService) nextServiceID(ctx context.Context) (int, error) {
	services, err := s.services.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	max := 0
	for _, service := range services {
		if service.ServiceID > max {
			max = service.ServiceID
		}
	}
	return max + 1, nil
}
