package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"luluspa-booking/internal/data/entity"
	"luluspa-booking/internal/data/repository"
	"luluspa-booking/internal/dto/response"
)

type UserService interface {
	// ListSkincareStaff returns the therapists a customer can pick when
	// booking.
	ListSkincareStaff(ctx context.Context) ([]response.UserResponse, error)
	GetProfile(ctx context.Context, username string) (*response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		users: repo.User,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) ListSkincareStaff(ctx context.Context) ([]response.UserResponse, error) {
	staff, err := s.users.FindByRole(ctx, entity.RoleStaff)
	if err != nil {
		s.log.Error("Failed to list skincare staff", zap.Error(err))
		return nil, fmt.Errorf("list skincare staff: %w", err)
	}

	responses := make([]response.UserResponse, len(staff))
	for i, user := range staff {
		responses[i] = response.UserToResponse(user)
	}
	return responses, nil
}

func (s *userService) GetProfile(ctx context.Context, username string) (*response.UserResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
