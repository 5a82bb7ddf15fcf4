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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	users repository.UserRepository
	jwt   utils.JWTConfig
	log   *zap.Logger
}

func NewAuthService(repo *repository.Repository, jwt utils.JWTConfig, log *zap.Logger) AuthService {
	return &authService{
		users: repo.User,
		jwt:   jwt,
		log:   log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	existing, err = s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info("User registered", zap.String("username", user.Username))

	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		// The login form accepts an email in the username field
		user, err = s.users.FindByEmail(ctx, req.Username)
		if err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
	}
	if user == nil || !user.IsActive || !utils.CheckPassword(req.Password, user.PasswordHash) {
		s.log.Warn("Login rejected", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", zap.String("username", user.Username))

	return s.issueToken(user)
}

func (s *authService) issueToken(user *entity.User) (*response.AuthResponse, error) {
	token, err := utils.GenerateToken(utils.UserClaims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Role:     string(user.Role),
	}, s.jwt.Secret, s.jwt.ExpiryHours)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("username", user.Username))
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &response.AuthResponse{
		Token: token,
		User:  response.UserToResponse(user),
	}, nil
}
