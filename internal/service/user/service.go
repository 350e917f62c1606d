package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/jwt"
)

type userServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewUserService(userRepo user.UserRepository, jwtService jwt.Service) user.UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements user.UserService.
func (s *userServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return user.LoginResponse{}, err
	}

	account, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.LoginResponse{}, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !account.IsActive {
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return user.LoginResponse{}, user.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateAccessToken(account.ID, account.Email, account.Role)
	if err != nil {
		return user.LoginResponse{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return user.LoginResponse{
		AccessToken: token,
		User:        toUserResponse(account),
	}, nil
}

// GetProfile implements user.UserService.
func (s *userServiceImpl) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	account, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return toUserResponse(account), nil
}

// ListUsers implements user.UserService.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	accounts, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, toUserResponse(account))
	}
	return responses, nil
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		SalaryRate: u.SalaryRate,
		BaseSalary: u.BaseSalary,
		IsActive:   u.IsActive,
	}
}
