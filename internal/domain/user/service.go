package user

import "context"

type UserService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	ListUsers(ctx context.Context) ([]UserResponse, error)
}
