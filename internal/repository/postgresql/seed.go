package postgresql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/user"
)

// SeedAdminUser creates the first admin account when the users table is
// empty. Safe to call on every startup.
func SeedAdminUser(ctx context.Context, repo user.UserRepository, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	count, err := repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	_, err = repo.Create(ctx, user.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		BaseSalary:   decimal.Zero,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	return nil
}
