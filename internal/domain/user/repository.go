package user

import "context"

// UserRepository is the read-side user directory consumed by scheduling and
// payroll. Write paths (registration, invitations) live outside this service.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// ExistsActive reports whether an active user with this id exists.
	ExistsActive(ctx context.Context, id string) (bool, error)
	ListActive(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u User) (User, error)
	CountAll(ctx context.Context) (int64, error)
}
