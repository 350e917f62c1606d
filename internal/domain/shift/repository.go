package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	// GetByName matches case-insensitively.
	GetByName(ctx context.Context, name string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, s Shift) (Shift, error)
	Delete(ctx context.Context, id string) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	// Exists checks the (userID, shiftID, shiftDate) triple.
	Exists(ctx context.Context, userID, shiftID string, shiftDate time.Time) (bool, error)
	// ListForUserBetween returns the user's assignments with shift times
	// joined, for dates in [from, to] inclusive.
	ListForUserBetween(ctx context.Context, userID string, from, to time.Time) ([]Assignment, error)
	List(ctx context.Context) ([]Assignment, error)
	ListByUser(ctx context.Context, userID string) ([]Assignment, error)
	UpdateStatus(ctx context.Context, id string, status AssignmentStatus) error
	Delete(ctx context.Context, id string) error
	CountByShiftID(ctx context.Context, shiftID string) (int64, error)
}
