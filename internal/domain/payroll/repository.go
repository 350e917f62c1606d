package payroll

import (
	"context"
	"time"
)

type LineRepository interface {
	Create(ctx context.Context, line Line) (Line, error)
	GetByID(ctx context.Context, id string) (Line, error)
	GetByAttendanceID(ctx context.Context, attendanceID string) (Line, error)
	ListByDate(ctx context.Context, date time.Time) ([]Line, error)
	// ListByUserInRange returns lines whose work date falls in [from, to).
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]Line, error)
}

type RewardPenaltyRepository interface {
	Create(ctx context.Context, rp RewardPenalty) (RewardPenalty, error)
	GetByID(ctx context.Context, id string) (RewardPenalty, error)
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]RewardPenalty, error)
	// ListByUserInRange returns adjustments created in [from, to).
	ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]RewardPenalty, error)
}

type StatementRepository interface {
	// CreateWithDetails persists the statement and its detail rows atomically.
	CreateWithDetails(ctx context.Context, s Statement) (Statement, error)
	GetByID(ctx context.Context, id string) (Statement, error)
	GetByUserPeriod(ctx context.Context, userID string, month, year int) (Statement, error)
	ListByPeriod(ctx context.Context, month, year int) ([]Statement, error)
	UpdateAdjustments(ctx context.Context, s Statement) (Statement, error)
	GetMonthlySummary(ctx context.Context, month, year int) (MonthlySummary, error)
}
