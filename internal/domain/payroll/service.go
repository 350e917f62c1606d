package payroll

import "context"

type PayrollService interface {
	// Attendance-level lines
	CalculateForAttendance(ctx context.Context, req CalculateLineRequest) (LineResponse, error)
	GetLine(ctx context.Context, id string) (LineResponse, error)
	ListLinesByDate(ctx context.Context, date string) ([]LineResponse, error)

	// Manual adjustments
	CreateRewardPenalty(ctx context.Context, req CreateRewardPenaltyRequest) (RewardPenaltyResponse, error)
	DeleteRewardPenalty(ctx context.Context, id string) error
	ListRewardPenaltiesByUser(ctx context.Context, userID string) ([]RewardPenaltyResponse, error)

	// Monthly statements
	GenerateMonthly(ctx context.Context, req GenerateMonthlyRequest) ([]StatementResponse, error)
	GetStatement(ctx context.Context, id string) (StatementResponse, error)
	GetStatementForUser(ctx context.Context, userID string, month, year int) (StatementResponse, error)
	ListStatements(ctx context.Context, month, year int) ([]StatementResponse, error)
	UpdateStatement(ctx context.Context, req UpdateStatementRequest) (StatementResponse, error)
	GetMonthlySummary(ctx context.Context, month, year int) (MonthlySummaryResponse, error)
}
