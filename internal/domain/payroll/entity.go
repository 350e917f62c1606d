package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is the monetary derivation from a single completed attendance record.
// At most one line exists per attendance; recalculation returns the stored
// line instead of writing a new one.
type Line struct {
	ID           string
	AttendanceID string
	UserID       string
	// WorkDate is the calendar date of the attendance check-in, kept
	// denormalized so daily and monthly rollups need no join.
	WorkDate        time.Time
	SalaryRate      decimal.Decimal
	ShiftMultiplier decimal.Decimal
	EffectiveRate   decimal.Decimal
	HoursWorked     decimal.Decimal
	OvertimeHours   decimal.Decimal
	OvertimeRate    decimal.Decimal
	RegularAmount   decimal.Decimal
	OvertimeAmount  decimal.Decimal
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time

	// Joined fields
	UserName *string
}

// RewardPenaltyType enum
type RewardPenaltyType string

const (
	TypeReward  RewardPenaltyType = "reward"
	TypePenalty RewardPenaltyType = "penalty"
)

var RewardPenaltyTypeValues = []string{
	string(TypeReward),
	string(TypePenalty),
}

// RewardPenalty is a manual adjustment. Amount is always positive; the sign
// is implied by Type. Immutable once created except for deletion.
type RewardPenalty struct {
	ID        string
	UserID    string
	Type      RewardPenaltyType
	Amount    decimal.Decimal
	Reason    string
	CreatedBy string
	CreatedAt time.Time
}

// Statement is the monthly payroll document for one user, unique per
// (UserID, Month, Year).
type Statement struct {
	ID         string
	UserID     string
	Month      int
	Year       int
	TotalHours decimal.Decimal
	BaseSalary decimal.Decimal
	Bonuses    decimal.Decimal
	Penalties  decimal.Decimal
	NetSalary  decimal.Decimal
	Details    []SalaryDetail
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	UserName *string
}

// SalaryDetail is one itemized, signed contribution to a statement.
type SalaryDetail struct {
	ID          string
	StatementID string
	Description string
	Amount      decimal.Decimal
}

// MonthlySummary aggregates all statements for one period.
type MonthlySummary struct {
	Month          int
	Year           int
	StatementCount int64
	TotalHours     decimal.Decimal
	TotalBase      decimal.Decimal
	TotalBonuses   decimal.Decimal
	TotalPenalties decimal.Decimal
	TotalNet       decimal.Decimal
}
