package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/validator"
)

type CalculateLineRequest struct {
	AttendanceID string `json:"attendance_id"`
}

func (r *CalculateLineRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LineResponse struct {
	ID              string          `json:"id"`
	AttendanceID    string          `json:"attendance_id"`
	UserID          string          `json:"user_id"`
	WorkDate        string          `json:"work_date"`
	SalaryRate      decimal.Decimal `json:"salary_rate"`
	ShiftMultiplier decimal.Decimal `json:"shift_multiplier"`
	EffectiveRate   decimal.Decimal `json:"effective_rate"`
	HoursWorked     decimal.Decimal `json:"hours_worked"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	OvertimeRate    decimal.Decimal `json:"overtime_rate"`
	RegularAmount   decimal.Decimal `json:"regular_amount"`
	OvertimeAmount  decimal.Decimal `json:"overtime_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	UserName        *string         `json:"user_name,omitempty"`
}

type CreateRewardPenaltyRequest struct {
	UserID string          `json:"user_id"`
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
	// CreatedBy is filled from the authenticated caller, not the body.
	CreatedBy string `json:"-"`
}

func (r *CreateRewardPenaltyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if !validator.IsInSlice(r.Type, RewardPenaltyTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: reward, penalty",
		})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RewardPenaltyResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Reason    string          `json:"reason"`
	CreatedBy string          `json:"created_by"`
	CreatedAt string          `json:"created_at"`
}

type GenerateMonthlyRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	// UserID restricts generation to a single user when set.
	UserID *string `json:"user_id,omitempty"`
}

func (r *GenerateMonthlyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(r.Year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if r.UserID != nil && validator.IsEmpty(*r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must not be empty when provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatementRequest struct {
	ID        string           `json:"-"`
	Bonuses   *decimal.Decimal `json:"bonuses,omitempty"`
	Penalties *decimal.Decimal `json:"penalties,omitempty"`
}

func (r *UpdateStatementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Bonuses == nil && r.Penalties == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "request",
			Message: "at least one of bonuses or penalties must be provided",
		})
	}
	if r.Bonuses != nil && r.Bonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "bonuses",
			Message: "bonuses must not be negative",
		})
	}
	if r.Penalties != nil && r.Penalties.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "penalties",
			Message: "penalties must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryDetailResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type StatementResponse struct {
	ID         string                 `json:"id"`
	UserID     string                 `json:"user_id"`
	Month      int                    `json:"month"`
	Year       int                    `json:"year"`
	TotalHours decimal.Decimal        `json:"total_hours"`
	BaseSalary decimal.Decimal        `json:"base_salary"`
	Bonuses    decimal.Decimal        `json:"bonuses"`
	Penalties  decimal.Decimal        `json:"penalties"`
	NetSalary  decimal.Decimal        `json:"net_salary"`
	Details    []SalaryDetailResponse `json:"details,omitempty"`
	UserName   *string                `json:"user_name,omitempty"`
	CreatedAt  string                 `json:"created_at"`
	UpdatedAt  string                 `json:"updated_at"`
}

type MonthlySummaryResponse struct {
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	StatementCount int64           `json:"statement_count"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	TotalBase      decimal.Decimal `json:"total_base"`
	TotalBonuses   decimal.Decimal `json:"total_bonuses"`
	TotalPenalties decimal.Decimal `json:"total_penalties"`
	TotalNet       decimal.Decimal `json:"total_net"`
}
