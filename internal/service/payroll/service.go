package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/config"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/validator"
)

type payrollServiceImpl struct {
	lineRepo          payroll.LineRepository
	rewardPenaltyRepo payroll.RewardPenaltyRepository
	statementRepo     payroll.StatementRepository
	attendanceRepo    attendance.AttendanceRepository
	userRepo          user.UserRepository
	shiftRepo         shift.ShiftRepository
	transactor        database.Transactor
	cfg               config.PayrollConfig
	overtimeSplit     OvertimeSplit
}

func NewPayrollService(
	lineRepo payroll.LineRepository,
	rewardPenaltyRepo payroll.RewardPenaltyRepository,
	statementRepo payroll.StatementRepository,
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	shiftRepo shift.ShiftRepository,
	transactor database.Transactor,
	cfg config.PayrollConfig,
	overtimeSplit OvertimeSplit,
) payroll.PayrollService {
	if overtimeSplit == nil {
		overtimeSplit = NoOvertime
	}
	return &payrollServiceImpl{
		lineRepo:          lineRepo,
		rewardPenaltyRepo: rewardPenaltyRepo,
		statementRepo:     statementRepo,
		attendanceRepo:    attendanceRepo,
		userRepo:          userRepo,
		shiftRepo:         shiftRepo,
		transactor:        transactor,
		cfg:               cfg,
		overtimeSplit:     overtimeSplit,
	}
}

// CalculateForAttendance implements payroll.PayrollService.
// Calling it twice for the same attendance returns the stored line.
func (s *payrollServiceImpl) CalculateForAttendance(ctx context.Context, req payroll.CalculateLineRequest) (payroll.LineResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.LineResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.AttendanceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.LineResponse{}, attendance.ErrAttendanceNotFound
		}
		return payroll.LineResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}
	if !att.IsComplete() {
		return payroll.LineResponse{}, payroll.ErrAttendanceIncomplete
	}

	if existing, err := s.lineRepo.GetByAttendanceID(ctx, att.ID); err == nil {
		return toLineResponse(existing), nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return payroll.LineResponse{}, fmt.Errorf("failed to check existing line: %w", err)
	}

	owner, err := s.userRepo.GetByID(ctx, att.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.LineResponse{}, user.ErrUserNotFound
		}
		return payroll.LineResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if owner.SalaryRate == nil || owner.SalaryRate.IsZero() {
		return payroll.LineResponse{}, payroll.ErrMissingSalaryRate
	}

	multiplier := decimal.NewFromInt(1)
	if att.ShiftID != nil {
		worked, err := s.shiftRepo.GetByID(ctx, *att.ShiftID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return payroll.LineResponse{}, fmt.Errorf("failed to get shift: %w", err)
		}
		if err == nil {
			multiplier = MultiplierForShift(worked.Name, s.cfg)
		}
	}

	line := ComputeLine(att.ID, att.UserID, att.CheckInTime, *att.CheckOutTime, *owner.SalaryRate, multiplier, s.overtimeSplit)

	created, err := s.lineRepo.Create(ctx, line)
	if err != nil {
		// A concurrent calculation won the unique race on attendance_id.
		if isUniqueViolation(err) {
			existing, getErr := s.lineRepo.GetByAttendanceID(ctx, att.ID)
			if getErr != nil {
				return payroll.LineResponse{}, fmt.Errorf("failed to load concurrent line: %w", getErr)
			}
			return toLineResponse(existing), nil
		}
		return payroll.LineResponse{}, fmt.Errorf("failed to create payroll line: %w", err)
	}

	created.UserName = &owner.Name

	return toLineResponse(created), nil
}

// GetLine implements payroll.PayrollService.
func (s *payrollServiceImpl) GetLine(ctx context.Context, id string) (payroll.LineResponse, error) {
	line, err := s.lineRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.LineResponse{}, payroll.ErrLineNotFound
		}
		return payroll.LineResponse{}, fmt.Errorf("failed to get payroll line: %w", err)
	}

	return toLineResponse(line), nil
}

// ListLinesByDate implements payroll.PayrollService.
func (s *payrollServiceImpl) ListLinesByDate(ctx context.Context, date string) ([]payroll.LineResponse, error) {
	parsed, valid := validator.IsValidDate(date)
	if !valid {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be a valid date in YYYY-MM-DD format",
		}}
	}

	lines, err := s.lineRepo.ListByDate(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll lines: %w", err)
	}

	responses := make([]payroll.LineResponse, 0, len(lines))
	for _, line := range lines {
		responses = append(responses, toLineResponse(line))
	}
	return responses, nil
}

// CreateRewardPenalty implements payroll.PayrollService.
func (s *payrollServiceImpl) CreateRewardPenalty(ctx context.Context, req payroll.CreateRewardPenaltyRequest) (payroll.RewardPenaltyResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RewardPenaltyResponse{}, err
	}

	exists, err := s.userRepo.ExistsActive(ctx, req.UserID)
	if err != nil {
		return payroll.RewardPenaltyResponse{}, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return payroll.RewardPenaltyResponse{}, user.ErrUserNotFound
	}

	created, err := s.rewardPenaltyRepo.Create(ctx, payroll.RewardPenalty{
		UserID:    req.UserID,
		Type:      payroll.RewardPenaltyType(req.Type),
		Amount:    req.Amount,
		Reason:    req.Reason,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return payroll.RewardPenaltyResponse{}, fmt.Errorf("failed to create reward penalty: %w", err)
	}

	return toRewardPenaltyResponse(created), nil
}

// DeleteRewardPenalty implements payroll.PayrollService.
func (s *payrollServiceImpl) DeleteRewardPenalty(ctx context.Context, id string) error {
	return s.rewardPenaltyRepo.Delete(ctx, id)
}

// ListRewardPenaltiesByUser implements payroll.PayrollService.
func (s *payrollServiceImpl) ListRewardPenaltiesByUser(ctx context.Context, userID string) ([]payroll.RewardPenaltyResponse, error) {
	records, err := s.rewardPenaltyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reward penalties: %w", err)
	}

	responses := make([]payroll.RewardPenaltyResponse, 0, len(records))
	for _, rp := range records {
		responses = append(responses, toRewardPenaltyResponse(rp))
	}
	return responses, nil
}

// GenerateMonthly implements payroll.PayrollService.
// Users who already have a statement for the period keep their existing one.
func (s *payrollServiceImpl) GenerateMonthly(ctx context.Context, req payroll.GenerateMonthlyRequest) ([]payroll.StatementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var targets []user.User
	if req.UserID != nil {
		target, err := s.userRepo.GetByID(ctx, *req.UserID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, user.ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		targets = []user.User{target}
	} else {
		active, err := s.userRepo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		targets = active
	}

	responses := make([]payroll.StatementResponse, 0, len(targets))
	for _, target := range targets {
		statement, err := s.generateForUser(ctx, target, req.Month, req.Year)
		if err != nil {
			return nil, fmt.Errorf("failed to generate statement for user %s: %w", target.ID, err)
		}
		responses = append(responses, toStatementResponse(statement))
	}

	return responses, nil
}

func (s *payrollServiceImpl) generateForUser(ctx context.Context, target user.User, month, year int) (payroll.Statement, error) {
	if existing, err := s.statementRepo.GetByUserPeriod(ctx, target.ID, month, year); err == nil {
		return existing, nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return payroll.Statement{}, fmt.Errorf("failed to check existing statement: %w", err)
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	lines, err := s.lineRepo.ListByUserInRange(ctx, target.ID, monthStart, monthEnd)
	if err != nil {
		return payroll.Statement{}, fmt.Errorf("failed to list payroll lines: %w", err)
	}

	adjustments, err := s.rewardPenaltyRepo.ListByUserInRange(ctx, target.ID, monthStart, monthEnd)
	if err != nil {
		return payroll.Statement{}, fmt.Errorf("failed to list reward penalties: %w", err)
	}

	totalHours := decimal.Zero
	shiftPay := decimal.Zero
	overtimePay := decimal.Zero
	for _, line := range lines {
		totalHours = totalHours.Add(line.HoursWorked)
		shiftPay = shiftPay.Add(line.RegularAmount)
		overtimePay = overtimePay.Add(line.OvertimeAmount)
	}

	var details []payroll.SalaryDetail
	if target.BaseSalary.IsPositive() {
		details = append(details, payroll.SalaryDetail{
			Description: "Monthly base salary",
			Amount:      target.BaseSalary,
		})
	}
	if len(lines) > 0 {
		details = append(details, payroll.SalaryDetail{
			Description: fmt.Sprintf("Attendance earnings (%d records)", len(lines)),
			Amount:      shiftPay,
		})
	}

	// Overtime counts toward bonuses rather than the base component.
	bonuses := overtimePay
	if overtimePay.IsPositive() {
		details = append(details, payroll.SalaryDetail{
			Description: "Overtime earnings",
			Amount:      overtimePay,
		})
	}

	penalties := decimal.Zero
	for _, adj := range adjustments {
		switch adj.Type {
		case payroll.TypeReward:
			bonuses = bonuses.Add(adj.Amount)
			details = append(details, payroll.SalaryDetail{
				Description: adj.Reason,
				Amount:      adj.Amount,
			})
		case payroll.TypePenalty:
			penalties = penalties.Add(adj.Amount)
			details = append(details, payroll.SalaryDetail{
				Description: adj.Reason,
				Amount:      adj.Amount.Neg(),
			})
		}
	}

	baseSalary := target.BaseSalary.Add(shiftPay)
	statement := payroll.Statement{
		UserID:     target.ID,
		Month:      month,
		Year:       year,
		TotalHours: totalHours,
		BaseSalary: baseSalary,
		Bonuses:    bonuses,
		Penalties:  penalties,
		NetSalary:  baseSalary.Add(bonuses).Sub(penalties),
		Details:    details,
	}

	var created payroll.Statement
	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.statementRepo.CreateWithDetails(txCtx, statement)
		return txErr
	})
	if err != nil {
		// A concurrent generation won the unique race on (user, month, year).
		if isUniqueViolation(err) {
			return s.statementRepo.GetByUserPeriod(ctx, target.ID, month, year)
		}
		return payroll.Statement{}, err
	}

	created.UserName = &target.Name

	return created, nil
}

// GetStatement implements payroll.PayrollService.
func (s *payrollServiceImpl) GetStatement(ctx context.Context, id string) (payroll.StatementResponse, error) {
	statement, err := s.statementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.StatementResponse{}, payroll.ErrStatementNotFound
		}
		return payroll.StatementResponse{}, fmt.Errorf("failed to get statement: %w", err)
	}

	return toStatementResponse(statement), nil
}

// GetStatementForUser implements payroll.PayrollService.
func (s *payrollServiceImpl) GetStatementForUser(ctx context.Context, userID string, month, year int) (payroll.StatementResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return payroll.StatementResponse{}, err
	}

	statement, err := s.statementRepo.GetByUserPeriod(ctx, userID, month, year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.StatementResponse{}, payroll.ErrStatementNotFound
		}
		return payroll.StatementResponse{}, fmt.Errorf("failed to get statement: %w", err)
	}

	return toStatementResponse(statement), nil
}

// ListStatements implements payroll.PayrollService.
func (s *payrollServiceImpl) ListStatements(ctx context.Context, month, year int) ([]payroll.StatementResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	statements, err := s.statementRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list statements: %w", err)
	}

	responses := make([]payroll.StatementResponse, 0, len(statements))
	for _, statement := range statements {
		responses = append(responses, toStatementResponse(statement))
	}
	return responses, nil
}

// UpdateStatement implements payroll.PayrollService.
// Net salary is recomputed from the stored base and the new adjustments.
func (s *payrollServiceImpl) UpdateStatement(ctx context.Context, req payroll.UpdateStatementRequest) (payroll.StatementResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.StatementResponse{}, err
	}

	statement, err := s.statementRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.StatementResponse{}, payroll.ErrStatementNotFound
		}
		return payroll.StatementResponse{}, fmt.Errorf("failed to get statement: %w", err)
	}

	if req.Bonuses != nil {
		statement.Bonuses = *req.Bonuses
	}
	if req.Penalties != nil {
		statement.Penalties = *req.Penalties
	}
	statement.NetSalary = statement.BaseSalary.Add(statement.Bonuses).Sub(statement.Penalties)

	updated, err := s.statementRepo.UpdateAdjustments(ctx, statement)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.StatementResponse{}, payroll.ErrStatementNotFound
		}
		return payroll.StatementResponse{}, fmt.Errorf("failed to update statement: %w", err)
	}

	return toStatementResponse(updated), nil
}

// GetMonthlySummary implements payroll.PayrollService.
func (s *payrollServiceImpl) GetMonthlySummary(ctx context.Context, month, year int) (payroll.MonthlySummaryResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return payroll.MonthlySummaryResponse{}, err
	}

	summary, err := s.statementRepo.GetMonthlySummary(ctx, month, year)
	if err != nil {
		return payroll.MonthlySummaryResponse{}, err
	}

	return payroll.MonthlySummaryResponse{
		Month:          summary.Month,
		Year:           summary.Year,
		StatementCount: summary.StatementCount,
		TotalHours:     summary.TotalHours,
		TotalBase:      summary.TotalBase,
		TotalBonuses:   summary.TotalBonuses,
		TotalPenalties: summary.TotalPenalties,
		TotalNet:       summary.TotalNet,
	}, nil
}

func validatePeriod(month, year int) error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if !validator.IsValidYear(year) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func toLineResponse(line payroll.Line) payroll.LineResponse {
	return payroll.LineResponse{
		ID:              line.ID,
		AttendanceID:    line.AttendanceID,
		UserID:          line.UserID,
		WorkDate:        line.WorkDate.Format("2006-01-02"),
		SalaryRate:      line.SalaryRate,
		ShiftMultiplier: line.ShiftMultiplier,
		EffectiveRate:   line.EffectiveRate,
		HoursWorked:     line.HoursWorked,
		OvertimeHours:   line.OvertimeHours,
		OvertimeRate:    line.OvertimeRate,
		RegularAmount:   line.RegularAmount,
		OvertimeAmount:  line.OvertimeAmount,
		TotalAmount:     line.TotalAmount,
		UserName:        line.UserName,
	}
}

func toRewardPenaltyResponse(rp payroll.RewardPenalty) payroll.RewardPenaltyResponse {
	return payroll.RewardPenaltyResponse{
		ID:        rp.ID,
		UserID:    rp.UserID,
		Type:      string(rp.Type),
		Amount:    rp.Amount,
		Reason:    rp.Reason,
		CreatedBy: rp.CreatedBy,
		CreatedAt: rp.CreatedAt.Format(time.RFC3339),
	}
}

func toStatementResponse(statement payroll.Statement) payroll.StatementResponse {
	details := make([]payroll.SalaryDetailResponse, 0, len(statement.Details))
	for _, d := range statement.Details {
		details = append(details, payroll.SalaryDetailResponse{
			ID:          d.ID,
			Description: d.Description,
			Amount:      d.Amount,
		})
	}

	return payroll.StatementResponse{
		ID:         statement.ID,
		UserID:     statement.UserID,
		Month:      statement.Month,
		Year:       statement.Year,
		TotalHours: statement.TotalHours,
		BaseSalary: statement.BaseSalary,
		Bonuses:    statement.Bonuses,
		Penalties:  statement.Penalties,
		NetSalary:  statement.NetSalary,
		Details:    details,
		UserName:   statement.UserName,
		CreatedAt:  statement.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  statement.UpdatedAt.Format(time.RFC3339),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
