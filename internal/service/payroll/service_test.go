package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/config"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/user"
)

type fakeLineRepo struct {
	lines map[string]payroll.Line
}

func newFakeLineRepo() *fakeLineRepo {
	return &fakeLineRepo{lines: make(map[string]payroll.Line)}
}

func (f *fakeLineRepo) Create(_ context.Context, line payroll.Line) (payroll.Line, error) {
	line.ID = uuid.NewString()
	line.CreatedAt = time.Now()
	f.lines[line.ID] = line
	return line, nil
}

func (f *fakeLineRepo) GetByID(_ context.Context, id string) (payroll.Line, error) {
	line, ok := f.lines[id]
	if !ok {
		return payroll.Line{}, pgx.ErrNoRows
	}
	return line, nil
}

func (f *fakeLineRepo) GetByAttendanceID(_ context.Context, attendanceID string) (payroll.Line, error) {
	for _, line := range f.lines {
		if line.AttendanceID == attendanceID {
			return line, nil
		}
	}
	return payroll.Line{}, pgx.ErrNoRows
}

func (f *fakeLineRepo) ListByDate(_ context.Context, date time.Time) ([]payroll.Line, error) {
	var out []payroll.Line
	for _, line := range f.lines {
		if line.WorkDate.Equal(date) {
			out = append(out, line)
		}
	}
	return out, nil
}

func (f *fakeLineRepo) ListByUserInRange(_ context.Context, userID string, from, to time.Time) ([]payroll.Line, error) {
	var out []payroll.Line
	for _, line := range f.lines {
		if line.UserID == userID && !line.WorkDate.Before(from) && line.WorkDate.Before(to) {
			out = append(out, line)
		}
	}
	return out, nil
}

type fakeRewardPenaltyRepo struct {
	records map[string]payroll.RewardPenalty
}

func newFakeRewardPenaltyRepo() *fakeRewardPenaltyRepo {
	return &fakeRewardPenaltyRepo{records: make(map[string]payroll.RewardPenalty)}
}

func (f *fakeRewardPenaltyRepo) Create(_ context.Context, rp payroll.RewardPenalty) (payroll.RewardPenalty, error) {
	rp.ID = uuid.NewString()
	if rp.CreatedAt.IsZero() {
		rp.CreatedAt = time.Now()
	}
	f.records[rp.ID] = rp
	return rp, nil
}

func (f *fakeRewardPenaltyRepo) GetByID(_ context.Context, id string) (payroll.RewardPenalty, error) {
	rp, ok := f.records[id]
	if !ok {
		return payroll.RewardPenalty{}, pgx.ErrNoRows
	}
	return rp, nil
}

func (f *fakeRewardPenaltyRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return payroll.ErrRewardPenaltyNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeRewardPenaltyRepo) ListByUser(_ context.Context, userID string) ([]payroll.RewardPenalty, error) {
	var out []payroll.RewardPenalty
	for _, rp := range f.records {
		if rp.UserID == userID {
			out = append(out, rp)
		}
	}
	return out, nil
}

func (f *fakeRewardPenaltyRepo) ListByUserInRange(_ context.Context, userID string, from, to time.Time) ([]payroll.RewardPenalty, error) {
	var out []payroll.RewardPenalty
	for _, rp := range f.records {
		if rp.UserID == userID && !rp.CreatedAt.Before(from) && rp.CreatedAt.Before(to) {
			out = append(out, rp)
		}
	}
	return out, nil
}

type fakeStatementRepo struct {
	statements map[string]payroll.Statement
}

func newFakeStatementRepo() *fakeStatementRepo {
	return &fakeStatementRepo{statements: make(map[string]payroll.Statement)}
}

func (f *fakeStatementRepo) CreateWithDetails(_ context.Context, s payroll.Statement) (payroll.Statement, error) {
	s.ID = uuid.NewString()
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	for i := range s.Details {
		s.Details[i].ID = uuid.NewString()
		s.Details[i].StatementID = s.ID
	}
	f.statements[s.ID] = s
	return s, nil
}

func (f *fakeStatementRepo) GetByID(_ context.Context, id string) (payroll.Statement, error) {
	s, ok := f.statements[id]
	if !ok {
		return payroll.Statement{}, pgx.ErrNoRows
	}
	return s, nil
}

func (f *fakeStatementRepo) GetByUserPeriod(_ context.Context, userID string, month, year int) (payroll.Statement, error) {
	for _, s := range f.statements {
		if s.UserID == userID && s.Month == month && s.Year == year {
			return s, nil
		}
	}
	return payroll.Statement{}, pgx.ErrNoRows
}

func (f *fakeStatementRepo) ListByPeriod(_ context.Context, month, year int) ([]payroll.Statement, error) {
	var out []payroll.Statement
	for _, s := range f.statements {
		if s.Month == month && s.Year == year {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStatementRepo) UpdateAdjustments(_ context.Context, s payroll.Statement) (payroll.Statement, error) {
	stored, ok := f.statements[s.ID]
	if !ok {
		return payroll.Statement{}, pgx.ErrNoRows
	}
	stored.Bonuses = s.Bonuses
	stored.Penalties = s.Penalties
	stored.NetSalary = s.NetSalary
	stored.UpdatedAt = time.Now()
	f.statements[s.ID] = stored
	return stored, nil
}

func (f *fakeStatementRepo) GetMonthlySummary(_ context.Context, month, year int) (payroll.MonthlySummary, error) {
	summary := payroll.MonthlySummary{
		Month: month, Year: year,
		TotalHours: decimal.Zero, TotalBase: decimal.Zero,
		TotalBonuses: decimal.Zero, TotalPenalties: decimal.Zero, TotalNet: decimal.Zero,
	}
	for _, s := range f.statements {
		if s.Month != month || s.Year != year {
			continue
		}
		summary.StatementCount++
		summary.TotalHours = summary.TotalHours.Add(s.TotalHours)
		summary.TotalBase = summary.TotalBase.Add(s.BaseSalary)
		summary.TotalBonuses = summary.TotalBonuses.Add(s.Bonuses)
		summary.TotalPenalties = summary.TotalPenalties.Add(s.Penalties)
		summary.TotalNet = summary.TotalNet.Add(s.NetSalary)
	}
	return summary, nil
}

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	a.ID = uuid.NewString()
	f.records[a.ID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	a, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, pgx.ErrNoRows
	}
	return a, nil
}

func (f *fakeAttendanceRepo) GetOpenByUser(_ context.Context, userID string) (attendance.Attendance, error) {
	for _, a := range f.records {
		if a.UserID == userID && a.CheckOutTime == nil {
			return a, nil
		}
	}
	return attendance.Attendance{}, pgx.ErrNoRows
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	a, ok := f.records[id]
	if !ok || a.CheckOutTime != nil {
		return attendance.Attendance{}, pgx.ErrNoRows
	}
	a.CheckOutTime = &checkOut
	a.Status = attendance.StatusCompleted
	f.records[id] = a
	return a, nil
}

func (f *fakeAttendanceRepo) ListByUser(_ context.Context, userID string) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListCompletedByUserInRange(_ context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, a := range f.records {
		if a.UserID == userID && a.Status == attendance.StatusCompleted &&
			!a.CheckInTime.Before(from) && a.CheckInTime.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, pgx.ErrNoRows
}

func (f *fakeUserRepo) ExistsActive(_ context.Context, id string) (bool, error) {
	u, ok := f.users[id]
	return ok && u.IsActive, nil
}

func (f *fakeUserRepo) ListActive(_ context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		if u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	u.ID = uuid.NewString()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeShiftRepo struct {
	shifts map[string]shift.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]shift.Shift)}
}

func (f *fakeShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	s.ID = uuid.NewString()
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, pgx.ErrNoRows
	}
	return s, nil
}

func (f *fakeShiftRepo) GetByName(_ context.Context, name string) (shift.Shift, error) {
	for _, s := range f.shifts {
		if s.Name == name {
			return s, nil
		}
	}
	return shift.Shift{}, pgx.ErrNoRows
}

func (f *fakeShiftRepo) List(_ context.Context) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, s shift.Shift) (shift.Shift, error) {
	f.shifts[s.ID] = s
	return s, nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, id string) error {
	delete(f.shifts, id)
	return nil
}

type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testConfig() config.PayrollConfig {
	return config.PayrollConfig{
		NightMultiplier:   decimal.RequireFromString("1.5"),
		HolidayMultiplier: decimal.RequireFromString("2.0"),
	}
}

type fixture struct {
	svc            payroll.PayrollService
	lineRepo       *fakeLineRepo
	rewardRepo     *fakeRewardPenaltyRepo
	statementRepo  *fakeStatementRepo
	attendanceRepo *fakeAttendanceRepo
	userRepo       *fakeUserRepo
	shiftRepo      *fakeShiftRepo
}

func newFixture() *fixture {
	f := &fixture{
		lineRepo:       newFakeLineRepo(),
		rewardRepo:     newFakeRewardPenaltyRepo(),
		statementRepo:  newFakeStatementRepo(),
		attendanceRepo: newFakeAttendanceRepo(),
		userRepo:       newFakeUserRepo(),
		shiftRepo:      newFakeShiftRepo(),
	}
	f.svc = NewPayrollService(
		f.lineRepo, f.rewardRepo, f.statementRepo,
		f.attendanceRepo, f.userRepo, f.shiftRepo,
		passthroughTransactor{}, testConfig(), nil,
	)
	return f
}

func (f *fixture) createUser(t *testing.T, rate string) user.User {
	t.Helper()
	var rateDec *decimal.Decimal
	if rate != "" {
		d := decimal.RequireFromString(rate)
		rateDec = &d
	}
	u, err := f.userRepo.Create(context.Background(), user.User{
		Name:       "Alice Nguyen",
		Email:      "alice@example.com",
		Role:       user.RoleEmployee,
		SalaryRate: rateDec,
		BaseSalary: decimal.Zero,
		IsActive:   true,
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) completedAttendance(t *testing.T, userID string, shiftID *string, checkIn time.Time, hours int) attendance.Attendance {
	t.Helper()
	checkOut := checkIn.Add(time.Duration(hours) * time.Hour)
	a, err := f.attendanceRepo.Create(context.Background(), attendance.Attendance{
		UserID:       userID,
		ShiftID:      shiftID,
		CheckInTime:  checkIn,
		CheckOutTime: &checkOut,
		Status:       attendance.StatusCompleted,
	})
	require.NoError(t, err)
	return a
}

func TestMultiplierForShift(t *testing.T) {
	cfg := testConfig()

	tests := []struct {
		name      string
		shiftName string
		want      string
	}{
		{"plain day shift", "Morning", "1"},
		{"english night shift", "Night Shift", "1.5"},
		{"vietnamese night shift", "Ca Đêm", "1.5"},
		{"english holiday shift", "Holiday Cover", "2"},
		{"vietnamese holiday shift", "Ca Lễ", "2"},
		{"holiday wins over night", "Holiday Night", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MultiplierForShift(tt.shiftName, cfg)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestComputeLine(t *testing.T) {
	checkIn := time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC)

	t.Run("eight hours at flat rate", func(t *testing.T) {
		line := ComputeLine("att-1", "user-1", checkIn, checkIn.Add(8*time.Hour),
			decimal.NewFromInt(20000), decimal.NewFromInt(1), NoOvertime)

		assert.True(t, line.HoursWorked.Equal(decimal.NewFromInt(8)))
		assert.True(t, line.TotalAmount.Equal(decimal.NewFromInt(160000)))
		assert.True(t, line.OvertimeAmount.IsZero())
		assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), line.WorkDate)
	})

	t.Run("night multiplier raises the effective rate", func(t *testing.T) {
		line := ComputeLine("att-1", "user-1", checkIn, checkIn.Add(8*time.Hour),
			decimal.NewFromInt(20000), decimal.RequireFromString("1.5"), NoOvertime)

		assert.True(t, line.EffectiveRate.Equal(decimal.NewFromInt(30000)))
		assert.True(t, line.TotalAmount.Equal(decimal.NewFromInt(240000)))
	})

	t.Run("fractional hours are preserved", func(t *testing.T) {
		line := ComputeLine("att-1", "user-1", checkIn, checkIn.Add(7*time.Hour+30*time.Minute),
			decimal.NewFromInt(20000), decimal.NewFromInt(1), NoOvertime)

		assert.True(t, line.HoursWorked.Equal(decimal.RequireFromString("7.5")))
		assert.True(t, line.TotalAmount.Equal(decimal.NewFromInt(150000)))
	})

	t.Run("custom overtime split prices extra hours", func(t *testing.T) {
		after8 := func(hours, effectiveRate decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
			limit := decimal.NewFromInt(8)
			if hours.LessThanOrEqual(limit) {
				return hours, decimal.Zero, effectiveRate
			}
			return limit, hours.Sub(limit), effectiveRate.Mul(decimal.RequireFromString("1.5"))
		}

		line := ComputeLine("att-1", "user-1", checkIn, checkIn.Add(10*time.Hour),
			decimal.NewFromInt(20000), decimal.NewFromInt(1), after8)

		assert.True(t, line.RegularAmount.Equal(decimal.NewFromInt(160000)))
		assert.True(t, line.OvertimeAmount.Equal(decimal.NewFromInt(60000)))
		assert.True(t, line.TotalAmount.Equal(decimal.NewFromInt(220000)))
	})
}

func TestCalculateForAttendance(t *testing.T) {
	checkIn := time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC)

	t.Run("prices a completed attendance", func(t *testing.T) {
		f := newFixture()
		u := f.createUser(t, "20000")
		att := f.completedAttendance(t, u.ID, nil, checkIn, 8)

		resp, err := f.svc.CalculateForAttendance(context.Background(), payroll.CalculateLineRequest{
			AttendanceID: att.ID,
		})

		require.NoError(t, err)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(160000)))
		assert.True(t, resp.ShiftMultiplier.Equal(decimal.NewFromInt(1)))
		assert.Equal(t, "2026-03-11", resp.WorkDate)
	})

	t.Run("applies the night multiplier from the shift name", func(t *testing.T) {
		f := newFixture()
		u := f.createUser(t, "20000")
		night, err := f.shiftRepo.Create(context.Background(), shift.Shift{Name: "Night"})
		require.NoError(t, err)
		att := f.completedAttendance(t, u.ID, &night.ID, checkIn, 8)

		resp, err := f.svc.CalculateForAttendance(context.Background(), payroll.CalculateLineRequest{
			AttendanceID: att.ID,
		})

		require.NoError(t, err)
		assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(240000)))
	})

	t.Run("is idempotent per attendance", func(t *testing.T) {
		f := newFixture()
		u := f.createUser(t, "20000")
		att := f.completedAttendance(t, u.ID, nil, checkIn, 8)

		first, err := f.svc.CalculateForAttendance(context.Background(), payroll.CalculateLineRequest{AttendanceID: att.ID})
		require.NoError(t, err)
		second, err := f.svc.CalculateForAttendance(context.Background(), payroll.CalculateLineRequest{AttendanceID: att.ID})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, f.lineRepo.lines, 1)
	})

	t.Run("rejects an open attendance", func(t *testing.T) {
		f := newFixture()
		u := f.createUser(t, "20000")
		open, err := f.attendanceRepo.Create(context.Background(), attendance.Attendance{
			UserID:      u.ID,
			CheckInTime: checkIn,
			Status:      attendance.StatusCheckedIn,
		})
		require.NoError(t, err)

		_, err = f.svc.CalculateForAttendance(context.Background(), payroll.CalculateLineRequest{AttendanceID: open.ID})
		assert.ErrorIs(t, err, payroll.ErrAttendanceIncomplete)
	})

	t.Run("rejects a user without a salary rate", func(t *testing.T) {
		f := newFixture()
		u := f.createUser(t, "")
		att := f.completedAttendance(t, u.ID, nil, checkIn, 8)

		_, err := f.svc.CalculateForAttendance(context.Background(), payroll.CalculateLineRequest{AttendanceID: att.ID})
		assert.ErrorIs(t, err, payroll.ErrMissingSalaryRate)
	})

	t.Run("rejects a zero salary rate", func(t *testing.T) {
		f := newFixture()
		u := f.createUser(t, "0")
		att := f.completedAttendance(t, u.ID, nil, checkIn, 8)

		_, err := f.svc.CalculateForAttendance(context.Background(), payroll.CalculateLineRequest{AttendanceID: att.ID})
		assert.ErrorIs(t, err, payroll.ErrMissingSalaryRate)
		assert.Empty(t, f.lineRepo.lines)
	})
}

func TestGenerateMonthly(t *testing.T) {
	checkIn := time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC)

	calculate := func(t *testing.T, f *fixture, attendanceID string) {
		t.Helper()
		_, err := f.svc.CalculateForAttendance(context.Background(), payroll.CalculateLineRequest{AttendanceID: attendanceID})
		require.NoError(t, err)
	}

	t.Run("aggregates lines and adjustments into one statement", func(t *testing.T) {
		f := newFixture()
		u := f.createUser(t, "20000")

		att1 := f.completedAttendance(t, u.ID, nil, checkIn, 8)
		att2 := f.completedAttendance(t, u.ID, nil, checkIn.AddDate(0, 0, 1), 8)
		calculate(t, f, att1.ID)
		calculate(t, f, att2.ID)

		_, err := f.svc.CreateRewardPenalty(context.Background(), payroll.CreateRewardPenaltyRequest{
			UserID: u.ID, Type: "reward", Amount: decimal.NewFromInt(50000), Reason: "On-time streak",
			CreatedBy: "admin",
		})
		require.NoError(t, err)
		_, err = f.svc.CreateRewardPenalty(context.Background(), payroll.CreateRewardPenaltyRequest{
			UserID: u.ID, Type: "penalty", Amount: decimal.NewFromInt(20000), Reason: "Uniform violation",
			CreatedBy: "admin",
		})
		require.NoError(t, err)

		// Adjustments created "now" fall outside March 2026, so pin them.
		for id, rp := range f.rewardRepo.records {
			rp.CreatedAt = checkIn
			f.rewardRepo.records[id] = rp
		}

		statements, err := f.svc.GenerateMonthly(context.Background(), payroll.GenerateMonthlyRequest{
			Month: 3, Year: 2026,
		})

		require.NoError(t, err)
		require.Len(t, statements, 1)
		s := statements[0]
		assert.True(t, s.TotalHours.Equal(decimal.NewFromInt(16)), "hours: %s", s.TotalHours)
		assert.True(t, s.BaseSalary.Equal(decimal.NewFromInt(320000)), "base: %s", s.BaseSalary)
		assert.True(t, s.Bonuses.Equal(decimal.NewFromInt(50000)))
		assert.True(t, s.Penalties.Equal(decimal.NewFromInt(20000)))
		assert.True(t, s.NetSalary.Equal(decimal.NewFromInt(350000)), "net: %s", s.NetSalary)
		assert.NotEmpty(t, s.Details)
	})

	t.Run("keeps the existing statement on regeneration", func(t *testing.T) {
		f := newFixture()
		u := f.createUser(t, "20000")
		att := f.completedAttendance(t, u.ID, nil, checkIn, 8)
		calculate(t, f, att.ID)

		first, err := f.svc.GenerateMonthly(context.Background(), payroll.GenerateMonthlyRequest{Month: 3, Year: 2026})
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := f.svc.GenerateMonthly(context.Background(), payroll.GenerateMonthlyRequest{Month: 3, Year: 2026})
		require.NoError(t, err)
		require.Len(t, second, 1)

		assert.Equal(t, first[0].ID, second[0].ID)
		assert.Len(t, f.statementRepo.statements, 1)
	})

	t.Run("includes the fixed monthly salary", func(t *testing.T) {
		f := newFixture()
		u, err := f.userRepo.Create(context.Background(), user.User{
			Name:       "Binh Tran",
			Email:      "binh@example.com",
			Role:       user.RoleEmployee,
			BaseSalary: decimal.NewFromInt(5000000),
			IsActive:   true,
		})
		require.NoError(t, err)

		statements, err := f.svc.GenerateMonthly(context.Background(), payroll.GenerateMonthlyRequest{
			Month: 3, Year: 2026, UserID: &u.ID,
		})

		require.NoError(t, err)
		require.Len(t, statements, 1)
		assert.True(t, statements[0].NetSalary.Equal(decimal.NewFromInt(5000000)))
	})
}

func TestUpdateStatement(t *testing.T) {
	f := newFixture()
	u := f.createUser(t, "20000")

	statements, err := f.svc.GenerateMonthly(context.Background(), payroll.GenerateMonthlyRequest{
		Month: 3, Year: 2026, UserID: &u.ID,
	})
	require.NoError(t, err)
	require.Len(t, statements, 1)

	bonuses := decimal.NewFromInt(100000)
	penalties := decimal.NewFromInt(30000)
	updated, err := f.svc.UpdateStatement(context.Background(), payroll.UpdateStatementRequest{
		ID:        statements[0].ID,
		Bonuses:   &bonuses,
		Penalties: &penalties,
	})

	require.NoError(t, err)
	assert.True(t, updated.NetSalary.Equal(decimal.NewFromInt(70000)), "net: %s", updated.NetSalary)

	_, err = f.svc.UpdateStatement(context.Background(), payroll.UpdateStatementRequest{
		ID:      uuid.NewString(),
		Bonuses: &bonuses,
	})
	assert.ErrorIs(t, err, payroll.ErrStatementNotFound)
}

func TestGetMonthlySummary(t *testing.T) {
	f := newFixture()
	checkIn := time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC)

	u := f.createUser(t, "20000")
	att := f.completedAttendance(t, u.ID, nil, checkIn, 8)
	_, err := f.svc.CalculateForAttendance(context.Background(), payroll.CalculateLineRequest{AttendanceID: att.ID})
	require.NoError(t, err)

	_, err = f.svc.GenerateMonthly(context.Background(), payroll.GenerateMonthlyRequest{Month: 3, Year: 2026})
	require.NoError(t, err)

	summary, err := f.svc.GetMonthlySummary(context.Background(), 3, 2026)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.StatementCount)
	assert.True(t, summary.TotalNet.Equal(decimal.NewFromInt(160000)))
}

func TestGeneratePreviousMonthJob(t *testing.T) {
	f := newFixture()
	f.createUser(t, "20000")

	now := time.Date(2026, 4, 1, 2, 0, 0, 0, time.UTC)
	require.NoError(t, GeneratePreviousMonth(context.Background(), f.svc, now))

	statements, err := f.svc.ListStatements(context.Background(), 3, 2026)
	require.NoError(t, err)
	assert.Len(t, statements, 1)

	// Re-running must not duplicate statements.
	require.NoError(t, GeneratePreviousMonth(context.Background(), f.svc, now))
	statements, err = f.svc.ListStatements(context.Background(), 3, 2026)
	require.NoError(t, err)
	assert.Len(t, statements, 1)
}
