package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/database"
)

type lineRepositoryImpl struct {
	db *database.DB
}

func NewLineRepository(db *database.DB) payroll.LineRepository {
	return &lineRepositoryImpl{db: db}
}

const lineSelect = `
	SELECT
		pl.id, pl.attendance_id, pl.user_id, pl.work_date,
		pl.salary_rate, pl.shift_multiplier, pl.effective_rate,
		pl.hours_worked, pl.overtime_hours, pl.overtime_rate,
		pl.regular_amount, pl.overtime_amount, pl.total_amount,
		pl.created_at,
		u.name AS user_name
	FROM payroll_lines pl
	JOIN users u ON u.id = pl.user_id
`

func scanLine(row interface {
	Scan(dest ...interface{}) error
}) (payroll.Line, error) {
	var l payroll.Line
	err := row.Scan(
		&l.ID, &l.AttendanceID, &l.UserID, &l.WorkDate,
		&l.SalaryRate, &l.ShiftMultiplier, &l.EffectiveRate,
		&l.HoursWorked, &l.OvertimeHours, &l.OvertimeRate,
		&l.RegularAmount, &l.OvertimeAmount, &l.TotalAmount,
		&l.CreatedAt,
		&l.UserName,
	)
	return l, err
}

// Create implements payroll.LineRepository.
func (r *lineRepositoryImpl) Create(ctx context.Context, line payroll.Line) (payroll.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_lines (
			id, attendance_id, user_id, work_date,
			salary_rate, shift_multiplier, effective_rate,
			hours_worked, overtime_hours, overtime_rate,
			regular_amount, overtime_amount, total_amount,
			created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		line.AttendanceID, line.UserID, line.WorkDate,
		line.SalaryRate, line.ShiftMultiplier, line.EffectiveRate,
		line.HoursWorked, line.OvertimeHours, line.OvertimeRate,
		line.RegularAmount, line.OvertimeAmount, line.TotalAmount,
	).Scan(&line.ID, &line.CreatedAt)
	if err != nil {
		return payroll.Line{}, err
	}

	return line, nil
}

// GetByID implements payroll.LineRepository.
func (r *lineRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := lineSelect + ` WHERE pl.id = $1`

	return scanLine(q.QueryRow(ctx, query, id))
}

// GetByAttendanceID implements payroll.LineRepository.
func (r *lineRepositoryImpl) GetByAttendanceID(ctx context.Context, attendanceID string) (payroll.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := lineSelect + ` WHERE pl.attendance_id = $1`

	return scanLine(q.QueryRow(ctx, query, attendanceID))
}

// ListByDate implements payroll.LineRepository.
func (r *lineRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]payroll.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := lineSelect + `
		WHERE pl.work_date = $1
		ORDER BY u.name ASC
	`

	return r.queryLines(ctx, q, query, date)
}

// ListByUserInRange implements payroll.LineRepository.
func (r *lineRepositoryImpl) ListByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]payroll.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := lineSelect + `
		WHERE pl.user_id = $1
		  AND pl.work_date >= $2
		  AND pl.work_date < $3
		ORDER BY pl.work_date ASC
	`

	return r.queryLines(ctx, q, query, userID, from, to)
}

func (r *lineRepositoryImpl) queryLines(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]payroll.Line, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll lines: %w", err)
	}
	defer rows.Close()

	var lines []payroll.Line
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll line: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}
