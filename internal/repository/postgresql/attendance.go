package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceSelect = `
	SELECT
		a.id, a.user_id, a.shift_id, a.check_in_time, a.check_out_time, a.status, a.created_at, a.updated_at,
		u.name AS user_name,
		s.name AS shift_name
	FROM attendances a
	JOIN users u ON u.id = a.user_id
	LEFT JOIN shifts s ON s.id = a.shift_id
`

func scanAttendance(row interface {
	Scan(dest ...interface{}) error
}) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.UserID, &a.ShiftID, &a.CheckInTime, &a.CheckOutTime, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.UserName, &a.ShiftName,
	)
	return a, err
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, user_id, shift_id, check_in_time, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.UserID, a.ShiftID, a.CheckInTime, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, err
	}

	return a, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.id = $1`

	return scanAttendance(q.QueryRow(ctx, query, id))
}

// GetOpenByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetOpenByUser(ctx context.Context, userID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE a.user_id = $1 AND a.check_out_time IS NULL
		ORDER BY a.check_in_time DESC
		LIMIT 1
	`

	return scanAttendance(q.QueryRow(ctx, query, userID))
}

// SetCheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out_time = $2, status = 'completed', updated_at = NOW()
		WHERE id = $1 AND check_out_time IS NULL
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id, checkOut).Scan(&updatedID); err != nil {
		return attendance.Attendance{}, err
	}

	return r.GetByID(ctx, updatedID)
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE a.user_id = $1
		ORDER BY a.check_in_time DESC
	`

	return r.queryAttendances(ctx, q, query, userID)
}

// ListCompletedByUserInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListCompletedByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + `
		WHERE a.user_id = $1
		  AND a.status = 'completed'
		  AND a.check_in_time >= $2
		  AND a.check_in_time < $3
		ORDER BY a.check_in_time ASC
	`

	return r.queryAttendances(ctx, q, query, userID, from, to)
}

func (r *attendanceRepositoryImpl) queryAttendances(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.Attendance, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	return records, rows.Err()
}
