package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentSelect = `
	SELECT
		sa.id, sa.user_id, sa.shift_id, sa.shift_date, sa.status, sa.created_at, sa.updated_at,
		u.name AS user_name,
		s.name AS shift_name,
		s.start_time,
		s.end_time
	FROM shift_assignments sa
	JOIN users u ON u.id = sa.user_id
	JOIN shifts s ON s.id = sa.shift_id
`

func scanAssignment(row interface {
	Scan(dest ...interface{}) error
}) (shift.Assignment, error) {
	var a shift.Assignment
	err := row.Scan(
		&a.ID, &a.UserID, &a.ShiftID, &a.ShiftDate, &a.Status, &a.CreatedAt, &a.UpdatedAt,
		&a.UserName, &a.ShiftName, &a.StartTime, &a.EndTime,
	)
	return a, err
}

// Create implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (
			id, user_id, shift_id, shift_date, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.UserID, a.ShiftID, a.ShiftDate, a.Status,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return shift.Assignment{}, err
	}

	return a, nil
}

// GetByID implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := assignmentSelect + ` WHERE sa.id = $1`

	return scanAssignment(q.QueryRow(ctx, query, id))
}

// Exists implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Exists(ctx context.Context, userID, shiftID string, shiftDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM shift_assignments
			WHERE user_id = $1 AND shift_id = $2 AND shift_date = $3 AND status <> 'cancelled'
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, userID, shiftID, shiftDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check assignment existence: %w", err)
	}

	return exists, nil
}

// ListForUserBetween implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListForUserBetween(ctx context.Context, userID string, from, to time.Time) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := assignmentSelect + `
		WHERE sa.user_id = $1
		  AND sa.shift_date BETWEEN $2 AND $3
		  AND sa.status <> 'cancelled'
		ORDER BY sa.shift_date ASC, s.start_time ASC
	`

	return r.queryAssignments(ctx, q, query, userID, from, to)
}

// List implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := assignmentSelect + ` ORDER BY sa.shift_date ASC, s.name ASC`

	return r.queryAssignments(ctx, q, query)
}

// ListByUser implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := assignmentSelect + `
		WHERE sa.user_id = $1
		ORDER BY sa.shift_date ASC, s.name ASC
	`

	return r.queryAssignments(ctx, q, query, userID)
}

// UpdateStatus implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) UpdateStatus(ctx context.Context, id string, status shift.AssignmentStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_assignments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}

// Delete implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}

// CountByShiftID implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) CountByShiftID(ctx context.Context, shiftID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM shift_assignments WHERE shift_id = $1`, shiftID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}

	return count, nil
}

func (r *assignmentRepositoryImpl) queryAssignments(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]shift.Assignment, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}
