package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/cache"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/database"
)

const shiftListCacheKey = "shifts:list"

type shiftServiceImpl struct {
	shiftRepo      shift.ShiftRepository
	assignmentRepo shift.AssignmentRepository
	userRepo       user.UserRepository
	transactor     database.Transactor
	cache          *cache.Store

	// now is swapped out in tests.
	now func() time.Time
}

func NewShiftService(
	shiftRepo shift.ShiftRepository,
	assignmentRepo shift.AssignmentRepository,
	userRepo user.UserRepository,
	transactor database.Transactor,
	cacheStore *cache.Store,
) shift.ShiftService {
	return &shiftServiceImpl{
		shiftRepo:      shiftRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		transactor:     transactor,
		cache:          cacheStore,
		now:            time.Now,
	}
}

// CreateShift implements shift.ShiftService.
func (s *shiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	start, _ := time.Parse("15:04", req.StartTime)
	end, _ := time.Parse("15:04", req.EndTime)

	if err := shift.ValidateTimeConfig(start, end); err != nil {
		return shift.ShiftResponse{}, err
	}

	if _, err := s.shiftRepo.GetByName(ctx, req.Name); err == nil {
		return shift.ShiftResponse{}, shift.ErrShiftNameExists
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return shift.ShiftResponse{}, fmt.Errorf("failed to check shift name: %w", err)
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		Name:            req.Name,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: shift.DurationMinutes(start, end),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	s.cache.Invalidate(shiftListCacheKey)

	return toShiftResponse(created), nil
}

// UpdateShift implements shift.ShiftService.
func (s *shiftServiceImpl) UpdateShift(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	changed := false
	if req.Name != nil && *req.Name != existing.Name {
		other, err := s.shiftRepo.GetByName(ctx, *req.Name)
		if err == nil && other.ID != existing.ID {
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, fmt.Errorf("failed to check shift name: %w", err)
		}
		existing.Name = *req.Name
		changed = true
	}
	if req.StartTime != nil {
		start, _ := time.Parse("15:04", *req.StartTime)
		if !start.Equal(existing.StartTime) {
			existing.StartTime = start
			changed = true
		}
	}
	if req.EndTime != nil {
		end, _ := time.Parse("15:04", *req.EndTime)
		if !end.Equal(existing.EndTime) {
			existing.EndTime = end
			changed = true
		}
	}

	if !changed {
		return toShiftResponse(existing), nil
	}

	if err := shift.ValidateTimeConfig(existing.StartTime, existing.EndTime); err != nil {
		return shift.ShiftResponse{}, err
	}
	existing.DurationMinutes = shift.DurationMinutes(existing.StartTime, existing.EndTime)

	updated, err := s.shiftRepo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		if isUniqueViolation(err) {
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	s.cache.Invalidate(shiftListCacheKey)

	return toShiftResponse(updated), nil
}

// DeleteShift implements shift.ShiftService.
func (s *shiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	count, err := s.assignmentRepo.CountByShiftID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count assignments: %w", err)
	}
	if count > 0 {
		return shift.ErrShiftHasAssignments
	}

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if isForeignKeyViolation(err) {
			return shift.ErrShiftHasAssignments
		}
		return err
	}

	s.cache.Invalidate(shiftListCacheKey)

	return nil
}

// GetShift implements shift.ShiftService.
func (s *shiftServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	found, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return toShiftResponse(found), nil
}

// ListShifts implements shift.ShiftService.
func (s *shiftServiceImpl) ListShifts(ctx context.Context) ([]shift.ShiftResponse, error) {
	cached, err := s.cache.GetOrPopulate(shiftListCacheKey, func() (interface{}, error) {
		shifts, err := s.shiftRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list shifts: %w", err)
		}

		responses := make([]shift.ShiftResponse, 0, len(shifts))
		for _, sh := range shifts {
			responses = append(responses, toShiftResponse(sh))
		}
		return responses, nil
	})
	if err != nil {
		return nil, err
	}

	return cached.([]shift.ShiftResponse), nil
}

// AssignShift implements shift.ShiftService.
func (s *shiftServiceImpl) AssignShift(ctx context.Context, req shift.AssignShiftRequest) (shift.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.AssignmentResponse{}, err
	}

	shiftDate, _ := time.Parse("2006-01-02", req.ShiftDate)

	if err := shift.ValidateAssignmentDate(shiftDate, s.now()); err != nil {
		return shift.AssignmentResponse{}, err
	}

	assignee, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.AssignmentResponse{}, user.ErrUserNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !assignee.IsActive {
		return shift.AssignmentResponse{}, user.ErrUserNotFound
	}

	target, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.AssignmentResponse{}, shift.ErrShiftNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}

	status := shift.AssignmentStatusAssigned
	if req.Status != nil {
		status = shift.AssignmentStatus(*req.Status)
	}

	var created shift.Assignment
	err = s.transactor.WithinTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.assignmentRepo.Exists(txCtx, req.UserID, req.ShiftID, shiftDate)
		if err != nil {
			return fmt.Errorf("failed to check duplicate assignment: %w", err)
		}
		if exists {
			return shift.ErrDuplicateAssignment
		}

		// An overnight shift on an adjacent date can spill into the new
		// date, so the scan covers the day before through the day after.
		window, err := s.assignmentRepo.ListForUserBetween(
			txCtx, req.UserID, shiftDate.AddDate(0, 0, -1), shiftDate.AddDate(0, 0, 1),
		)
		if err != nil {
			return fmt.Errorf("failed to load adjacent assignments: %w", err)
		}

		slots := make([]shift.AssignedSlot, 0, len(window))
		for _, a := range window {
			if a.StartTime == nil || a.EndTime == nil {
				continue
			}
			slot := shift.AssignedSlot{
				AssignmentID: a.ID,
				Date:         a.ShiftDate,
				Start:        *a.StartTime,
				End:          *a.EndTime,
			}
			if a.ShiftName != nil {
				slot.ShiftName = *a.ShiftName
			}
			slots = append(slots, slot)
		}

		if conflict := shift.FindConflict(shiftDate, target.StartTime, target.EndTime, slots); conflict != nil {
			return fmt.Errorf("%w: %s on %s", shift.ErrConflictingSchedule,
				conflict.ShiftName, conflict.Date.Format("2006-01-02"))
		}

		created, err = s.assignmentRepo.Create(txCtx, shift.Assignment{
			UserID:    req.UserID,
			ShiftID:   req.ShiftID,
			ShiftDate: shiftDate,
			Status:    status,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return shift.ErrDuplicateAssignment
			}
			return fmt.Errorf("failed to create assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return shift.AssignmentResponse{}, err
	}

	created.UserName = &assignee.Name
	created.ShiftName = &target.Name
	created.StartTime = &target.StartTime
	created.EndTime = &target.EndTime

	return toAssignmentResponse(created), nil
}

// RemoveAssignment implements shift.ShiftService.
func (s *shiftServiceImpl) RemoveAssignment(ctx context.Context, id string) (shift.AssignmentResponse, error) {
	existing, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.AssignmentResponse{}, shift.ErrAssignmentNotFound
		}
		return shift.AssignmentResponse{}, fmt.Errorf("failed to get assignment: %w", err)
	}

	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		return shift.AssignmentResponse{}, err
	}

	return toAssignmentResponse(existing), nil
}

// UpdateAssignmentStatus implements shift.ShiftService.
func (s *shiftServiceImpl) UpdateAssignmentStatus(ctx context.Context, req shift.UpdateAssignmentStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.assignmentRepo.UpdateStatus(ctx, req.ID, shift.AssignmentStatus(req.Status))
}

// ListAssignments implements shift.ShiftService.
func (s *shiftServiceImpl) ListAssignments(ctx context.Context) ([]shift.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return toAssignmentResponses(assignments), nil
}

// ListAssignmentsByUser implements shift.ShiftService.
func (s *shiftServiceImpl) ListAssignmentsByUser(ctx context.Context, userID string) ([]shift.AssignmentResponse, error) {
	assignments, err := s.assignmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	return toAssignmentResponses(assignments), nil
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:              s.ID,
		Name:            s.Name,
		StartTime:       s.StartTime.Format("15:04"),
		EndTime:         s.EndTime.Format("15:04"),
		DurationMinutes: s.DurationMinutes,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}

func toAssignmentResponse(a shift.Assignment) shift.AssignmentResponse {
	resp := shift.AssignmentResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		ShiftID:   a.ShiftID,
		ShiftDate: a.ShiftDate.Format("2006-01-02"),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UserName:  a.UserName,
		ShiftName: a.ShiftName,
	}
	if a.StartTime != nil {
		start := a.StartTime.Format("15:04")
		resp.StartTime = &start
	}
	if a.EndTime != nil {
		end := a.EndTime.Format("15:04")
		resp.EndTime = &end
	}
	return resp
}

func toAssignmentResponses(assignments []shift.Assignment) []shift.AssignmentResponse {
	responses := make([]shift.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toAssignmentResponse(a))
	}
	return responses
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
