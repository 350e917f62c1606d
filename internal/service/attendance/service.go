package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/user"
)

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	shiftRepo      shift.ShiftRepository

	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	userRepo user.UserRepository,
	shiftRepo shift.ShiftRepository,
) attendance.AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		shiftRepo:      shiftRepo,
		now:            time.Now,
	}
}

// CheckIn implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := s.userRepo.ExistsActive(ctx, req.UserID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return attendance.AttendanceResponse{}, user.ErrUserNotFound
	}

	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return attendance.AttendanceResponse{}, shift.ErrShiftNotFound
			}
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to get shift: %w", err)
		}
	}

	if _, err := s.attendanceRepo.GetOpenByUser(ctx, req.UserID); err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check open attendance: %w", err)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		UserID:      req.UserID,
		ShiftID:     req.ShiftID,
		CheckInTime: s.now(),
		Status:      attendance.StatusCheckedIn,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return toAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *attendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.attendanceRepo.GetOpenByUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get open attendance: %w", err)
	}

	checkOut := s.now()
	if !checkOut.After(open.CheckInTime) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	updated, err := s.attendanceRepo.SetCheckOut(ctx, open.ID, checkOut)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return toAttendanceResponse(updated), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *attendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	found, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return toAttendanceResponse(found), nil
}

// ListByUser implements attendance.AttendanceService.
func (s *attendanceServiceImpl) ListByUser(ctx context.Context, userID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, toAttendanceResponse(a))
	}
	return responses, nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		ShiftID:     a.ShiftID,
		CheckInTime: a.CheckInTime.Format(time.RFC3339),
		Status:      string(a.Status),
		UserName:    a.UserName,
		ShiftName:   a.ShiftName,
	}
	if a.CheckOutTime != nil {
		out := a.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &out
	}
	return resp
}
