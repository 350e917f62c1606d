package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/domain/user"
)

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

func newTestService(t *testing.T) (attendance.AttendanceService, *fakeUserRepo, *fakeShiftRepo, func(time.Time)) {
	t.Helper()

	attendanceRepo := newFakeAttendanceRepo()
	userRepo := newFakeUserRepo()
	shiftRepo := newFakeShiftRepo()

	svc := NewAttendanceService(attendanceRepo, userRepo, shiftRepo)

	current := time.Date(2026, 3, 11, 7, 0, 0, 0, time.UTC)
	impl := svc.(*attendanceServiceImpl)
	impl.now = func() time.Time { return current }
	setNow := func(tm time.Time) { current = tm }

	return svc, userRepo, shiftRepo, setNow
}

func TestCheckInCheckOut(t *testing.T) {
	t.Run("records a full attendance cycle", func(t *testing.T) {
		svc, userRepo, _, setNow := newTestService(t)
		u, err := userRepo.Create(context.Background(), user.User{Name: "Alice", IsActive: true})
		require.NoError(t, err)

		checkedIn, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: u.ID})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusCheckedIn), checkedIn.Status)

		setNow(time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC))
		completed, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{UserID: u.ID})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusCompleted), completed.Status)
		require.NotNil(t, completed.CheckOutTime)
	})

	t.Run("rejects a second open check-in", func(t *testing.T) {
		svc, userRepo, _, _ := newTestService(t)
		u, err := userRepo.Create(context.Background(), user.User{Name: "Alice", IsActive: true})
		require.NoError(t, err)

		_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: u.ID})
		require.NoError(t, err)

		_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: u.ID})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("rejects check-out without an open record", func(t *testing.T) {
		svc, userRepo, _, _ := newTestService(t)
		u, err := userRepo.Create(context.Background(), user.User{Name: "Alice", IsActive: true})
		require.NoError(t, err)

		_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{UserID: u.ID})
		assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
	})

	t.Run("rejects an unknown user", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: uuid.NewString()})
		assert.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("rejects an unknown shift reference", func(t *testing.T) {
		svc, userRepo, _, _ := newTestService(t)
		u, err := userRepo.Create(context.Background(), user.User{Name: "Alice", IsActive: true})
		require.NoError(t, err)

		unknown := uuid.NewString()
		_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: u.ID, ShiftID: &unknown})
		assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	})

	t.Run("accepts a check-in against an existing shift", func(t *testing.T) {
		svc, userRepo, shiftRepo, _ := newTestService(t)
		u, err := userRepo.Create(context.Background(), user.User{Name: "Alice", IsActive: true})
		require.NoError(t, err)
		night, err := shiftRepo.Create(context.Background(), shift.Shift{Name: "Night"})
		require.NoError(t, err)

		resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: u.ID, ShiftID: &night.ID})
		require.NoError(t, err)
		require.NotNil(t, resp.ShiftID)
		assert.Equal(t, night.ID, *resp.ShiftID)
	})
}
