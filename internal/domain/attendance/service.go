package attendance

import "context"

// AttendanceService covers the manual attendance path. Face-recognition
// check-in is an external collaborator that writes the same records.
type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	ListByUser(ctx context.Context, userID string) ([]AttendanceResponse, error)
}
