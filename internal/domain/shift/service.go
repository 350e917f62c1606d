package shift

import "context"

type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context) ([]ShiftResponse, error)

	AssignShift(ctx context.Context, req AssignShiftRequest) (AssignmentResponse, error)
	RemoveAssignment(ctx context.Context, id string) (AssignmentResponse, error)
	UpdateAssignmentStatus(ctx context.Context, req UpdateAssignmentStatusRequest) error
	ListAssignments(ctx context.Context) ([]AssignmentResponse, error)
	ListAssignmentsByUser(ctx context.Context, userID string) ([]AssignmentResponse, error)
}
