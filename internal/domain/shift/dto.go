package shift

import (
	"github.com/cmlabs-hris/shiftpay-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"` // HH:MM format
	EndTime   string `json:"end_time"`   // HH:MM format
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time is required",
		})
	} else if _, valid := validator.IsValidTime(r.StartTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time in HH:MM format",
		})
	}
	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time is required",
		})
	} else if _, valid := validator.IsValidTime(r.EndTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID        string  `json:"-"`
	Name      *string `json:"name"`
	StartTime *string `json:"start_time"` // HH:MM format
	EndTime   *string `json:"end_time"`   // HH:MM format
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StartTime != nil {
		if _, valid := validator.IsValidTime(*r.StartTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be a valid time in HH:MM format",
			})
		}
	}
	if r.EndTime != nil {
		if _, valid := validator.IsValidTime(*r.EndTime); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be a valid time in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ShiftResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

type AssignShiftRequest struct {
	UserID    string  `json:"user_id"`
	ShiftID   string  `json:"shift_id"`
	ShiftDate string  `json:"shift_date"` // YYYY-MM-DD format
	Status    *string `json:"status,omitempty"`
}

func (r *AssignShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}
	if validator.IsEmpty(r.ShiftDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date is required",
		})
	} else if _, valid := validator.IsValidDate(r.ShiftDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_date",
			Message: "shift_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, AssignmentStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: assigned, completed, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateAssignmentStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if !validator.IsInSlice(r.Status, AssignmentStatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: assigned, completed, cancelled",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	ShiftID   string  `json:"shift_id"`
	ShiftDate string  `json:"shift_date"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UserName  *string `json:"user_name,omitempty"`
	ShiftName *string `json:"shift_name,omitempty"`
	StartTime *string `json:"start_time,omitempty"`
	EndTime   *string `json:"end_time,omitempty"`
}
