package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found or inactive")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminRequired = errors.New("admin access required")
	ErrStaffRequired = errors.New("admin or manager access required")
)
