package user

import "errors"

// User domain errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrUserNotPending         = errors.New("user is not awaiting approval")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrHRPrivilegeRequired    = errors.New("hr or admin privilege required")
)
