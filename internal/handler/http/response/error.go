package response

import (
	"errors"
	"net/http"

	"github.com/hrms-labs/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/job"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/user"
	"github.com/hrms-labs/hrms-backend-go/internal/pkg/validator"
	"github.com/hrms-labs/hrms-backend-go/internal/service/reconcile"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountNotActive):
		Forbidden(w, "Account is not active")
	case errors.Is(err, auth.ErrOAuthDisabled):
		BadRequest(w, "Google login is not configured", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserNotPending):
		Conflict(w, "User is not awaiting approval")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrHRPrivilegeRequired):
		Forbidden(w, "HR or admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered to an employee")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for this day")
	case errors.Is(err, reconcile.ErrNoDate):
		BadRequest(w, "No usable date field in request", nil)
	case errors.Is(err, reconcile.ErrNoIdentity):
		BadRequest(w, "No usable identity field in request", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "Leave end date is before start date", nil)

	// Job domain errors
	case errors.Is(err, job.ErrJobNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, job.ErrJobClosed):
		Conflict(w, "Job posting is closed")
	case errors.Is(err, job.ErrAlreadyApplied):
		Conflict(w, "Already applied to this job posting")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
