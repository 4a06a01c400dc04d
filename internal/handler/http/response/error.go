package response

import (
	"errors"
	"net/http"

	"github.com/livehost-agency/agency-backend-go/internal/domain/attendance"
	"github.com/livehost-agency/agency-backend-go/internal/domain/auth"
	"github.com/livehost-agency/agency-backend-go/internal/domain/schedule"
	"github.com/livehost-agency/agency-backend-go/internal/domain/user"
	"github.com/livehost-agency/agency-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, user.ErrSellerAccessRequired):
		Forbidden(w, "Live seller access required")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "USERNAME_EXISTS", "Username already taken")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "EMAIL_EXISTS", "Email already registered")

	// Attendance domain errors. The two conflict cases carry distinct
	// codes so clients can tell "day taken" from "slot taken".
	case errors.Is(err, attendance.ErrAlreadySubmitted):
		Conflict(w, "ALREADY_SUBMITTED", "Attendance already submitted for this day")
	case errors.Is(err, attendance.ErrSlotAlreadyTaken):
		Conflict(w, "SLOT_TAKEN", "This time slot is already taken for this day")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotOwner):
		Forbidden(w, "Attendance record belongs to another seller")
	case errors.Is(err, attendance.ErrNotCancellable):
		Conflict(w, "NOT_CANCELLABLE", "Only scheduled attendance can be cancelled")
	case errors.Is(err, attendance.ErrNotCheckInable):
		Conflict(w, "NOT_CHECKINABLE", "Only scheduled attendance can be checked in")
	case errors.Is(err, attendance.ErrNotCheckOutable):
		Conflict(w, "NOT_CHECKOUTABLE", "Only checked-in attendance can be checked out")
	case errors.Is(err, attendance.ErrSchedulingDisabled):
		Forbidden(w, "Attendance scheduling is disabled")
	case errors.Is(err, attendance.ErrPastDate):
		BadRequest(w, "Cannot schedule attendance for a past date", nil)
	case errors.Is(err, attendance.ErrTooFarAhead):
		BadRequest(w, "Cannot schedule attendance that far ahead", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrTimeSlotNotFound):
		NotFound(w, "Time slot not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
