package activity

import "time"

// Action names recorded in the audit trail.
const (
	ActionLogin              = "login"
	ActionLogout             = "logout"
	ActionSellerCreated      = "seller_created"
	ActionSellerUpdated      = "seller_updated"
	ActionSellerDeleted      = "seller_deleted"
	ActionAttendanceSubmit   = "attendance_submitted"
	ActionAttendanceCancel   = "attendance_cancelled"
	ActionAttendanceCheckIn  = "attendance_checked_in"
	ActionAttendanceCheckOut = "attendance_checked_out"
)

type Log struct {
	ID        string
	UserID    *string
	Action    string
	Details   *string
	IPAddress *string
	UserAgent *string
	CreatedAt time.Time

	// Join
	Username *string
	FullName *string
}
