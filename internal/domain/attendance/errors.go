package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadySubmitted   = errors.New("attendance already submitted for this day")
	ErrSlotAlreadyTaken   = errors.New("this time slot is already taken for this day")
	ErrNotOwner           = errors.New("attendance record belongs to another seller")
	ErrNotCancellable     = errors.New("only scheduled attendance can be cancelled")
	ErrNotCheckInable     = errors.New("only scheduled attendance can be checked in")
	ErrNotCheckOutable    = errors.New("only checked-in attendance can be checked out")
	ErrSchedulingDisabled = errors.New("attendance scheduling is disabled")
	ErrPastDate           = errors.New("cannot schedule attendance for a past date")
	ErrTooFarAhead        = errors.New("cannot schedule attendance that far ahead")
)
