package schedule

import "errors"

var (
	ErrTimeSlotNotFound = errors.New("time slot not found")
)
