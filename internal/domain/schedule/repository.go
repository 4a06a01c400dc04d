package schedule

import "context"

type TimeSlotRepository interface {
	// GetOrCreate resolves the slot for the given window, inserting it if
	// absent. The insert is atomic (upsert on the window key) so concurrent
	// submissions of a new window converge on one row.
	GetOrCreate(ctx context.Context, slot *TimeSlot) (*TimeSlot, error)
	GetByID(ctx context.Context, id string) (*TimeSlot, error)
	ListActive(ctx context.Context) ([]TimeSlot, error)
}
