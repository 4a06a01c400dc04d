package activity

import "context"

type ActivityRepository interface {
	Create(ctx context.Context, log *Log) error
	ListRecent(ctx context.Context, limit int) ([]Log, error)
}
