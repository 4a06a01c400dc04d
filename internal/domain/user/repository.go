package user

import "context"

// SellerStats summarizes the seller roster for the admin user-management page.
type SellerStats struct {
	Total    int64
	Active   int64
	Inactive int64
	Newbie   int64
	Tenured  int64
}

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	// Create inserts a new account. Unique violations on username/email are
	// mapped to ErrUsernameExists / ErrEmailExists.
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)

	// List retrieves accounts with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]User, int64, error)

	Update(ctx context.Context, u User) error
	UpdateStatus(ctx context.Context, id string, status AccountStatus) error

	// Delete removes the account row. Attendance rows cascade at the schema
	// level; the caller is responsible for removing owned image files first.
	Delete(ctx context.Context, id string) error

	GetSellerStats(ctx context.Context) (SellerStats, error)
}
