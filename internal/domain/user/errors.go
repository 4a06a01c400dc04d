package user

import "errors"

// User domain errors
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already taken")
	ErrEmailExists    = errors.New("email already registered")

	ErrAdminAccessRequired  = errors.New("admin access required")
	ErrSellerAccessRequired = errors.New("live seller access required")
)
