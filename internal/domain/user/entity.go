package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"       // Agency staff - manages sellers and reviews submissions
	RoleLiveSeller Role = "live_seller" // Live host - submits daily attendance
)

type ExperienceStatus string

const (
	ExperienceNewbie  ExperienceStatus = "newbie"
	ExperienceTenured ExperienceStatus = "tenured"
)

type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusInactive AccountStatus = "inactive"
)

type User struct {
	ID               string
	Username         string
	Email            string
	PasswordHash     *string
	Role             Role
	FullName         string
	ProfileImagePath *string
	ExperienceStatus ExperienceStatus
	Status           AccountStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsAdmin checks if user is agency staff
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsLiveSeller checks if user is a live host
func (u *User) IsLiveSeller() bool {
	return u.Role == RoleLiveSeller
}

// IsActive checks if the account may log in and submit attendance
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
