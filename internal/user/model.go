package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("staff user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("staff account is inactive")
	ErrInvalidRole        = errors.New("invalid role")
)

// Role classifies a staff account's privilege level.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User represents a staff account operating the front desk.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FullName     *string
	Phone        *string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// IsAdmin reports whether the account has administrative privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Filter defines filter options for listing staff users.
type Filter struct {
	Email    string
	FullName string
	Role     string
	IsActive *bool // pointer to distinguish between false and nil (not set)

	Page     int
	PageSize int
}
