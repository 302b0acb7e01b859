package guest

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("guest not found")
	ErrNameRequired = errors.New("guest name is required")
)

// Guest represents a hotel guest that bookings and bills reference.
type Guest struct {
	ID         string
	FullName   string
	Email      *string
	Phone      *string
	DocumentID *string
	CreatedAt  time.Time
}

// Filter defines parameters for listing guests.
type Filter struct {
	Keyword  string // search in name, email or phone
	Page     int
	PageSize int
}
