package branch

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("branch not found")
	ErrNameRequired = errors.New("branch name is required")
)

// Branch represents a physical hotel location.
type Branch struct {
	ID          string
	Name        string
	Address     string
	Phone       *string
	Description string
	CreatedAt   time.Time
}

// Filter defines parameters for listing branches.
type Filter struct {
	Keyword  string // search in name or address
	Page     int
	PageSize int
}
