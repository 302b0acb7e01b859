package roomtype

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("room type not found")
	ErrNameRequired = errors.New("room type name is required")
	ErrInvalidRate  = errors.New("daily rate must be positive")
)

// RoomType represents a category of rooms (e.g., Standard Double, Suite).
// DailyRate is expressed in minor currency units.
type RoomType struct {
	ID          string
	Name        string
	Description string
	Capacity    int
	DailyRate   int64
	CreatedAt   time.Time
}

// Filter defines parameters for listing room types.
type Filter struct {
	Keyword  string
	Page     int
	PageSize int
}
