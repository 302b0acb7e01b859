package room

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("room not found")
	ErrNumberRequired  = errors.New("room number is required")
	ErrInvalidBranch   = errors.New("invalid branch_id")
	ErrInvalidRoomType = errors.New("invalid room_type_id")
	ErrInvalidStatus   = errors.New("invalid room status")
)

// Status marks whether a room can currently be booked.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusMaintenance Status = "maintenance"
)

// Room represents a bookable hotel room.
// BranchName, RoomTypeName and DailyRate are joined for display and billing.
type Room struct {
	ID           string
	Number       string
	Floor        int
	BranchID     string
	BranchName   string
	RoomTypeID   string
	RoomTypeName string
	DailyRate    int64
	Status       Status
	CreatedAt    time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	BranchID   string
	RoomTypeID string
	Status     string
	Page       int
	PageSize   int
}
