package booking

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound             = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomConflict         = apperror.New(http.StatusConflict, "room is already booked for the requested dates")
	ErrInvalidDateRange     = apperror.New(http.StatusBadRequest, "check-out must be after check-in")
	ErrInvalidStatus        = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition    = apperror.New(http.StatusBadRequest, "invalid booking status transition")
	ErrInvalidPaymentMethod = apperror.New(http.StatusBadRequest, "invalid payment method")
	ErrRoomNotFound         = apperror.New(http.StatusNotFound, "room not found")
	ErrGuestNotFound        = apperror.New(http.StatusNotFound, "guest not found")
	ErrUserNotFound         = apperror.New(http.StatusNotFound, "staff user not found")
)

type Status string

const (
	StatusBooked     Status = "booked"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

// Active reports whether a booking in this status occupies its room and
// therefore participates in overlap checking.
func (s Status) Active() bool {
	return s == StatusBooked || s == StatusCheckedIn
}

// PaymentMethods lists the accepted payment method values.
var PaymentMethods = []string{"cash", "card", "bank_transfer", "online"}

func validPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// Booking represents a guest's stay in a room over [CheckIn, CheckOut).
// UserID is the staff account that recorded the booking; it is nulled when
// that account is deleted.
type Booking struct {
	ID            string
	UserID        *string
	UserName      *string
	GuestID       string
	GuestName     string
	RoomID        string
	RoomNumber    string
	Status        Status
	PaymentMethod string
	CheckIn       time.Time
	CheckOut      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	GuestID  string
	RoomID   string
	Status   string
	From     *time.Time // bookings ending after this time
	To       *time.Time // bookings starting before this time
	Page     int
	PageSize int
}

// ConflictError is returned when a requested room/date range collides with
// existing active bookings. It carries the blocking bookings so callers can
// report which reservations are in the way.
type ConflictError struct {
	Conflicts []*Booking
}

func (e *ConflictError) Error() string {
	ids := make([]string, len(e.Conflicts))
	for i, b := range e.Conflicts {
		ids[i] = b.ID
	}
	return fmt.Sprintf("room is already booked for the requested dates (bookings: %s)", strings.Join(ids, ", "))
}

func (e *ConflictError) Unwrap() error {
	return ErrRoomConflict
}
