package amenity

import (
	"net/http"
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "amenity not found")
	ErrUsageNotFound   = apperror.New(http.StatusNotFound, "service usage not found")
	ErrInvalidPrice    = apperror.New(http.StatusBadRequest, "unit price must be positive")
	ErrInvalidQuantity = apperror.New(http.StatusBadRequest, "quantity must be positive")
	ErrBookingNotFound = apperror.New(http.StatusNotFound, "booking not found")
)

// Amenity is a chargeable service offered to guests, priced in minor currency
// units per unit of use.
type Amenity struct {
	ID          string
	Name        string
	Description string
	UnitPrice   int64
	CreatedAt   time.Time
}

// Usage records one use of an amenity during a booking. Amount snapshots
// unit price x quantity at recording time, so later price changes do not
// rewrite history.
type Usage struct {
	ID          string
	AmenityID   string
	AmenityName string
	BookingID   string
	Quantity    int
	Amount      int64
	UsedAt      time.Time
	CreatedAt   time.Time
}

type Filter struct {
	Keyword  string
	Page     int
	PageSize int
}
