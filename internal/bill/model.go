package bill

import (
	"net/http"
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "bill not found")
	ErrPaymentNotFound  = apperror.New(http.StatusNotFound, "payment not found")
	ErrDuplicateBill    = apperror.New(http.StatusConflict, "a bill already exists for this booking")
	ErrOverpayment      = apperror.New(http.StatusUnprocessableEntity, "payment amount exceeds the outstanding balance")
	ErrHasPayments      = apperror.New(http.StatusConflict, "bill still has payments")
	ErrInvalidAmount    = apperror.New(http.StatusBadRequest, "amount must be positive")
	ErrNegativeCharge   = apperror.New(http.StatusBadRequest, "charge amounts must not be negative")
	ErrInvalidStayRange = apperror.New(http.StatusBadRequest, "check-out must be after check-in")
	ErrNegativeTotal    = apperror.New(http.StatusBadRequest, "total amount must not be negative")
	ErrTotalBelowPaid   = apperror.New(http.StatusUnprocessableEntity, "total amount cannot drop below the amount already paid")
	ErrInvalidMethod    = apperror.New(http.StatusBadRequest, "invalid payment method")
	ErrBookingNotFound  = apperror.New(http.StatusNotFound, "booking not found")
	ErrUserNotFound     = apperror.New(http.StatusNotFound, "staff user not found")
)

// Bill is the final bill for one booking. All amounts are minor currency
// units. TotalAmount, PaidAmount and OutstandingAmount are stored but
// derived: the total from the charge columns, the paid amount from the sum
// of the bill's payment rows, and outstanding = total - paid. They are only
// ever rewritten from those sources, never incremented.
type Bill struct {
	ID                  string
	UserID              *string
	UserName            *string
	BookingID           string
	RoomCharges         int64
	TotalServiceCharges int64
	TotalTax            int64
	TotalDiscount       int64
	LateCheckoutCharge  int64
	TotalAmount         int64
	PaidAmount          int64
	OutstandingAmount   int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Payment is one recorded payment against a bill. BillID is mutable: a
// mis-filed payment can be re-pointed at another bill, after which both
// bills' derived amounts are recomputed.
type Payment struct {
	ID         string
	BillID     string
	Method     string
	PaidAmount int64
	PaidAt     time.Time
	CreatedAt  time.Time
}

type Filter struct {
	BookingID string
	UserID    string
	Page      int
	PageSize  int
}

type PaymentFilter struct {
	BillID   string
	Page     int
	PageSize int
}
