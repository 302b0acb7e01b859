package bill

import (
	"context"
	"errors"
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/amenity"
	"github.com/stayforge/hotel-booking-backend/internal/booking"
	"github.com/stayforge/hotel-booking-backend/internal/room"
	"github.com/stayforge/hotel-booking-backend/internal/user"
)

type CreateBillRequest struct {
	UserID             string // acting staff account
	BookingID          string
	TotalTax           int64
	TotalDiscount      int64
	LateCheckoutCharge int64
}

// UpdateBillRequest carries the editable bill fields. Room and service
// charges are not in it: they are always re-derived from the booking's stay
// dates and usage rows on update.
type UpdateBillRequest struct {
	UserID             *string
	TotalTax           *int64
	TotalDiscount      *int64
	LateCheckoutCharge *int64
}

type AddPaymentRequest struct {
	BillID string
	Method string
	Amount int64
	PaidAt *time.Time
}

type UpdatePaymentRequest struct {
	BillID *string
	Method *string
	Amount *int64
	PaidAt *time.Time
}

type Service interface {
	CreateBill(ctx context.Context, req CreateBillRequest) (*Bill, error)
	GetBill(ctx context.Context, id string) (*Bill, error)
	ListBills(ctx context.Context, filter Filter) ([]*Bill, int, error)
	UpdateBill(ctx context.Context, id string, req UpdateBillRequest) (*Bill, error)
	DeleteBill(ctx context.Context, id string) error

	// RecomputePaidAmount re-derives a bill's paid and outstanding amounts
	// from its payment rows, discarding the stored values.
	RecomputePaidAmount(ctx context.Context, billID string) (*Bill, error)

	AddPayment(ctx context.Context, req AddPaymentRequest) (*Payment, error)
	GetPayment(ctx context.Context, id string) (*Payment, error)
	ListPayments(ctx context.Context, filter PaymentFilter) ([]*Payment, int, error)
	UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) (*Payment, error)
	DeletePayment(ctx context.Context, id string) error
}

type service struct {
	repo           Repository
	bookingService booking.Service
	roomService    room.Service
	userService    user.Service
	amenityService amenity.Service
}

func NewService(
	repo Repository,
	bookingService booking.Service,
	roomService room.Service,
	userService user.Service,
	amenityService amenity.Service,
) Service {
	return &service{
		repo:           repo,
		bookingService: bookingService,
		roomService:    roomService,
		userService:    userService,
		amenityService: amenityService,
	}
}

func validMethod(m string) bool {
	for _, pm := range booking.PaymentMethods {
		if m == pm {
			return true
		}
	}
	return false
}

// recompute rewrites a bill's paid and outstanding amounts from the
// authoritative payment sum. Always called inside a bill-locked transaction.
func recompute(ctx context.Context, tx TxRepository, billID string) error {
	b, err := tx.GetBill(ctx, billID)
	if err != nil {
		return err
	}
	paid, err := tx.SumPayments(ctx, billID)
	if err != nil {
		return err
	}
	return tx.SetDerivedAmounts(ctx, billID, paid, b.TotalAmount-paid)
}

func (s *service) CreateBill(ctx context.Context, req CreateBillRequest) (*Bill, error) {
	if req.TotalTax < 0 || req.TotalDiscount < 0 || req.LateCheckoutCharge < 0 {
		return nil, ErrNegativeCharge
	}

	if _, err := s.userService.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	bk, err := s.bookingService.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	rm, err := s.roomService.GetByID(ctx, bk.RoomID)
	if err != nil {
		return nil, err
	}

	roomCharges, err := RoomCharges(rm.DailyRate, bk.CheckIn, bk.CheckOut)
	if err != nil {
		return nil, err
	}

	serviceCharges, err := s.amenityService.TotalCharges(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	total := Total(roomCharges, serviceCharges, req.TotalTax, req.LateCheckoutCharge, req.TotalDiscount)
	if total < 0 {
		return nil, ErrNegativeTotal
	}

	userID := req.UserID
	b := &Bill{
		UserID:              &userID,
		BookingID:           req.BookingID,
		RoomCharges:         roomCharges,
		TotalServiceCharges: serviceCharges,
		TotalTax:            req.TotalTax,
		TotalDiscount:       req.TotalDiscount,
		LateCheckoutCharge:  req.LateCheckoutCharge,
		TotalAmount:         total,
		PaidAmount:          0,
		OutstandingAmount:   total,
	}
	if err := s.repo.InsertBill(ctx, b); err != nil {
		return nil, err
	}

	created, err := s.repo.GetBill(ctx, b.ID)
	if err != nil {
		return b, nil
	}
	return created, nil
}

func (s *service) GetBill(ctx context.Context, id string) (*Bill, error) {
	return s.repo.GetBill(ctx, id)
}

func (s *service) ListBills(ctx context.Context, filter Filter) ([]*Bill, int, error) {
	return s.repo.ListBills(ctx, filter)
}

func (s *service) UpdateBill(ctx context.Context, id string, req UpdateBillRequest) (*Bill, error) {
	if req.UserID != nil {
		if _, err := s.userService.GetByID(ctx, *req.UserID); err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
	}

	current, err := s.repo.GetBill(ctx, id)
	if err != nil {
		return nil, err
	}

	bk, err := s.bookingService.GetByID(ctx, current.BookingID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	rm, err := s.roomService.GetByID(ctx, bk.RoomID)
	if err != nil {
		return nil, err
	}

	roomCharges, err := RoomCharges(rm.DailyRate, bk.CheckIn, bk.CheckOut)
	if err != nil {
		return nil, err
	}
	serviceCharges, err := s.amenityService.TotalCharges(ctx, current.BookingID)
	if err != nil {
		return nil, err
	}

	// The write and the derived-amount refresh happen under the bill lock so
	// a concurrent payment cannot interleave between them.
	err = s.repo.WithBillLock(ctx, []string{id}, func(tx TxRepository) error {
		b, err := tx.GetBill(ctx, id)
		if err != nil {
			return err
		}

		if req.UserID != nil {
			userID := *req.UserID
			b.UserID = &userID
		}
		if req.TotalTax != nil {
			b.TotalTax = *req.TotalTax
		}
		if req.TotalDiscount != nil {
			b.TotalDiscount = *req.TotalDiscount
		}
		if req.LateCheckoutCharge != nil {
			b.LateCheckoutCharge = *req.LateCheckoutCharge
		}
		if b.TotalTax < 0 || b.TotalDiscount < 0 || b.LateCheckoutCharge < 0 {
			return ErrNegativeCharge
		}

		b.RoomCharges = roomCharges
		b.TotalServiceCharges = serviceCharges
		b.TotalAmount = Total(b.RoomCharges, b.TotalServiceCharges, b.TotalTax, b.LateCheckoutCharge, b.TotalDiscount)
		if b.TotalAmount < 0 {
			return ErrNegativeTotal
		}

		paid, err := tx.SumPayments(ctx, id)
		if err != nil {
			return err
		}
		if b.TotalAmount < paid {
			return ErrTotalBelowPaid
		}

		if err := tx.UpdateBillCharges(ctx, b); err != nil {
			return err
		}
		return tx.SetDerivedAmounts(ctx, id, paid, b.TotalAmount-paid)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetBill(ctx, id)
}

func (s *service) DeleteBill(ctx context.Context, id string) error {
	if _, err := s.repo.GetBill(ctx, id); err != nil {
		return err
	}
	return s.repo.DeleteBill(ctx, id)
}

func (s *service) RecomputePaidAmount(ctx context.Context, billID string) (*Bill, error) {
	err := s.repo.WithBillLock(ctx, []string{billID}, func(tx TxRepository) error {
		return recompute(ctx, tx, billID)
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetBill(ctx, billID)
}

func (s *service) AddPayment(ctx context.Context, req AddPaymentRequest) (*Payment, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if !validMethod(req.Method) {
		return nil, ErrInvalidMethod
	}

	paidAt := time.Now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	p := &Payment{
		BillID:     req.BillID,
		Method:     req.Method,
		PaidAmount: req.Amount,
		PaidAt:     paidAt,
	}

	// The outstanding amount is re-read inside the locked transaction; a
	// value observed before the lock may already be stale.
	err := s.repo.WithBillLock(ctx, []string{req.BillID}, func(tx TxRepository) error {
		b, err := tx.GetBill(ctx, req.BillID)
		if err != nil {
			return err
		}
		if req.Amount > b.OutstandingAmount {
			return ErrOverpayment
		}
		if err := tx.InsertPayment(ctx, p); err != nil {
			return err
		}
		return recompute(ctx, tx, req.BillID)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPayment(ctx context.Context, id string) (*Payment, error) {
	return s.repo.GetPayment(ctx, id)
}

func (s *service) ListPayments(ctx context.Context, filter PaymentFilter) ([]*Payment, int, error) {
	return s.repo.ListPayments(ctx, filter)
}

func (s *service) UpdatePayment(ctx context.Context, id string, req UpdatePaymentRequest) (*Payment, error) {
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Method != nil && !validMethod(*req.Method) {
		return nil, ErrInvalidMethod
	}

	existing, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	oldBillID := existing.BillID
	newBillID := oldBillID
	if req.BillID != nil {
		newBillID = *req.BillID
	}

	var updated *Payment
	// Both bills are locked (WithBillLock orders ids ascending) so the
	// reparenting recompute of the old bill and the overpayment check on the
	// new one see a consistent world.
	err = s.repo.WithBillLock(ctx, []string{oldBillID, newBillID}, func(tx TxRepository) error {
		p, err := tx.GetPayment(ctx, id)
		if err != nil {
			return err
		}

		target, err := tx.GetBill(ctx, newBillID)
		if err != nil {
			return err
		}

		newAmount := p.PaidAmount
		if req.Amount != nil {
			newAmount = *req.Amount
		}
		if newAmount > target.OutstandingAmount {
			return ErrOverpayment
		}

		p.BillID = newBillID
		p.PaidAmount = newAmount
		if req.Method != nil {
			p.Method = *req.Method
		}
		if req.PaidAt != nil {
			p.PaidAt = *req.PaidAt
		}

		if err := tx.UpdatePayment(ctx, p); err != nil {
			return err
		}
		if err := recompute(ctx, tx, newBillID); err != nil {
			return err
		}
		if oldBillID != newBillID {
			if err := recompute(ctx, tx, oldBillID); err != nil {
				return err
			}
		}

		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *service) DeletePayment(ctx context.Context, id string) error {
	existing, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return err
	}

	return s.repo.WithBillLock(ctx, []string{existing.BillID}, func(tx TxRepository) error {
		p, err := tx.GetPayment(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.DeletePayment(ctx, p.ID); err != nil {
			return err
		}
		return recompute(ctx, tx, p.BillID)
	})
}
