package bill

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayforge/hotel-booking-backend/internal/amenity"
	"github.com/stayforge/hotel-booking-backend/internal/booking"
	"github.com/stayforge/hotel-booking-backend/internal/room"
	"github.com/stayforge/hotel-booking-backend/internal/user"
)

type fakeRepo struct {
	bills    map[string]*Bill
	payments map[string]*Payment
	locks    [][]string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		bills:    make(map[string]*Bill),
		payments: make(map[string]*Payment),
	}
}

func (f *fakeRepo) InsertBill(_ context.Context, b *Bill) error {
	for _, existing := range f.bills {
		if existing.BookingID == b.BookingID {
			return ErrDuplicateBill
		}
	}
	b.ID = uuid.NewString()
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	f.bills[b.ID] = &cp
	return nil
}

func (f *fakeRepo) GetBill(_ context.Context, id string) (*Bill, error) {
	b, ok := f.bills[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) GetBillByBooking(_ context.Context, bookingID string) (*Bill, error) {
	for _, b := range f.bills {
		if b.BookingID == bookingID {
			cp := *b
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) ListBills(_ context.Context, _ Filter) ([]*Bill, int, error) {
	var out []*Bill
	for _, b := range f.bills {
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateBillCharges(_ context.Context, b *Bill) error {
	stored, ok := f.bills[b.ID]
	if !ok {
		return ErrNotFound
	}
	stored.UserID = b.UserID
	stored.RoomCharges = b.RoomCharges
	stored.TotalServiceCharges = b.TotalServiceCharges
	stored.TotalTax = b.TotalTax
	stored.TotalDiscount = b.TotalDiscount
	stored.LateCheckoutCharge = b.LateCheckoutCharge
	stored.TotalAmount = b.TotalAmount
	stored.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRepo) DeleteBill(_ context.Context, id string) error {
	if _, ok := f.bills[id]; !ok {
		return ErrNotFound
	}
	for _, p := range f.payments {
		if p.BillID == id {
			return ErrHasPayments
		}
	}
	delete(f.bills, id)
	return nil
}

func (f *fakeRepo) GetPayment(_ context.Context, id string) (*Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, ErrPaymentNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepo) ListPayments(_ context.Context, filter PaymentFilter) ([]*Payment, int, error) {
	var out []*Payment
	for _, p := range f.payments {
		if filter.BillID != "" && p.BillID != filter.BillID {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepo) InsertPayment(_ context.Context, p *Payment) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *fakeRepo) UpdatePayment(_ context.Context, p *Payment) error {
	if _, ok := f.payments[p.ID]; !ok {
		return ErrPaymentNotFound
	}
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *fakeRepo) DeletePayment(_ context.Context, id string) error {
	if _, ok := f.payments[id]; !ok {
		return ErrPaymentNotFound
	}
	delete(f.payments, id)
	return nil
}

func (f *fakeRepo) SumPayments(_ context.Context, billID string) (int64, error) {
	var total int64
	for _, p := range f.payments {
		if p.BillID == billID {
			total += p.PaidAmount
		}
	}
	return total, nil
}

func (f *fakeRepo) SetDerivedAmounts(_ context.Context, billID string, paid, outstanding int64) error {
	b, ok := f.bills[billID]
	if !ok {
		return ErrNotFound
	}
	b.PaidAmount = paid
	b.OutstandingAmount = outstanding
	b.UpdatedAt = time.Now()
	return nil
}

func (f *fakeRepo) WithBillLock(_ context.Context, billIDs []string, fn func(tx TxRepository) error) error {
	keys := append([]string{}, billIDs...)
	f.locks = append(f.locks, keys)
	return fn(f)
}

type fakeBookingService struct {
	bookings map[string]*booking.Booking
}

func (f *fakeBookingService) Create(context.Context, booking.CreateRequest) (*booking.Booking, error) {
	panic("not implemented")
}

func (f *fakeBookingService) GetByID(_ context.Context, id string) (*booking.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	return b, nil
}

func (f *fakeBookingService) List(context.Context, booking.Filter) ([]*booking.Booking, int, error) {
	panic("not implemented")
}

func (f *fakeBookingService) Update(context.Context, string, booking.UpdateRequest) (*booking.Booking, error) {
	panic("not implemented")
}

func (f *fakeBookingService) Delete(context.Context, string) error {
	panic("not implemented")
}

func (f *fakeBookingService) CheckAvailability(context.Context, string, time.Time, time.Time) ([]*booking.Booking, error) {
	panic("not implemented")
}

type fakeRoomService struct {
	rooms map[string]*room.Room
}

func (f *fakeRoomService) Create(context.Context, room.CreateRequest) (*room.Room, error) {
	panic("not implemented")
}

func (f *fakeRoomService) GetByID(_ context.Context, id string) (*room.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, room.ErrNotFound
	}
	return r, nil
}

func (f *fakeRoomService) List(context.Context, room.Filter) ([]*room.Room, int, error) {
	panic("not implemented")
}

func (f *fakeRoomService) Update(context.Context, string, room.UpdateRequest) (*room.Room, error) {
	panic("not implemented")
}

func (f *fakeRoomService) Delete(context.Context, string) error {
	panic("not implemented")
}

type fakeUserService struct {
	users map[string]*user.User
}

func (f *fakeUserService) Create(context.Context, user.CreateRequest) (*user.User, error) {
	panic("not implemented")
}

func (f *fakeUserService) Login(context.Context, string, string) (*user.User, error) {
	panic("not implemented")
}

func (f *fakeUserService) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserService) List(context.Context, user.Filter) ([]*user.User, int, error) {
	panic("not implemented")
}

func (f *fakeUserService) Update(context.Context, string, user.UpdateRequest) (*user.User, error) {
	panic("not implemented")
}

func (f *fakeUserService) Delete(context.Context, string) error {
	panic("not implemented")
}

type fakeAmenityService struct {
	totals map[string]int64
}

func (f *fakeAmenityService) Create(context.Context, amenity.CreateRequest) (*amenity.Amenity, error) {
	panic("not implemented")
}

func (f *fakeAmenityService) GetByID(context.Context, string) (*amenity.Amenity, error) {
	panic("not implemented")
}

func (f *fakeAmenityService) List(context.Context, amenity.Filter) ([]*amenity.Amenity, int, error) {
	panic("not implemented")
}

func (f *fakeAmenityService) Update(context.Context, string, amenity.UpdateRequest) (*amenity.Amenity, error) {
	panic("not implemented")
}

func (f *fakeAmenityService) Delete(context.Context, string) error {
	panic("not implemented")
}

func (f *fakeAmenityService) AddUsage(context.Context, amenity.AddUsageRequest) (*amenity.Usage, error) {
	panic("not implemented")
}

func (f *fakeAmenityService) ListUsagesForBooking(context.Context, string) ([]*amenity.Usage, error) {
	panic("not implemented")
}

func (f *fakeAmenityService) DeleteUsage(context.Context, string) error {
	panic("not implemented")
}

func (f *fakeAmenityService) TotalCharges(_ context.Context, bookingID string) (int64, error) {
	return f.totals[bookingID], nil
}

const (
	testUserID    = "a1d2e3f4-5b6c-4d7e-8f90-123456789abc"
	testRoomID    = "6f9b6c4e-9d36-4c44-8f65-2a1f4a1b0c01"
	testBookingID = "0d8b2a1c-7e65-4f3a-9b21-5c4d3e2f1a01"
)

type testEnv struct {
	svc      Service
	repo     *fakeRepo
	amenity  *fakeAmenityService
	bookings *fakeBookingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	repo := newFakeRepo()
	amenitySvc := &fakeAmenityService{totals: map[string]int64{}}
	bookings := &fakeBookingService{bookings: map[string]*booking.Booking{
		testBookingID: {
			ID:       testBookingID,
			RoomID:   testRoomID,
			Status:   booking.StatusCheckedOut,
			CheckIn:  ts("2025-01-01T14:00:00Z"),
			CheckOut: ts("2025-01-03T10:00:00Z"),
		},
	}}
	svc := NewService(
		repo,
		bookings,
		&fakeRoomService{rooms: map[string]*room.Room{
			testRoomID: {ID: testRoomID, Number: "12", DailyRate: 100},
		}},
		&fakeUserService{users: map[string]*user.User{
			testUserID: {ID: testUserID, Email: "staff@example.com"},
		}},
		amenitySvc,
	)
	return &testEnv{svc: svc, repo: repo, amenity: amenitySvc, bookings: bookings}
}

func (e *testEnv) createBill(t *testing.T, req CreateBillRequest) *Bill {
	t.Helper()
	if req.UserID == "" {
		req.UserID = testUserID
	}
	if req.BookingID == "" {
		req.BookingID = testBookingID
	}
	b, err := e.svc.CreateBill(context.Background(), req)
	require.NoError(t, err)
	return b
}

func TestCreateBill(t *testing.T) {
	ctx := context.Background()

	t.Run("derives charges from the stay and usage rows", func(t *testing.T) {
		env := newTestEnv(t)
		env.amenity.totals[testBookingID] = 80

		b := env.createBill(t, CreateBillRequest{TotalTax: 30, TotalDiscount: 20, LateCheckoutCharge: 10})

		// rate 100 over 2025-01-01T14:00 -> 2025-01-03T10:00 is two billable days.
		assert.Equal(t, int64(200), b.RoomCharges)
		assert.Equal(t, int64(80), b.TotalServiceCharges)
		assert.Equal(t, int64(300), b.TotalAmount)
		assert.Equal(t, int64(0), b.PaidAmount)
		assert.Equal(t, int64(300), b.OutstandingAmount)
	})

	t.Run("rejects a second bill for the same booking", func(t *testing.T) {
		env := newTestEnv(t)
		env.createBill(t, CreateBillRequest{})

		_, err := env.svc.CreateBill(ctx, CreateBillRequest{UserID: testUserID, BookingID: testBookingID})
		assert.ErrorIs(t, err, ErrDuplicateBill)
	})

	t.Run("rejects an unknown booking", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.CreateBill(ctx, CreateBillRequest{UserID: testUserID, BookingID: uuid.NewString()})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("rejects an unknown staff user", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.CreateBill(ctx, CreateBillRequest{UserID: uuid.NewString(), BookingID: testBookingID})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("rejects negative charge inputs", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.CreateBill(ctx, CreateBillRequest{UserID: testUserID, BookingID: testBookingID, TotalTax: -1})
		assert.ErrorIs(t, err, ErrNegativeCharge)
	})

	t.Run("rejects a discount larger than the charges", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.CreateBill(ctx, CreateBillRequest{UserID: testUserID, BookingID: testBookingID, TotalDiscount: 500})
		assert.ErrorIs(t, err, ErrNegativeTotal)
	})
}

func TestAddPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("full payment settles the bill", func(t *testing.T) {
		env := newTestEnv(t)
		env.amenity.totals[testBookingID] = 100
		b := env.createBill(t, CreateBillRequest{})
		require.Equal(t, int64(300), b.TotalAmount)

		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 300})
		require.NoError(t, err)

		settled, err := env.svc.GetBill(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(300), settled.PaidAmount)
		assert.Equal(t, int64(0), settled.OutstandingAmount)

		// Any further payment overpays.
		_, err = env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 1})
		assert.ErrorIs(t, err, ErrOverpayment)
	})

	t.Run("partial payments accumulate", func(t *testing.T) {
		env := newTestEnv(t)
		env.amenity.totals[testBookingID] = 100
		b := env.createBill(t, CreateBillRequest{})

		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "card", Amount: 120})
		require.NoError(t, err)
		_, err = env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 180})
		require.NoError(t, err)

		settled, err := env.svc.GetBill(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(300), settled.PaidAmount)
		assert.Equal(t, int64(0), settled.OutstandingAmount)
	})

	t.Run("rejects exceeding the outstanding amount outright", func(t *testing.T) {
		env := newTestEnv(t)
		env.amenity.totals[testBookingID] = 100
		b := env.createBill(t, CreateBillRequest{})

		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 301})
		assert.ErrorIs(t, err, ErrOverpayment)

		unchanged, err := env.svc.GetBill(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), unchanged.PaidAmount)
	})

	t.Run("runs under the bill lock", func(t *testing.T) {
		env := newTestEnv(t)
		b := env.createBill(t, CreateBillRequest{})

		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 50})
		require.NoError(t, err)
		require.NotEmpty(t, env.repo.locks)
		assert.Equal(t, []string{b.ID}, env.repo.locks[len(env.repo.locks)-1])
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		env := newTestEnv(t)
		b := env.createBill(t, CreateBillRequest{})

		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 0})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("rejects an unknown method", func(t *testing.T) {
		env := newTestEnv(t)
		b := env.createBill(t, CreateBillRequest{})

		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "barter", Amount: 10})
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})

	t.Run("rejects an unknown bill", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: uuid.NewString(), Method: "cash", Amount: 10})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeletePayment(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.amenity.totals[testBookingID] = 100
	b := env.createBill(t, CreateBillRequest{})

	p, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 100})
	require.NoError(t, err)

	mid, err := env.svc.GetBill(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), mid.PaidAmount)
	require.Equal(t, int64(200), mid.OutstandingAmount)

	require.NoError(t, env.svc.DeletePayment(ctx, p.ID))

	after, err := env.svc.GetBill(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), after.PaidAmount)
	assert.Equal(t, int64(300), after.OutstandingAmount)

	assert.ErrorIs(t, env.svc.DeletePayment(ctx, p.ID), ErrPaymentNotFound)
}

func TestUpdatePayment(t *testing.T) {
	ctx := context.Background()

	// A second booking so a second bill can exist.
	secondBooking := func(env *testEnv) string {
		id := uuid.NewString()
		env.bookings.bookings[id] = &booking.Booking{
			ID:       id,
			RoomID:   testRoomID,
			Status:   booking.StatusCheckedOut,
			CheckIn:  ts("2025-02-01T14:00:00Z"),
			CheckOut: ts("2025-02-03T10:00:00Z"),
		}
		return id
	}

	t.Run("reparenting recomputes both bills", func(t *testing.T) {
		env := newTestEnv(t)
		billA := env.createBill(t, CreateBillRequest{})
		billB := env.createBill(t, CreateBillRequest{BookingID: secondBooking(env)})

		p, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: billA.ID, Method: "cash", Amount: 100})
		require.NoError(t, err)

		updated, err := env.svc.UpdatePayment(ctx, p.ID, UpdatePaymentRequest{BillID: &billB.ID})
		require.NoError(t, err)
		assert.Equal(t, billB.ID, updated.BillID)

		a, err := env.svc.GetBill(ctx, billA.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), a.PaidAmount)
		assert.Equal(t, a.TotalAmount, a.OutstandingAmount)

		bb, err := env.svc.GetBill(ctx, billB.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), bb.PaidAmount)
		assert.Equal(t, bb.TotalAmount-100, bb.OutstandingAmount)
	})

	t.Run("locks both bills on reparenting", func(t *testing.T) {
		env := newTestEnv(t)
		billA := env.createBill(t, CreateBillRequest{})
		billB := env.createBill(t, CreateBillRequest{BookingID: secondBooking(env)})

		p, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: billA.ID, Method: "cash", Amount: 50})
		require.NoError(t, err)

		_, err = env.svc.UpdatePayment(ctx, p.ID, UpdatePaymentRequest{BillID: &billB.ID})
		require.NoError(t, err)

		last := env.repo.locks[len(env.repo.locks)-1]
		assert.ElementsMatch(t, []string{billA.ID, billB.ID}, last)
	})

	t.Run("rejects reparenting that overpays the target", func(t *testing.T) {
		env := newTestEnv(t)
		billA := env.createBill(t, CreateBillRequest{})
		billB := env.createBill(t, CreateBillRequest{BookingID: secondBooking(env)})

		// Nearly settle bill B, leaving outstanding 10.
		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: billB.ID, Method: "cash", Amount: billB.TotalAmount - 10})
		require.NoError(t, err)

		p, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: billA.ID, Method: "cash", Amount: 100})
		require.NoError(t, err)

		_, err = env.svc.UpdatePayment(ctx, p.ID, UpdatePaymentRequest{BillID: &billB.ID})
		assert.ErrorIs(t, err, ErrOverpayment)

		// Nothing moved.
		a, err := env.svc.GetBill(ctx, billA.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), a.PaidAmount)
	})

	t.Run("amount change is checked against current outstanding", func(t *testing.T) {
		env := newTestEnv(t)
		env.amenity.totals[testBookingID] = 100
		b := env.createBill(t, CreateBillRequest{})

		p, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 100})
		require.NoError(t, err)

		newAmount := int64(150)
		updated, err := env.svc.UpdatePayment(ctx, p.ID, UpdatePaymentRequest{Amount: &newAmount})
		require.NoError(t, err)
		assert.Equal(t, int64(150), updated.PaidAmount)

		refreshed, err := env.svc.GetBill(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(150), refreshed.PaidAmount)
		assert.Equal(t, int64(150), refreshed.OutstandingAmount)

		// Raising the amount past the re-read outstanding balance fails.
		tooMuch := int64(400)
		_, err = env.svc.UpdatePayment(ctx, p.ID, UpdatePaymentRequest{Amount: &tooMuch})
		assert.ErrorIs(t, err, ErrOverpayment)
	})

	t.Run("unknown payment", func(t *testing.T) {
		env := newTestEnv(t)
		amount := int64(10)
		_, err := env.svc.UpdatePayment(ctx, uuid.NewString(), UpdatePaymentRequest{Amount: &amount})
		assert.ErrorIs(t, err, ErrPaymentNotFound)
	})
}

func TestRecomputePaidAmount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.amenity.totals[testBookingID] = 100
	b := env.createBill(t, CreateBillRequest{})

	_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 120})
	require.NoError(t, err)

	first, err := env.svc.RecomputePaidAmount(ctx, b.ID)
	require.NoError(t, err)
	second, err := env.svc.RecomputePaidAmount(ctx, b.ID)
	require.NoError(t, err)

	// Recomputing without intervening payment changes is idempotent.
	assert.Equal(t, first.PaidAmount, second.PaidAmount)
	assert.Equal(t, first.OutstandingAmount, second.OutstandingAmount)
	assert.Equal(t, int64(120), second.PaidAmount)
	assert.Equal(t, int64(180), second.OutstandingAmount)
}

func TestUpdateBill(t *testing.T) {
	ctx := context.Background()

	t.Run("re-derives totals and refreshes outstanding", func(t *testing.T) {
		env := newTestEnv(t)
		b := env.createBill(t, CreateBillRequest{})
		require.Equal(t, int64(200), b.TotalAmount)

		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 150})
		require.NoError(t, err)

		// Service charges recorded after the bill was cut get picked up.
		env.amenity.totals[testBookingID] = 60
		tax := int64(40)
		updated, err := env.svc.UpdateBill(ctx, b.ID, UpdateBillRequest{TotalTax: &tax})
		require.NoError(t, err)

		assert.Equal(t, int64(300), updated.TotalAmount)
		assert.Equal(t, int64(150), updated.PaidAmount)
		assert.Equal(t, int64(150), updated.OutstandingAmount)
	})

	t.Run("rejects a total below what was already paid", func(t *testing.T) {
		env := newTestEnv(t)
		env.amenity.totals[testBookingID] = 100
		b := env.createBill(t, CreateBillRequest{})

		_, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 250})
		require.NoError(t, err)

		discount := int64(150)
		_, err = env.svc.UpdateBill(ctx, b.ID, UpdateBillRequest{TotalDiscount: &discount})
		assert.ErrorIs(t, err, ErrTotalBelowPaid)
	})
}

func TestDeleteBill(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	b := env.createBill(t, CreateBillRequest{})

	p, err := env.svc.AddPayment(ctx, AddPaymentRequest{BillID: b.ID, Method: "cash", Amount: 50})
	require.NoError(t, err)

	assert.ErrorIs(t, env.svc.DeleteBill(ctx, b.ID), ErrHasPayments)

	require.NoError(t, env.svc.DeletePayment(ctx, p.ID))
	require.NoError(t, env.svc.DeleteBill(ctx, b.ID))

	_, err = env.svc.GetBill(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
