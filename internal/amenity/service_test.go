package amenity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayforge/hotel-booking-backend/internal/booking"
)

type fakeRepo struct {
	amenities map[string]*Amenity
	usages    map[string]*Usage
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		amenities: make(map[string]*Amenity),
		usages:    make(map[string]*Usage),
	}
}

func (f *fakeRepo) Create(_ context.Context, a *Amenity) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	cp := *a
	f.amenities[a.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Amenity, error) {
	a, ok := f.amenities[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Amenity, int, error) {
	var out []*Amenity
	for _, a := range f.amenities {
		cp := *a
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, a *Amenity) error {
	if _, ok := f.amenities[a.ID]; !ok {
		return ErrNotFound
	}
	cp := *a
	f.amenities[a.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.amenities[id]; !ok {
		return ErrNotFound
	}
	delete(f.amenities, id)
	return nil
}

func (f *fakeRepo) CreateUsage(_ context.Context, u *Usage) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	cp := *u
	f.usages[u.ID] = &cp
	return nil
}

func (f *fakeRepo) ListUsagesForBooking(_ context.Context, bookingID string) ([]*Usage, error) {
	var out []*Usage
	for _, u := range f.usages {
		if u.BookingID == bookingID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteUsage(_ context.Context, id string) error {
	if _, ok := f.usages[id]; !ok {
		return ErrUsageNotFound
	}
	delete(f.usages, id)
	return nil
}

func (f *fakeRepo) SumForBooking(_ context.Context, bookingID string) (int64, error) {
	var total int64
	for _, u := range f.usages {
		if u.BookingID == bookingID {
			total += u.Amount
		}
	}
	return total, nil
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

const testBookingID = "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"

func newTestService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	bookings := &fakeBookingService{bookings: map[string]*booking.Booking{
		testBookingID: {ID: testBookingID, Status: booking.StatusCheckedIn},
	}}
	return NewService(repo, bookings), repo
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	t.Run("valid amenity", func(t *testing.T) {
		a, err := svc.Create(ctx, CreateRequest{Name: "Laundry", UnitPrice: 1500})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, int64(1500), a.UnitPrice)
	})

	t.Run("non-positive unit price", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Name: "Laundry", UnitPrice: 0})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestServiceAddUsage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	spa, err := svc.Create(ctx, CreateRequest{Name: "Spa", UnitPrice: 2500})
	require.NoError(t, err)

	t.Run("amount snapshots unit price times quantity", func(t *testing.T) {
		u, err := svc.AddUsage(ctx, AddUsageRequest{
			BookingID: testBookingID,
			AmenityID: spa.ID,
			Quantity:  3,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7500), u.Amount)
		assert.Equal(t, "Spa", u.AmenityName)
		assert.False(t, u.UsedAt.IsZero())
	})

	t.Run("later price change does not rewrite recorded usage", func(t *testing.T) {
		newPrice := int64(9000)
		_, err := svc.Update(ctx, spa.ID, UpdateRequest{UnitPrice: &newPrice})
		require.NoError(t, err)

		usages, err := svc.ListUsagesForBooking(ctx, testBookingID)
		require.NoError(t, err)
		require.Len(t, usages, 1)
		assert.Equal(t, int64(7500), usages[0].Amount)

		total, err := svc.TotalCharges(ctx, testBookingID)
		require.NoError(t, err)
		assert.Equal(t, int64(7500), total)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		_, err := svc.AddUsage(ctx, AddUsageRequest{
			BookingID: testBookingID,
			AmenityID: spa.ID,
			Quantity:  0,
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("unknown amenity", func(t *testing.T) {
		_, err := svc.AddUsage(ctx, AddUsageRequest{
			BookingID: testBookingID,
			AmenityID: uuid.NewString(),
			Quantity:  1,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.AddUsage(ctx, AddUsageRequest{
			BookingID: uuid.NewString(),
			AmenityID: spa.ID,
			Quantity:  1,
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestServiceDeleteUsage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	minibar, err := svc.Create(ctx, CreateRequest{Name: "Minibar", UnitPrice: 800})
	require.NoError(t, err)

	u, err := svc.AddUsage(ctx, AddUsageRequest{
		BookingID: testBookingID,
		AmenityID: minibar.ID,
		Quantity:  2,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUsage(ctx, u.ID))

	total, err := svc.TotalCharges(ctx, testBookingID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	assert.ErrorIs(t, svc.DeleteUsage(ctx, u.ID), ErrUsageNotFound)
}
