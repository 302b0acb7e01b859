package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayforge/hotel-booking-backend/internal/guest"
	"github.com/stayforge/hotel-booking-backend/internal/room"
	"github.com/stayforge/hotel-booking-backend/internal/user"
)

type fakeRepo struct {
	bookings map[string]*Booking
	locks    []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]*Booking)}
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range f.bookings {
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepo) ListActiveForRoom(_ context.Context, roomID string, excludeID string) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if b.RoomID != roomID || !b.Status.Active() || b.ID == excludeID {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeRepo) Insert(_ context.Context, b *Booking) error {
	b.ID = uuid.NewString()
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepo) Update(_ context.Context, b *Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	b.UpdatedAt = time.Now()
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeRepo) WithRoomLock(_ context.Context, roomID string, fn func(tx TxRepository) error) error {
	f.locks = append(f.locks, "room:"+roomID)
	return fn(f)
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

type fakeGuestService struct {
	guests map[string]*guest.Guest
}

func (f *fakeGuestService) Create(context.Context, guest.CreateRequest) (*guest.Guest, error) {
	panic("not implemented")
}

func (f *fakeGuestService) GetByID(_ context.Context, id string) (*guest.Guest, error) {
	g, ok := f.guests[id]
	if !ok {
		return nil, guest.ErrNotFound
	}
	return g, nil
}

func (f *fakeGuestService) List(context.Context, guest.Filter) ([]*guest.Guest, int, error) {
	panic("not implemented")
}

func (f *fakeGuestService) Update(context.Context, string, guest.UpdateRequest) (*guest.Guest, error) {
	panic("not implemented")
}

func (f *fakeGuestService) Delete(context.Context, string) error {
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

const (
	testRoomID  = "6f9b6c4e-9d36-4c44-8f65-2a1f4a1b0c01"
	testRoom2ID = "6f9b6c4e-9d36-4c44-8f65-2a1f4a1b0c02"
	testGuestID = "3c25a3f0-1f4d-4c2a-9c51-6d6a7a9b0d01"
	testUserID  = "a1d2e3f4-5b6c-4d7e-8f90-123456789abc"
)

func newTestService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	svc := NewService(
		repo,
		&fakeRoomService{rooms: map[string]*room.Room{
			testRoomID:  {ID: testRoomID, Number: "12"},
			testRoom2ID: {ID: testRoom2ID, Number: "14"},
		}},
		&fakeGuestService{guests: map[string]*guest.Guest{
			testGuestID: {ID: testGuestID, FullName: "Ada Wong"},
		}},
		&fakeUserService{users: map[string]*user.User{
			testUserID: {ID: testUserID, Email: "staff@example.com"},
		}},
	)
	return svc, repo
}

func createReq(checkIn, checkOut time.Time) CreateRequest {
	return CreateRequest{
		UserID:        testUserID,
		GuestID:       testGuestID,
		RoomID:        testRoomID,
		PaymentMethod: "card",
		CheckIn:       checkIn,
		CheckOut:      checkOut,
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a booked booking under the room lock", func(t *testing.T) {
		svc, repo := newTestService(t)

		b, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)
		assert.NotEmpty(t, b.ID)
		assert.Equal(t, StatusBooked, b.Status)
		assert.Equal(t, []string{"room:" + testRoomID}, repo.locks)
	})

	t.Run("rejects overlapping dates with the blocking bookings", func(t *testing.T) {
		svc, _ := newTestService(t)

		existing, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)

		_, err = svc.Create(ctx, createReq(day(21, 14), day(23, 10)))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRoomConflict)

		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		require.Len(t, conflictErr.Conflicts, 1)
		assert.Equal(t, existing.ID, conflictErr.Conflicts[0].ID)
	})

	t.Run("allows a back-to-back booking", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)

		_, err = svc.Create(ctx, createReq(day(22, 10), day(24, 10)))
		assert.NoError(t, err)
	})

	t.Run("allows overlap on a different room", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)

		req := createReq(day(20, 14), day(22, 10))
		req.RoomID = testRoom2ID
		_, err = svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("rejects check-out before check-in", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createReq(day(22, 10), day(20, 14)))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("rejects a zero-length stay", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createReq(day(20, 14), day(20, 14)))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("rejects an unknown payment method", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := createReq(day(20, 14), day(22, 10))
		req.PaymentMethod = "barter"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	})

	t.Run("rejects an unknown guest", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := createReq(day(20, 14), day(22, 10))
		req.GuestID = uuid.NewString()
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrGuestNotFound)
	})

	t.Run("rejects an unknown room", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := createReq(day(20, 14), day(22, 10))
		req.RoomID = uuid.NewString()
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("moving dates re-checks conflicts excluding itself", func(t *testing.T) {
		svc, _ := newTestService(t)

		b, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)

		// Shifting the same booking by a day only overlaps itself, which must
		// not count as a conflict.
		newOut := day(23, 10)
		updated, err := svc.Update(ctx, b.ID, UpdateRequest{CheckOut: &newOut})
		require.NoError(t, err)
		assert.Equal(t, newOut, updated.CheckOut)
	})

	t.Run("moving onto another booking fails", func(t *testing.T) {
		svc, _ := newTestService(t)

		blocker, err := svc.Create(ctx, createReq(day(24, 14), day(26, 10)))
		require.NoError(t, err)
		b, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)

		newIn, newOut := day(25, 14), day(27, 10)
		_, err = svc.Update(ctx, b.ID, UpdateRequest{CheckIn: &newIn, CheckOut: &newOut})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrRoomConflict)

		var conflictErr *ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, blocker.ID, conflictErr.Conflicts[0].ID)
	})

	t.Run("moving to a free room succeeds", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)
		b, err := svc.Create(ctx, createReq(day(22, 10), day(24, 10)))
		require.NoError(t, err)

		newRoom := testRoom2ID
		newIn, newOut := day(20, 14), day(22, 10)
		updated, err := svc.Update(ctx, b.ID, UpdateRequest{RoomID: &newRoom, CheckIn: &newIn, CheckOut: &newOut})
		require.NoError(t, err)
		assert.Equal(t, testRoom2ID, updated.RoomID)
	})

	t.Run("rescheduling a cancelled booking skips the conflict check", func(t *testing.T) {
		svc, repo := newTestService(t)

		b, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)
		cancelled := string(StatusCancelled)
		_, err = svc.Update(ctx, b.ID, UpdateRequest{Status: &cancelled})
		require.NoError(t, err)

		locksBefore := len(repo.locks)
		newIn, newOut := day(20, 14), day(25, 10)
		_, err = svc.Update(ctx, b.ID, UpdateRequest{CheckIn: &newIn, CheckOut: &newOut})
		require.NoError(t, err)
		assert.Len(t, repo.locks, locksBefore)
	})

	t.Run("follows the status lifecycle", func(t *testing.T) {
		svc, _ := newTestService(t)

		b, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)

		for _, next := range []string{"checked_in", "checked_out"} {
			st := next
			b, err = svc.Update(ctx, b.ID, UpdateRequest{Status: &st})
			require.NoError(t, err)
			assert.Equal(t, Status(next), b.Status)
		}

		st := string(StatusBooked)
		_, err = svc.Update(ctx, b.ID, UpdateRequest{Status: &st})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("cancelled bookings free the slot for new ones", func(t *testing.T) {
		svc, _ := newTestService(t)

		b, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		require.NoError(t, err)
		cancelled := string(StatusCancelled)
		_, err = svc.Update(ctx, b.ID, UpdateRequest{Status: &cancelled})
		require.NoError(t, err)

		_, err = svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
		assert.NoError(t, err)
	})
}

func TestServiceCheckAvailability(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	b, err := svc.Create(ctx, createReq(day(20, 14), day(22, 10)))
	require.NoError(t, err)

	t.Run("reports blocking bookings", func(t *testing.T) {
		conflicts, err := svc.CheckAvailability(ctx, testRoomID, day(21, 14), day(23, 10))
		require.NoError(t, err)
		require.Len(t, conflicts, 1)
		assert.Equal(t, b.ID, conflicts[0].ID)
	})

	t.Run("back-to-back window is available", func(t *testing.T) {
		conflicts, err := svc.CheckAvailability(ctx, testRoomID, day(22, 10), day(24, 10))
		require.NoError(t, err)
		assert.Empty(t, conflicts)
	})

	t.Run("unknown room fails", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, uuid.NewString(), day(20, 14), day(22, 10))
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("invalid range fails", func(t *testing.T) {
		_, err := svc.CheckAvailability(ctx, testRoomID, day(22, 10), day(20, 14))
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}
