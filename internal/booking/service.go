package booking

import (
	"context"
	"errors"
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/guest"
	"github.com/stayforge/hotel-booking-backend/internal/room"
	"github.com/stayforge/hotel-booking-backend/internal/user"
)

type CreateRequest struct {
	UserID        string // acting staff account
	GuestID       string
	RoomID        string
	PaymentMethod string
	CheckIn       time.Time
	CheckOut      time.Time
}

type UpdateRequest struct {
	GuestID       *string
	RoomID        *string
	PaymentMethod *string
	CheckIn       *time.Time
	CheckOut      *time.Time
	Status        *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	Delete(ctx context.Context, id string) error

	// CheckAvailability returns the active bookings blocking the room over
	// [checkIn, checkOut). An empty result means the room is free.
	CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]*Booking, error)
}

type service struct {
	repo         Repository
	roomService  room.Service
	guestService guest.Service
	userService  user.Service
}

func NewService(repo Repository, roomService room.Service, guestService guest.Service, userService user.Service) Service {
	return &service{
		repo:         repo,
		roomService:  roomService,
		guestService: guestService,
		userService:  userService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrInvalidDateRange
	}
	if !validPaymentMethod(req.PaymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	if _, err := s.guestService.GetByID(ctx, req.GuestID); err != nil {
		if errors.Is(err, guest.ErrNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, err
	}
	if _, err := s.roomService.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if _, err := s.userService.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	userID := req.UserID
	b := &Booking{
		UserID:        &userID,
		GuestID:       req.GuestID,
		RoomID:        req.RoomID,
		Status:        StatusBooked,
		PaymentMethod: req.PaymentMethod,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
	}

	// The conflict check and the insert run inside one room-locked
	// transaction so two concurrent requests for overlapping dates on the
	// same room serialize instead of both passing the check.
	err := s.repo.WithRoomLock(ctx, req.RoomID, func(tx TxRepository) error {
		candidates, err := tx.ListActiveForRoom(ctx, req.RoomID, "")
		if err != nil {
			return err
		}
		if conflicts := FindConflicts(candidates, req.CheckIn, req.CheckOut); len(conflicts) > 0 {
			return &ConflictError{Conflicts: conflicts}
		}
		return tx.Insert(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	// Re-read to populate joined display fields.
	created, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return b, nil
	}
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func validTransition(from, to Status) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusBooked:
		return to == StatusCheckedIn || to == StatusCancelled
	case StatusCheckedIn:
		return to == StatusCheckedOut || to == StatusCancelled
	default:
		return false
	}
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.GuestID != nil {
		if _, err := s.guestService.GetByID(ctx, *req.GuestID); err != nil {
			if errors.Is(err, guest.ErrNotFound) {
				return nil, ErrGuestNotFound
			}
			return nil, err
		}
		b.GuestID = *req.GuestID
	}
	if req.PaymentMethod != nil {
		if !validPaymentMethod(*req.PaymentMethod) {
			return nil, ErrInvalidPaymentMethod
		}
		b.PaymentMethod = *req.PaymentMethod
	}
	if req.Status != nil {
		st := Status(*req.Status)
		switch st {
		case StatusBooked, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		default:
			return nil, ErrInvalidStatus
		}
		if !validTransition(b.Status, st) {
			return nil, ErrInvalidTransition
		}
		b.Status = st
	}

	newRoomID := b.RoomID
	if req.RoomID != nil {
		if _, err := s.roomService.GetByID(ctx, *req.RoomID); err != nil {
			if errors.Is(err, room.ErrNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, err
		}
		newRoomID = *req.RoomID
	}

	newCheckIn := b.CheckIn
	newCheckOut := b.CheckOut
	if req.CheckIn != nil {
		newCheckIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		newCheckOut = *req.CheckOut
	}

	slotChanged := newRoomID != b.RoomID || !newCheckIn.Equal(b.CheckIn) || !newCheckOut.Equal(b.CheckOut)

	if slotChanged {
		if !newCheckOut.After(newCheckIn) {
			return nil, ErrInvalidDateRange
		}
		b.RoomID = newRoomID
		b.CheckIn = newCheckIn
		b.CheckOut = newCheckOut

		// Moving an active booking re-runs the conflict check against all
		// other bookings on the target room, under that room's lock.
		if b.Status.Active() {
			err = s.repo.WithRoomLock(ctx, newRoomID, func(tx TxRepository) error {
				candidates, err := tx.ListActiveForRoom(ctx, newRoomID, b.ID)
				if err != nil {
					return err
				}
				if conflicts := FindConflicts(candidates, newCheckIn, newCheckOut); len(conflicts) > 0 {
					return &ConflictError{Conflicts: conflicts}
				}
				return tx.Update(ctx, b)
			})
		} else {
			err = s.repo.Update(ctx, b)
		}
	} else {
		err = s.repo.Update(ctx, b)
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.GetByID(ctx, b.ID)
	if err != nil {
		return b, nil
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) ([]*Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	if _, err := s.roomService.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	candidates, err := s.repo.ListActiveForRoom(ctx, roomID, "")
	if err != nil {
		return nil, err
	}
	return FindConflicts(candidates, checkIn, checkOut), nil
}
