package amenity

import (
	"context"
	"errors"
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/booking"
)

type CreateRequest struct {
	Name        string
	Description string
	UnitPrice   int64
}

type UpdateRequest struct {
	Name        *string
	Description *string
	UnitPrice   *int64
}

type AddUsageRequest struct {
	BookingID string
	AmenityID string
	Quantity  int
	UsedAt    *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Amenity, error)
	GetByID(ctx context.Context, id string) (*Amenity, error)
	List(ctx context.Context, filter Filter) ([]*Amenity, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Amenity, error)
	Delete(ctx context.Context, id string) error

	AddUsage(ctx context.Context, req AddUsageRequest) (*Usage, error)
	ListUsagesForBooking(ctx context.Context, bookingID string) ([]*Usage, error)
	DeleteUsage(ctx context.Context, id string) error

	// TotalCharges returns the sum of recorded service charges for a booking,
	// in minor units.
	TotalCharges(ctx context.Context, bookingID string) (int64, error)
}

type service struct {
	repo           Repository
	bookingService booking.Service
}

func NewService(repo Repository, bookingService booking.Service) Service {
	return &service{repo: repo, bookingService: bookingService}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Amenity, error) {
	if req.UnitPrice <= 0 {
		return nil, ErrInvalidPrice
	}

	a := &Amenity{
		Name:        req.Name,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Amenity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Amenity, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Amenity, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.UnitPrice != nil {
		if *req.UnitPrice <= 0 {
			return nil, ErrInvalidPrice
		}
		a.UnitPrice = *req.UnitPrice
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) AddUsage(ctx context.Context, req AddUsageRequest) (*Usage, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	a, err := s.repo.GetByID(ctx, req.AmenityID)
	if err != nil {
		return nil, err
	}
	if _, err := s.bookingService.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	usedAt := time.Now()
	if req.UsedAt != nil {
		usedAt = *req.UsedAt
	}

	u := &Usage{
		AmenityID:   a.ID,
		AmenityName: a.Name,
		BookingID:   req.BookingID,
		Quantity:    req.Quantity,
		Amount:      a.UnitPrice * int64(req.Quantity),
		UsedAt:      usedAt,
	}
	if err := s.repo.CreateUsage(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) ListUsagesForBooking(ctx context.Context, bookingID string) ([]*Usage, error) {
	if _, err := s.bookingService.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return s.repo.ListUsagesForBooking(ctx, bookingID)
}

func (s *service) DeleteUsage(ctx context.Context, id string) error {
	return s.repo.DeleteUsage(ctx, id)
}

func (s *service) TotalCharges(ctx context.Context, bookingID string) (int64, error) {
	return s.repo.SumForBooking(ctx, bookingID)
}
