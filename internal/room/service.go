package room

import (
	"context"
	"strings"

	"github.com/stayforge/hotel-booking-backend/internal/branch"
	"github.com/stayforge/hotel-booking-backend/internal/roomtype"
)

type CreateRequest struct {
	Number     string
	Floor      int
	BranchID   string
	RoomTypeID string
}

type UpdateRequest struct {
	Number     *string
	Floor      *int
	BranchID   *string
	RoomTypeID *string
	Status     *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	brService branch.Service
	rtService roomtype.Service
}

func NewService(repo Repository, brService branch.Service, rtService roomtype.Service) Service {
	return &service{
		repo:      repo,
		brService: brService,
		rtService: rtService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Number) == "" {
		return nil, ErrNumberRequired
	}

	// Validate referenced branch and room type exist.
	if _, err := s.brService.GetByID(ctx, req.BranchID); err != nil {
		return nil, ErrInvalidBranch
	}
	if _, err := s.rtService.GetByID(ctx, req.RoomTypeID); err != nil {
		return nil, ErrInvalidRoomType
	}

	rm := &Room{
		Number:     strings.TrimSpace(req.Number),
		Floor:      req.Floor,
		BranchID:   req.BranchID,
		RoomTypeID: req.RoomTypeID,
		Status:     StatusAvailable,
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}

	// Re-read to populate joined fields.
	return s.repo.GetByID(ctx, rm.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		if strings.TrimSpace(*req.Number) == "" {
			return nil, ErrNumberRequired
		}
		rm.Number = strings.TrimSpace(*req.Number)
	}
	if req.Floor != nil {
		rm.Floor = *req.Floor
	}
	if req.BranchID != nil {
		if _, err := s.brService.GetByID(ctx, *req.BranchID); err != nil {
			return nil, ErrInvalidBranch
		}
		rm.BranchID = *req.BranchID
	}
	if req.RoomTypeID != nil {
		if _, err := s.rtService.GetByID(ctx, *req.RoomTypeID); err != nil {
			return nil, ErrInvalidRoomType
		}
		rm.RoomTypeID = *req.RoomTypeID
	}
	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusAvailable && st != StatusMaintenance {
			return nil, ErrInvalidStatus
		}
		rm.Status = st
	}

	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, rm.ID)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
