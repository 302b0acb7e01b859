package guest

import (
	"context"
	"strings"
)

type CreateRequest struct {
	FullName   string
	Email      string
	Phone      string
	DocumentID string
}

type UpdateRequest struct {
	FullName   *string
	Email      *string
	Phone      *string
	DocumentID *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Guest, error)
	GetByID(ctx context.Context, id string) (*Guest, error)
	List(ctx context.Context, filter Filter) ([]*Guest, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Guest, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Guest, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ErrNameRequired
	}

	g := &Guest{
		FullName:   strings.TrimSpace(req.FullName),
		Email:      optional(req.Email),
		Phone:      optional(req.Phone),
		DocumentID: optional(req.DocumentID),
	}

	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Guest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Guest, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Guest, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			return nil, ErrNameRequired
		}
		g.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		g.Email = optional(*req.Email)
	}
	if req.Phone != nil {
		g.Phone = optional(*req.Phone)
	}
	if req.DocumentID != nil {
		g.DocumentID = optional(*req.DocumentID)
	}

	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func optional(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
