package branch

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Address     string
	Phone       string
	Description string
}

type UpdateRequest struct {
	Name        *string
	Address     *string
	Phone       *string
	Description *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Branch, error)
	GetByID(ctx context.Context, id string) (*Branch, error)
	List(ctx context.Context, filter Filter) ([]*Branch, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Branch, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Branch, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	var phone *string
	if strings.TrimSpace(req.Phone) != "" {
		p := strings.TrimSpace(req.Phone)
		phone = &p
	}

	b := &Branch{
		Name:        strings.TrimSpace(req.Name),
		Address:     req.Address,
		Phone:       phone,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Branch, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Branch, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Branch, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		b.Address = *req.Address
	}
	if req.Phone != nil {
		if strings.TrimSpace(*req.Phone) == "" {
			b.Phone = nil
		} else {
			p := strings.TrimSpace(*req.Phone)
			b.Phone = &p
		}
	}
	if req.Description != nil {
		b.Description = *req.Description
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
