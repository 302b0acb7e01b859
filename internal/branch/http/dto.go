package http

import (
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/branch"
	"github.com/stayforge/hotel-booking-backend/internal/pkg/request"
)

// BranchTag is the minimal branch reference embedded in other responses.
type BranchTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BranchResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Phone       *string   `json:"phone,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewBranchResponse(b *branch.Branch) BranchResponse {
	return BranchResponse{
		ID:          b.ID,
		Name:        b.Name,
		Address:     b.Address,
		Phone:       b.Phone,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

type ListBranchesRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}

type CreateBranchRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

type UpdateBranchRequest struct {
	Name        *string `json:"name"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
}
