package http

import (
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/guest"
	"github.com/stayforge/hotel-booking-backend/internal/pkg/request"
)

// GuestTag is the minimal guest reference embedded in other responses.
type GuestTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GuestResponse struct {
	ID         string    `json:"id"`
	FullName   string    `json:"full_name"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	DocumentID *string   `json:"document_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewGuestResponse(g *guest.Guest) GuestResponse {
	return GuestResponse{
		ID:         g.ID,
		FullName:   g.FullName,
		Email:      g.Email,
		Phone:      g.Phone,
		DocumentID: g.DocumentID,
		CreatedAt:  g.CreatedAt,
	}
}

type ListGuestsRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}

type CreateGuestRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone"`
	DocumentID string `json:"document_id"`
}

type UpdateGuestRequest struct {
	FullName   *string `json:"full_name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	DocumentID *string `json:"document_id"`
}
