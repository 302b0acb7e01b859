package http

import (
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/amenity"
	"github.com/stayforge/hotel-booking-backend/internal/pkg/request"
)

type ListAmenitiesRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}

type AmenityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UnitPrice   int64     `json:"unit_price"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewAmenityResponse(a *amenity.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		UnitPrice:   a.UnitPrice,
		CreatedAt:   a.CreatedAt,
	}
}

type CreateAmenityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	UnitPrice   int64  `json:"unit_price" binding:"required,gt=0"`
}

type UpdateAmenityRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	UnitPrice   *int64  `json:"unit_price" binding:"omitempty,gt=0"`
}

type UsageResponse struct {
	ID          string    `json:"id"`
	AmenityID   string    `json:"amenity_id"`
	AmenityName string    `json:"amenity_name"`
	BookingID   string    `json:"booking_id"`
	Quantity    int       `json:"quantity"`
	Amount      int64     `json:"amount"`
	UsedAt      time.Time `json:"used_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewUsageResponse(u *amenity.Usage) UsageResponse {
	return UsageResponse{
		ID:          u.ID,
		AmenityID:   u.AmenityID,
		AmenityName: u.AmenityName,
		BookingID:   u.BookingID,
		Quantity:    u.Quantity,
		Amount:      u.Amount,
		UsedAt:      u.UsedAt,
		CreatedAt:   u.CreatedAt,
	}
}

type AddUsageRequest struct {
	AmenityID string     `json:"amenity_id" binding:"required,uuid"`
	Quantity  int        `json:"quantity" binding:"required,gt=0"`
	UsedAt    *time.Time `json:"used_at"`
}
