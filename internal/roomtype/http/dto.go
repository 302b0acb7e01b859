package http

import (
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/pkg/request"
	"github.com/stayforge/hotel-booking-backend/internal/roomtype"
)

// RoomTypeTag is the minimal room type reference embedded in other responses.
type RoomTypeTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type RoomTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Capacity    int       `json:"capacity"`
	DailyRate   int64     `json:"daily_rate"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRoomTypeResponse(rt *roomtype.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:          rt.ID,
		Name:        rt.Name,
		Description: rt.Description,
		Capacity:    rt.Capacity,
		DailyRate:   rt.DailyRate,
		CreatedAt:   rt.CreatedAt,
	}
}

type ListRoomTypesRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}

type CreateRoomTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=1"`
	DailyRate   int64  `json:"daily_rate" binding:"required,gt=0"`
}

type UpdateRoomTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=1"`
	DailyRate   *int64  `json:"daily_rate" binding:"omitempty,gt=0"`
}
