package http

import (
	"time"

	brHttp "github.com/stayforge/hotel-booking-backend/internal/branch/http"
	"github.com/stayforge/hotel-booking-backend/internal/pkg/request"
	"github.com/stayforge/hotel-booking-backend/internal/room"
	rtHttp "github.com/stayforge/hotel-booking-backend/internal/roomtype/http"
)

// RoomTag is the minimal room reference embedded in other responses.
type RoomTag struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

type RoomResponse struct {
	ID        string             `json:"id"`
	Number    string             `json:"number"`
	Floor     int                `json:"floor"`
	Branch    brHttp.BranchTag   `json:"branch"`
	RoomType  rtHttp.RoomTypeTag `json:"room_type"`
	DailyRate int64              `json:"daily_rate"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	return RoomResponse{
		ID:        rm.ID,
		Number:    rm.Number,
		Floor:     rm.Floor,
		Branch:    brHttp.BranchTag{ID: rm.BranchID, Name: rm.BranchName},
		RoomType:  rtHttp.RoomTypeTag{ID: rm.RoomTypeID, Name: rm.RoomTypeName},
		DailyRate: rm.DailyRate,
		Status:    string(rm.Status),
		CreatedAt: rm.CreatedAt,
	}
}

type ListRoomsRequest struct {
	request.ListParams
	BranchID   string `form:"branch_id" binding:"omitempty,uuid"`
	RoomTypeID string `form:"room_type_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=available maintenance"`
}

type CreateRoomRequest struct {
	Number     string `json:"number" binding:"required"`
	Floor      int    `json:"floor"`
	BranchID   string `json:"branch_id" binding:"required,uuid"`
	RoomTypeID string `json:"room_type_id" binding:"required,uuid"`
}

type UpdateRoomRequest struct {
	Number     *string `json:"number"`
	Floor      *int    `json:"floor"`
	BranchID   *string `json:"branch_id" binding:"omitempty,uuid"`
	RoomTypeID *string `json:"room_type_id" binding:"omitempty,uuid"`
	Status     *string `json:"status" binding:"omitempty,oneof=available maintenance"`
}
