package http

import (
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/booking"
	guestHttp "github.com/stayforge/hotel-booking-backend/internal/guest/http"
	"github.com/stayforge/hotel-booking-backend/internal/pkg/request"
	roomHttp "github.com/stayforge/hotel-booking-backend/internal/room/http"
	userHttp "github.com/stayforge/hotel-booking-backend/internal/user/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	GuestID string     `form:"guest_id" binding:"omitempty,uuid"`
	RoomID  string     `form:"room_id" binding:"omitempty,uuid"`
	Status  string     `form:"status" binding:"omitempty,oneof=booked checked_in checked_out cancelled"`
	From    *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To      *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

type BookingResponse struct {
	ID            string             `json:"id"`
	User          *userHttp.UserTag  `json:"user,omitempty"`
	Guest         guestHttp.GuestTag `json:"guest"`
	Room          roomHttp.RoomTag   `json:"room"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method"`
	CheckIn       time.Time          `json:"check_in"`
	CheckOut      time.Time          `json:"check_out"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            b.ID,
		Guest:         guestHttp.GuestTag{ID: b.GuestID, Name: b.GuestName},
		Room:          roomHttp.RoomTag{ID: b.RoomID, Number: b.RoomNumber},
		Status:        string(b.Status),
		PaymentMethod: b.PaymentMethod,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	if b.UserID != nil {
		resp.User = &userHttp.UserTag{ID: *b.UserID, Name: b.UserName}
	}
	return resp
}

type CreateBookingRequest struct {
	GuestID       string    `json:"guest_id" binding:"required,uuid"`
	RoomID        string    `json:"room_id" binding:"required,uuid"`
	PaymentMethod string    `json:"payment_method" binding:"required,oneof=cash card bank_transfer online"`
	CheckIn       time.Time `json:"check_in" binding:"required"`
	CheckOut      time.Time `json:"check_out" binding:"required"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	if !r.CheckOut.After(r.CheckIn) {
		return booking.ErrInvalidDateRange
	}
	return nil
}

type UpdateBookingRequest struct {
	GuestID       *string    `json:"guest_id" binding:"omitempty,uuid"`
	RoomID        *string    `json:"room_id" binding:"omitempty,uuid"`
	PaymentMethod *string    `json:"payment_method" binding:"omitempty,oneof=cash card bank_transfer online"`
	CheckIn       *time.Time `json:"check_in"`
	CheckOut      *time.Time `json:"check_out"`
	Status        *string    `json:"status" binding:"omitempty,oneof=booked checked_in checked_out cancelled"`
}

// Validate performs custom validation for UpdateBookingRequest.
func (r *UpdateBookingRequest) Validate() error {
	if r.CheckIn != nil && r.CheckOut != nil {
		if !r.CheckOut.After(*r.CheckIn) {
			return booking.ErrInvalidDateRange
		}
	}
	return nil
}

// AvailabilityRequest defines query parameters for the availability check.
type AvailabilityRequest struct {
	CheckIn  time.Time `form:"check_in" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	CheckOut time.Time `form:"check_out" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type AvailabilityResponse struct {
	Available bool              `json:"available"`
	Conflicts []BookingResponse `json:"conflicts"`
}
