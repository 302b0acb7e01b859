package http

import (
	"time"

	"github.com/stayforge/hotel-booking-backend/internal/bill"
	"github.com/stayforge/hotel-booking-backend/internal/pkg/request"
	userHttp "github.com/stayforge/hotel-booking-backend/internal/user/http"
)

type ListBillsRequest struct {
	request.ListParams
	BookingID string `form:"booking_id" binding:"omitempty,uuid"`
	UserID    string `form:"user_id" binding:"omitempty,uuid"`
}

type BillResponse struct {
	ID                  string            `json:"id"`
	User                *userHttp.UserTag `json:"user,omitempty"`
	BookingID           string            `json:"booking_id"`
	RoomCharges         int64             `json:"room_charges"`
	TotalServiceCharges int64             `json:"total_service_charges"`
	TotalTax            int64             `json:"total_tax"`
	TotalDiscount       int64             `json:"total_discount"`
	LateCheckoutCharge  int64             `json:"late_checkout_charge"`
	TotalAmount         int64             `json:"total_amount"`
	PaidAmount          int64             `json:"paid_amount"`
	OutstandingAmount   int64             `json:"outstanding_amount"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

func NewBillResponse(b *bill.Bill) BillResponse {
	resp := BillResponse{
		ID:                  b.ID,
		BookingID:           b.BookingID,
		RoomCharges:         b.RoomCharges,
		TotalServiceCharges: b.TotalServiceCharges,
		TotalTax:            b.TotalTax,
		TotalDiscount:       b.TotalDiscount,
		LateCheckoutCharge:  b.LateCheckoutCharge,
		TotalAmount:         b.TotalAmount,
		PaidAmount:          b.PaidAmount,
		OutstandingAmount:   b.OutstandingAmount,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
	if b.UserID != nil {
		resp.User = &userHttp.UserTag{ID: *b.UserID, Name: b.UserName}
	}
	return resp
}

type CreateBillRequest struct {
	BookingID          string `json:"booking_id" binding:"required,uuid"`
	TotalTax           int64  `json:"total_tax" binding:"omitempty,gte=0"`
	TotalDiscount      int64  `json:"total_discount" binding:"omitempty,gte=0"`
	LateCheckoutCharge int64  `json:"late_checkout_charge" binding:"omitempty,gte=0"`
}

type UpdateBillRequest struct {
	TotalTax           *int64 `json:"total_tax" binding:"omitempty,gte=0"`
	TotalDiscount      *int64 `json:"total_discount" binding:"omitempty,gte=0"`
	LateCheckoutCharge *int64 `json:"late_checkout_charge" binding:"omitempty,gte=0"`
}

type ListPaymentsRequest struct {
	request.ListParams
	BillID string `form:"bill_id" binding:"omitempty,uuid"`
}

type PaymentResponse struct {
	ID         string    `json:"id"`
	BillID     string    `json:"bill_id"`
	Method     string    `json:"method"`
	PaidAmount int64     `json:"paid_amount"`
	PaidAt     time.Time `json:"paid_at"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewPaymentResponse(p *bill.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		BillID:     p.BillID,
		Method:     p.Method,
		PaidAmount: p.PaidAmount,
		PaidAt:     p.PaidAt,
		CreatedAt:  p.CreatedAt,
	}
}

type CreatePaymentRequest struct {
	BillID string     `json:"bill_id" binding:"required,uuid"`
	Method string     `json:"method" binding:"required,oneof=cash card bank_transfer online"`
	Amount int64      `json:"amount" binding:"required,gt=0"`
	PaidAt *time.Time `json:"paid_at"`
}

type UpdatePaymentRequest struct {
	BillID *string    `json:"bill_id" binding:"omitempty,uuid"`
	Method *string    `json:"method" binding:"omitempty,oneof=cash card bank_transfer online"`
	Amount *int64     `json:"amount" binding:"omitempty,gt=0"`
	PaidAt *time.Time `json:"paid_at"`
}
