package dto

import (
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// Request DTOs for Booking Handlers

// CreateBookingRequest defines the structure for creating a booking.
type CreateBookingRequest struct {
	Room         string             `json:"room" binding:"required"`
	CheckInDate  time.Time          `json:"checkInDate" binding:"required"`
	CheckOutDate time.Time          `json:"checkOutDate" binding:"required"`
	AmountPaid   float64            `json:"amountPaid" binding:"min=0"`
	PaymentInfo  entity.PaymentInfo `json:"paymentInfo"`
}

// CheckAvailabilityRequest defines the structure for an availability query.
type CheckAvailabilityRequest struct {
	RoomID       string    `json:"roomId" binding:"required"`
	CheckInDate  time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate time.Time `json:"checkOutDate" binding:"required"`
}

// Response DTOs

// CheckAvailabilityResponse reports whether the room is free for the range.
type CheckAvailabilityResponse struct {
	RoomAvailable bool `json:"roomAvailable"`
}

// BookingResponse defines the standard JSON response for a single booking.
type BookingResponse struct {
	ID           string             `json:"id"`
	Room         string             `json:"room"`
	User         string             `json:"user"`
	CheckInDate  time.Time          `json:"checkInDate"`
	CheckOutDate time.Time          `json:"checkOutDate"`
	DaysOfStay   int                `json:"daysOfStay"`
	AmountPaid   float64            `json:"amountPaid"`
	PaymentInfo  entity.PaymentInfo `json:"paymentInfo"`
	PaidAt       time.Time          `json:"paidAt"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// PaginatedBookingsResponse is the page envelope for the admin booking listing.
type PaginatedBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
	Count    int64             `json:"count"`
}

// CheckoutSessionRequest defines the structure for starting a paid checkout.
type CheckoutSessionRequest struct {
	RoomID       string    `json:"roomId" binding:"required"`
	CheckInDate  time.Time `json:"checkInDate" binding:"required"`
	CheckOutDate time.Time `json:"checkOutDate" binding:"required"`
}

// CheckoutSessionResponse carries the provider's hosted checkout URL.
type CheckoutSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// ToBookingResponse converts an entity.Booking to a BookingResponse DTO.
func ToBookingResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		Room:         b.RoomID,
		User:         b.UserID,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		DaysOfStay:   b.DaysOfStay,
		AmountPaid:   b.AmountPaid,
		PaymentInfo:  b.PaymentInfo,
		PaidAt:       b.PaidAt,
		CreatedAt:    b.CreatedAt,
	}
}
