package entity

import (
	"time"
)

// PaymentInfo is the opaque payment-provider receipt stored with a booking.
type PaymentInfo struct {
	ID     string `bson:"id" json:"id"`
	Status string `bson:"status" json:"status"`
}

// Booking represents a paid stay in a room.
type Booking struct {
	ID           string      `bson:"_id,omitempty" json:"id"`
	RoomID       string      `bson:"room" json:"room"`
	UserID       string      `bson:"user" json:"user"`
	CheckInDate  time.Time   `bson:"check_in_date" json:"check_in_date"`
	CheckOutDate time.Time   `bson:"check_out_date" json:"check_out_date"`
	DaysOfStay   int         `bson:"days_of_stay" json:"days_of_stay"`
	AmountPaid   float64     `bson:"amount_paid" json:"amount_paid"`
	PaymentInfo  PaymentInfo `bson:"payment_info" json:"payment_info"`
	PaidAt       time.Time   `bson:"paid_at" json:"paid_at"`
	CreatedAt    time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time   `bson:"updated_at" json:"updated_at"`
}

// Overlaps reports whether the booking's stay conflicts with the proposed
// [checkIn, checkOut] range. Intervals are closed on both ends: a stay that
// checks out the day a new one checks in still conflicts.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !b.CheckInDate.After(checkOut) && !b.CheckOutDate.Before(checkIn)
}

// StayLength returns the number of nights between check-in and check-out.
func StayLength(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
