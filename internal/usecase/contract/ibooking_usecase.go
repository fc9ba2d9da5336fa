package usecasecontract

import (
	"context"
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// IBookingUseCase defines booking-related business logic.
type IBookingUseCase interface {
	CreateBooking(ctx context.Context, userID, roomID string, checkIn, checkOut time.Time, amountPaid float64, payment entity.PaymentInfo) (*entity.Booking, error)
	// CheckAvailability reports whether the room is free for the closed
	// [checkIn, checkOut] interval.
	CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
	MyBookings(ctx context.Context, userID string) ([]entity.Booking, error)
	// BookedDates returns every booked day for the room, each stay expanded
	// day by day.
	BookedDates(ctx context.Context, roomID string) ([]time.Time, error)
	ListBookings(ctx context.Context, page int) (bookings []entity.Booking, totalCount int64, currentPage int, totalPages int, err error)
	DeleteBooking(ctx context.Context, bookingID string) error
}
