package contract

import (
	"context"
	"errors"
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/entity"
)

// ErrRoomUnavailable is returned by CreateBooking when the requested dates
// conflict with an existing booking for the same room.
var ErrRoomUnavailable = errors.New("room is not available for the requested dates")

type IBookingRepository interface {
	// CreateBooking inserts the booking after re-running the overlap check
	// inside the same transaction. Returns ErrRoomUnavailable on conflict.
	CreateBooking(ctx context.Context, booking *entity.Booking) error
	// CountOverlapping counts bookings for the room whose [check-in, check-out]
	// closed interval intersects the given range.
	CountOverlapping(ctx context.Context, roomID string, checkIn, checkOut time.Time) (int64, error)
	GetBookingByID(ctx context.Context, id string) (*entity.Booking, error)
	// ListBookingsByUser returns every booking made by the user.
	ListBookingsByUser(ctx context.Context, userID string) ([]*entity.Booking, error)
	// ListBookingsByRoom returns every booking for the room.
	ListBookingsByRoom(ctx context.Context, roomID string) ([]*entity.Booking, error)
	// ListBookings returns one page of bookings plus the total booking count.
	ListBookings(ctx context.Context, page, pageSize int) ([]*entity.Booking, int64, error)
	DeleteBooking(ctx context.Context, id string) error
}
