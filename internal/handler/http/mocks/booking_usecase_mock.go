package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/contract"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// MockBookingUsecase is a mock implementation of the IBookingUseCase interface
type MockBookingUsecase struct {
	// Control mock behavior
	ShouldFailCreateBooking bool
	RoomUnavailable         bool
	CreateRoomNotFound      bool
	ShouldFailCheck         bool
	Unavailable             bool
	ShouldFailMyBookings    bool
	ShouldFailBookedDates   bool
	ShouldFailListBookings  bool
	ShouldFailDeleteBooking bool

	// Return values
	MockBooking  entity.Booking
	MockBookings []entity.Booking
	MockDates    []time.Time
	MockCount    int64
	MockPage     int
	MockPages    int
}

// Ensure MockBookingUsecase implements the correct interface for handler.NewBookingHandler
var _ usecasecontract.IBookingUseCase = (*MockBookingUsecase)(nil)

func NewMockBookingUsecase() *MockBookingUsecase {
	return &MockBookingUsecase{
		MockBooking: entity.Booking{
			ID:           "mock-booking-id",
			RoomID:       "mock-room-id",
			UserID:       "mock-user-id",
			CheckInDate:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			DaysOfStay:   5,
		},
		MockPage:  1,
		MockPages: 1,
	}
}

func (m *MockBookingUsecase) CreateBooking(ctx context.Context, userID, roomID string, checkIn, checkOut time.Time, amountPaid float64, payment entity.PaymentInfo) (*entity.Booking, error) {
	if m.RoomUnavailable {
		return nil, contract.ErrRoomUnavailable
	}
	if m.CreateRoomNotFound {
		return nil, errors.New("room not found")
	}
	if m.ShouldFailCreateBooking {
		return nil, errors.New("booking creation failed")
	}
	return &m.MockBooking, nil
}

func (m *MockBookingUsecase) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	if m.ShouldFailCheck {
		return false, errors.New("availability check failed")
	}
	return !m.Unavailable, nil
}

func (m *MockBookingUsecase) MyBookings(ctx context.Context, userID string) ([]entity.Booking, error) {
	if m.ShouldFailMyBookings {
		return nil, errors.New("list bookings failed")
	}
	return m.MockBookings, nil
}

func (m *MockBookingUsecase) BookedDates(ctx context.Context, roomID string) ([]time.Time, error) {
	if m.ShouldFailBookedDates {
		return nil, errors.New("fetch booked dates failed")
	}
	return m.MockDates, nil
}

func (m *MockBookingUsecase) ListBookings(ctx context.Context, page int) ([]entity.Booking, int64, int, int, error) {
	if m.ShouldFailListBookings {
		return nil, 0, 0, 0, errors.New("list bookings failed")
	}
	return m.MockBookings, m.MockCount, m.MockPage, m.MockPages, nil
}

func (m *MockBookingUsecase) DeleteBooking(ctx context.Context, bookingID string) error {
	if m.ShouldFailDeleteBooking {
		return errors.New("booking not found")
	}
	return nil
}
