package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/stayhub-app/stayhub/internal/domain/contract"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
	"github.com/stayhub-app/stayhub/internal/infrastructure/metrics"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

const errBookingNotFound = "booking not found"

// BookingUsecase implements the IBookingUseCase interface.
type BookingUsecase struct {
	bookingRepo contract.IBookingRepository
	roomRepo    contract.IRoomRepository
	uuidgen     contract.IUUIDGenerator
	logger      usecasecontract.IAppLogger
}

// NewBookingUsecase creates a new BookingUsecase instance.
func NewBookingUsecase(bookingRepo contract.IBookingRepository, roomRepo contract.IRoomRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *BookingUsecase {
	return &BookingUsecase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		uuidgen:     uuidgen,
		logger:      logger,
	}
}

// check if BookingUsecase implements the IBookingUseCase
var _ usecasecontract.IBookingUseCase = (*BookingUsecase)(nil)

// CreateBooking stores a new booking for the user. The repository re-runs
// the overlap check and the insert inside one transaction, so two concurrent
// requests cannot both commit overlapping stays.
func (uc *BookingUsecase) CreateBooking(ctx context.Context, userID, roomID string, checkIn, checkOut time.Time, amountPaid float64, payment entity.PaymentInfo) (*entity.Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, errors.New("check-out date must be after check-in date")
	}

	if _, err := uc.roomRepo.GetRoomByID(ctx, roomID); err != nil {
		return nil, errors.New(errRoomNotFound)
	}

	now := time.Now()
	booking := &entity.Booking{
		ID:           uc.uuidgen.NewUUID(),
		RoomID:       roomID,
		UserID:       userID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		DaysOfStay:   entity.StayLength(checkIn, checkOut),
		AmountPaid:   amountPaid,
		PaymentInfo:  payment,
		PaidAt:       now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.bookingRepo.CreateBooking(ctx, booking); err != nil {
		if errors.Is(err, contract.ErrRoomUnavailable) {
			return nil, err
		}
		uc.logger.Errorf("failed to create booking: %v", err)
		return nil, errors.New("failed to create booking")
	}

	metrics.BookingsCreatedTotal.Inc()
	return booking, nil
}

// CheckAvailability reports whether the room is free for the proposed dates.
// The overlap test is closed on both ends: a stay that checks out the same
// day the proposed one checks in counts as a conflict.
func (uc *BookingUsecase) CheckAvailability(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, errors.New("check-out date must be after check-in date")
	}

	count, err := uc.bookingRepo.CountOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		uc.logger.Errorf("failed to check availability for room %s: %v", roomID, err)
		return false, errors.New("failed to check availability")
	}
	return count == 0, nil
}

// MyBookings returns every booking made by the user.
func (uc *BookingUsecase) MyBookings(ctx context.Context, userID string) ([]entity.Booking, error) {
	bookings, err := uc.bookingRepo.ListBookingsByUser(ctx, userID)
	if err != nil {
		uc.logger.Errorf("failed to list bookings for user %s: %v", userID, err)
		return nil, errors.New("failed to list bookings")
	}

	result := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *b)
	}
	return result, nil
}

// BookedDates returns every booked day for the room, each stay expanded day
// by day from check-in to check-out inclusive.
func (uc *BookingUsecase) BookedDates(ctx context.Context, roomID string) ([]time.Time, error) {
	bookings, err := uc.bookingRepo.ListBookingsByRoom(ctx, roomID)
	if err != nil {
		uc.logger.Errorf("failed to list bookings for room %s: %v", roomID, err)
		return nil, errors.New("failed to list booked dates")
	}

	var dates []time.Time
	for _, b := range bookings {
		for d := b.CheckInDate; !d.After(b.CheckOutDate); d = d.AddDate(0, 0, 1) {
			dates = append(dates, d)
		}
	}
	return dates, nil
}

// ListBookings returns one page of all bookings for admin management.
func (uc *BookingUsecase) ListBookings(ctx context.Context, page int) ([]entity.Booking, int64, int, int, error) {
	if page < 1 {
		page = 1
	}

	bookings, count, err := uc.bookingRepo.ListBookings(ctx, page, DefaultPageSize)
	if err != nil {
		uc.logger.Errorf("failed to list bookings: %v", err)
		return nil, 0, 0, 0, errors.New("failed to list bookings")
	}

	result := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *b)
	}
	return result, count, page, totalPages(count, DefaultPageSize), nil
}

// DeleteBooking removes a booking by ID.
func (uc *BookingUsecase) DeleteBooking(ctx context.Context, bookingID string) error {
	if _, err := uc.bookingRepo.GetBookingByID(ctx, bookingID); err != nil {
		return errors.New(errBookingNotFound)
	}
	return uc.bookingRepo.DeleteBooking(ctx, bookingID)
}
