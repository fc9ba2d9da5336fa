package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stayhub-app/stayhub/internal/domain/contract"
	"github.com/stayhub-app/stayhub/internal/handler/http/dto"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// BookingHandlerInterface defines the methods for booking handler to allow interface-based dependency injection (for testing/mocking)
type BookingHandlerInterface interface {
	CreateBooking(*gin.Context)
	CheckAvailability(*gin.Context)
	MyBookings(*gin.Context)
	BookedDates(*gin.Context)
	ListBookings(*gin.Context)
	DeleteBooking(*gin.Context)
}

// Ensure BookingHandler implements BookingHandlerInterface
var _ BookingHandlerInterface = (*BookingHandler)(nil)

type BookingHandler struct {
	bookingUsecase usecasecontract.IBookingUseCase
}

func NewBookingHandler(bookingUsecase usecasecontract.IBookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
	}
}

// CreateBooking reserves a room for the current user. A date conflict with an
// existing booking yields 409.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateBookingRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(c.Request.Context(), userID, req.Room, req.CheckInDate, req.CheckOutDate, req.AmountPaid, req.PaymentInfo)
	if err != nil {
		if errors.Is(err, contract.ErrRoomUnavailable) {
			ErrorHandler(c, http.StatusConflict, err.Error())
			return
		}
		if err.Error() == "room not found" {
			ErrorHandler(c, http.StatusNotFound, "Room not found")
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToBookingResponse(booking))
}

// CheckAvailability reports whether a room is free for a date range.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req dto.CheckAvailabilityRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	available, err := h.bookingUsecase.CheckAvailability(c.Request.Context(), req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CheckAvailabilityResponse{RoomAvailable: available})
}

// MyBookings lists the current user's bookings.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	bookings, err := h.bookingUsecase.MyBookings(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}

	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, dto.ToBookingResponse(&bookings[i]))
	}
	SuccessHandler(c, http.StatusOK, responses)
}

// BookedDates returns every booked day for a room, expanded day by day.
func (h *BookingHandler) BookedDates(c *gin.Context) {
	roomID := c.Param("roomId")
	dates, err := h.bookingUsecase.BookedDates(c.Request.Context(), roomID)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to fetch booked dates")
		return
	}
	SuccessHandler(c, http.StatusOK, dates)
}

// ListBookings returns one page of all bookings (admin view).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	bookings, count, currentPage, pages, err := h.bookingUsecase.ListBookings(c.Request.Context(), page)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}

	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, dto.ToBookingResponse(&bookings[i]))
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedBookingsResponse{
		Bookings: responses,
		Page:     currentPage,
		Pages:    pages,
		Count:    count,
	})
}

// DeleteBooking removes a booking by ID (admin action).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.bookingUsecase.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		ErrorHandler(c, http.StatusNotFound, "Booking not found")
		return
	}
	MessageHandler(c, http.StatusOK, "Booking deleted")
}
