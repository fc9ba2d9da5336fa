package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayhub-app/stayhub/internal/domain/entity"
	"github.com/stayhub-app/stayhub/internal/handler/http/dto"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

// PaymentHandlerInterface defines the methods for payment handler to allow interface-based dependency injection (for testing/mocking)
type PaymentHandlerInterface interface {
	CreateCheckoutSession(*gin.Context)
	GetStripeClientID(*gin.Context)
}

// Ensure PaymentHandler implements PaymentHandlerInterface
var _ PaymentHandlerInterface = (*PaymentHandler)(nil)

type PaymentHandler struct {
	roomUsecase    usecasecontract.IRoomUseCase
	paymentService usecasecontract.IPaymentService
	config         usecasecontract.IConfigProvider
}

func NewPaymentHandler(roomUsecase usecasecontract.IRoomUseCase, paymentService usecasecontract.IPaymentService, config usecasecontract.IConfigProvider) *PaymentHandler {
	return &PaymentHandler{
		roomUsecase:    roomUsecase,
		paymentService: paymentService,
		config:         config,
	}
}

// CreateCheckoutSession starts a hosted checkout for a stay. The amount is
// priced server-side from the room's nightly rate and the stay length.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	userEmail := c.GetString("userEmail")

	var req dto.CheckoutSessionRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if !req.CheckOutDate.After(req.CheckInDate) {
		ErrorHandler(c, http.StatusBadRequest, "Check-out date must be after check-in date")
		return
	}

	room, err := h.roomUsecase.GetRoomByID(c.Request.Context(), req.RoomID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "Room not found")
		return
	}

	days := entity.StayLength(req.CheckInDate, req.CheckOutDate)
	amountCents := int64(float64(days) * room.PricePerNight * 100)
	description := fmt.Sprintf("%s, %d night(s)", room.Name, days)

	url, sessionID, err := h.paymentService.CreateCheckoutSession(amountCents, "usd", description, userEmail)
	if err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Failed to create checkout session")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.CheckoutSessionResponse{SessionID: sessionID, URL: url})
}

// GetStripeClientID exposes the publishable key for the payment form.
func (h *PaymentHandler) GetStripeClientID(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, gin.H{"stripeApiKey": h.config.GetStripeClientID()})
}
