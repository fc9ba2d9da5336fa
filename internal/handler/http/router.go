package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stayhub-app/stayhub/internal/handler/http/middleware"
	usecasecontract "github.com/stayhub-app/stayhub/internal/usecase/contract"
)

type Router struct {
	userHandler    *UserHandler
	roomHandler    *RoomHandler
	bookingHandler *BookingHandler
	paymentHandler *PaymentHandler
	userUsecase    usecasecontract.IUserUseCase
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, roomUsecase usecasecontract.IRoomUseCase, bookingUsecase usecasecontract.IBookingUseCase, paymentService usecasecontract.IPaymentService, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUsecase),
		roomHandler:    NewRoomHandler(roomUsecase),
		bookingHandler: NewBookingHandler(bookingUsecase),
		paymentHandler: NewPaymentHandler(roomUsecase, paymentService, config),
		userUsecase:    userUsecase,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	authed := middleware.AuthMiddleware(r.userUsecase)
	admin := middleware.AdminOnly()

	users := api.Group("/users")
	{
		users.POST("/register", r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.PUT("/update", authed, r.userHandler.UpdateProfile)
		users.PUT("/update/password", authed, r.userHandler.UpdatePassword)

		users.GET("", authed, admin, r.userHandler.ListUsers)
		users.GET("/:id", authed, admin, r.userHandler.GetUser)
		users.PUT("/:id", authed, admin, r.userHandler.UpdateUser)
		users.DELETE("/:id", authed, admin, r.userHandler.DeleteUser)
	}

	rooms := api.Group("/rooms")
	{
		rooms.GET("", r.roomHandler.ListRooms)
		rooms.GET("/:id", r.roomHandler.GetRoom)
		rooms.POST("", authed, r.roomHandler.CreateRoom)
		rooms.PUT("/:id", authed, r.roomHandler.UpdateRoom)
		rooms.DELETE("/:id", authed, admin, r.roomHandler.DeleteRoom)
		rooms.POST("/:id/reviews", authed, r.roomHandler.CreateReview)
	}

	bookings := api.Group("/bookings")
	{
		bookings.POST("", authed, r.bookingHandler.CreateBooking)
		bookings.POST("/check", r.bookingHandler.CheckAvailability)
		bookings.GET("/me", authed, r.bookingHandler.MyBookings)
		bookings.GET("/dates/:roomId", r.bookingHandler.BookedDates)
		bookings.GET("", authed, admin, r.bookingHandler.ListBookings)
		bookings.DELETE("/:id", authed, admin, r.bookingHandler.DeleteBooking)
	}

	payments := api.Group("/payments")
	{
		payments.POST("/checkout-session", authed, r.paymentHandler.CreateCheckoutSession)
		payments.GET("/stripe-client-id", r.paymentHandler.GetStripeClientID)
	}
}
