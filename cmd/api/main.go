package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/stayhub-app/stayhub/internal/handler/http"
	redisclient "github.com/stayhub-app/stayhub/internal/infrastructure/cache"
	"github.com/stayhub-app/stayhub/internal/infrastructure/config"
	database "github.com/stayhub-app/stayhub/internal/infrastructure/database"
	"github.com/stayhub-app/stayhub/internal/infrastructure/jwt"
	"github.com/stayhub-app/stayhub/internal/infrastructure/logger"
	passwordservice "github.com/stayhub-app/stayhub/internal/infrastructure/password_service"
	"github.com/stayhub-app/stayhub/internal/infrastructure/payment"
	"github.com/stayhub-app/stayhub/internal/infrastructure/repository/mongodb"
	"github.com/stayhub-app/stayhub/internal/infrastructure/store"
	"github.com/stayhub-app/stayhub/internal/infrastructure/uuidgen"
	"github.com/stayhub-app/stayhub/internal/infrastructure/validator"
	"github.com/stayhub-app/stayhub/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	roomRepo := mongodb.NewRoomRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	appConfig := config.NewConfig()
	jwtManager := jwt.NewJWTManager(jwtSecret, appConfig.GetAccessTokenExpiry())
	jwtService := jwt.NewJWTService(jwtManager)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	stripeService := payment.NewStripeService(os.Getenv("STRIPE_API_KEY"), appConfig.GetAppBaseURL())

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appConfig, appValidator, uuidGenerator)
	roomUsecase := usecase.NewRoomUsecase(roomRepo, uuidGenerator, appLogger)
	bookingUsecase := usecase.NewBookingUsecase(bookingRepo, roomRepo, uuidGenerator, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		roomCache := store.NewRoomCacheStore(rdb)
		roomUsecase.SetRoomCache(roomCache)
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(userUsecase, roomUsecase, bookingUsecase, stripeService, appConfig)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
