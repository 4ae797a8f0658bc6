package config

import (
	"agrisync-backend/internal/api/handlers"
	"agrisync-backend/internal/api/routes"
	"agrisync-backend/internal/middleware"
	"agrisync-backend/internal/utils"
	"agrisync-backend/internal/utils/storage"
	"agrisync-backend/pkg/ai"
	"agrisync-backend/pkg/batch"
	"agrisync-backend/pkg/jwt"
	"agrisync-backend/pkg/midtrans"
	"agrisync-backend/pkg/order"
	"agrisync-backend/pkg/otp"
	"agrisync-backend/pkg/quote"
	"agrisync-backend/pkg/user"
	"agrisync-backend/pkg/verify"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	batchRepository := batch.NewBatchRepository(db)
	verifyRepository := verify.NewVerifyRepository(db)
	orderRepository := order.NewOrderRepository(db)
	quoteRepository := quote.NewQuoteRepository(db)
	otpRepository := otp.NewOTPRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	batchService := batch.NewBatchService(batchRepository, s3)
	verifyService := verify.NewVerifyService(verifyRepository, batchRepository)
	orderService := order.NewOrderService(orderRepository)
	midtransService := midtrans.NewMidtransService(orderRepository)
	quoteService := quote.NewQuoteService(quoteRepository)
	otpService := otp.NewOTPService(otpRepository, userRepository)
	aiService := ai.NewAIService()

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	batchHandler := handlers.NewBatchHandler(batchService, validator)
	verifyHandler := handlers.NewVerifyHandler(verifyService)
	orderHandler := handlers.NewOrderHandler(orderService, midtransService, validator)
	quoteHandler := handlers.NewQuoteHandler(quoteService, validator)
	otpHandler := handlers.NewOTPHandler(otpService, validator)
	aiHandler := handlers.NewAIHandler(aiService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		UserHandler:   userHandler,
		BatchHandler:  batchHandler,
		VerifyHandler: verifyHandler,
		OrderHandler:  orderHandler,
		QuoteHandler:  quoteHandler,
		OTPHandler:    otpHandler,
		AIHandler:     aiHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
