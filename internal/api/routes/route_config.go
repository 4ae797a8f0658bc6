package routes

import (
	"agrisync-backend/internal/api/handlers"
	"agrisync-backend/internal/middleware"
	"agrisync-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	UserHandler   handlers.UserHandler
	BatchHandler  handlers.BatchHandler
	VerifyHandler handlers.VerifyHandler
	OrderHandler  handlers.OrderHandler
	QuoteHandler  handlers.QuoteHandler
	OTPHandler    handlers.OTPHandler
	AIHandler     handlers.AIHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Batches()
	c.Verify()
	c.Orders()
	c.Quotes()
	c.OTP()
	c.AI()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Batches() {
	batches := c.App.Group("/api/v1/batches", c.Middleware.AuthMiddleware(c.JWTService))
	{
		batches.Post("", c.BatchHandler.CreateBatch)
		batches.Get("", c.BatchHandler.GetBatches)
		batches.Get("/:id", c.BatchHandler.GetBatchDetails)
		batches.Post("/:id/events", c.BatchHandler.AddEvent)
		batches.Post("/:id/certifications", c.BatchHandler.AddCertification)
	}

	// Marketplace is the buyer-facing public listing of all batches.
	c.App.Get("/api/v1/marketplace", c.BatchHandler.GetMarketplace)
}

func (c *Config) Verify() {
	// Public: the batch identifier itself is the capability token.
	verify := c.App.Group("/api/v1/verify")
	{
		verify.Get("/:batchId", c.VerifyHandler.VerifyBatch)
		verify.Get("/:batchId/analytics", c.VerifyHandler.GetScanAnalytics)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Post("", c.OrderHandler.CreateOrder)
		orders.Get("", c.OrderHandler.GetOrders)
		orders.Patch("/:id/status", c.OrderHandler.UpdateOrderStatus)
		orders.Delete("/:id", c.OrderHandler.DeleteOrder)
		orders.Post("/:id/pay", c.OrderHandler.CreateOrderPayment)
	}

	c.App.Post("/webhook/midtrans", c.OrderHandler.MidtransWebhookHandler)
}

func (c *Config) Quotes() {
	quotes := c.App.Group("/api/v1/quotes")
	{
		quotes.Post("", c.QuoteHandler.CreateQuote)
		quotes.Get("/producer/:producer", c.Middleware.AuthMiddleware(c.JWTService), c.QuoteHandler.GetQuotesByProducer)
	}
}

func (c *Config) OTP() {
	otp := c.App.Group("/api/v1/otp")
	{
		otp.Post("/send-email", c.OTPHandler.SendEmailOTP)
		otp.Post("/send-sms", c.OTPHandler.SendSMSOTP)
		otp.Post("/verify-email", c.OTPHandler.VerifyEmailOTP)
		otp.Post("/verify-sms", c.OTPHandler.VerifySMSOTP)
		otp.Post("/verify-registration", c.OTPHandler.VerifyRegistration)
	}
}

func (c *Config) AI() {
	c.App.Post("/api/v1/ai/chat", c.AIHandler.Chat)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, AgriSync API is running"})
	})
}
