// Package routes defines the API routing configuration. It wires the
// repositories, services and handlers together and applies the admin
// session middleware where required.
package routes

import (
	"math/rand"
	"time"

	"payport/internal/config"
	"payport/internal/handlers"
	"payport/internal/middleware"
	"payport/internal/repositories"
	"payport/internal/repositories/cache"
	"payport/internal/services/auth"
	"payport/internal/services/dashboard"
	"payport/internal/services/payment"
	"payport/internal/services/receipt"
	"payport/internal/services/transaction"
	"payport/internal/utils"

	"github.com/dgraph-io/badger/v2"
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *badger.DB, receiptCache *cache.CacheService) {
	// Persistence port shared by every flow
	recordRepo := repositories.NewRecordRepository(db)

	// Services
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	paymentService := payment.NewService(recordRepo, rng, payment.Config{
		ProcessingDelay: config.GetDurationEnv("PROCESSING_DELAY", payment.DefaultProcessingDelay),
	})
	receiptService := receipt.NewService(receiptCache)
	transactionService := transaction.NewService(recordRepo, receiptService)
	dashboardService := dashboard.NewService(recordRepo)
	authService := auth.NewService(
		recordRepo,
		config.GetEnv("ADMIN_USERNAME", "admin"),
		config.GetEnv("ADMIN_PASSWORD", "password123"),
	)

	// Handlers
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	receiptHandler := handlers.NewReceiptHandler(transactionService, receiptService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	authHandler := handlers.NewAuthHandler(authService)

	// Root welcome route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Payport API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")
	api.Get("/health", handlers.HealthCheck)

	// Public payment flow
	api.Post("/payments", paymentHandler.SubmitPayment)
	api.Get("/payments", paymentHandler.GetPaymentHistory)
	api.Get("/accounts/:accountNumber/name", paymentHandler.LookupAccountName)
	api.Get("/transactions/:id", transactionHandler.GetTransaction)
	api.Get("/receipts/:id", receiptHandler.DownloadReceipt)

	// Admin area
	authMiddleware := middleware.NewAuthMiddleware(authService)
	admin := api.Group("/admin")
	admin.Post("/login", authHandler.Login)

	protected := admin.Use(authMiddleware.Handler)
	protected.Post("/logout", authHandler.Logout)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)
	protected.Get("/transactions", transactionHandler.GetAllTransactions)
	protected.Post("/transactions/:id/verify", transactionHandler.VerifyTransaction)
	protected.Get("/users", dashboardHandler.GetUsers)
	protected.Delete("/users/:email", dashboardHandler.DeleteUser)

	// Not-found fallback for everything unmatched
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFound(c, "Route not found")
	})
}
