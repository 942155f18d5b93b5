package handler

import (
	"strings"

	"pharma-dashboard/internal/middleware"
	"pharma-dashboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Services groups everything the HTTP layer depends on.
type Services struct {
	Inventory  service.InventoryService
	Production service.ProductionService
	Sales      service.SalesService
	Financial  service.FinancialService
	Dashboard  service.DashboardService
}

type AppConfig struct {
	AppName        string
	AllowedOrigins []string
}

// NewApp builds the Fiber app with middleware and all API routes.
func NewApp(cfg AppConfig, svc Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ErrorHandler: ErrorHandler,
	})

	app.Use(middleware.RequestLogger()) // Logging request
	app.Use(recover.New())              // Panic recovery
	app.Use(cors.New(cors.Config{       // CORS
		AllowOrigins: strings.Join(cfg.AllowedOrigins, ","),
	}))

	RegisterRoutes(app, svc)
	return app
}

func RegisterRoutes(app *fiber.App, svc Services) {
	dashHandler := NewDashboardHandler(svc.Dashboard)
	productHandler := NewProductHandler(svc.Inventory)
	batchHandler := NewBatchHandler(svc.Production)
	saleHandler := NewSaleHandler(svc.Sales)
	financialHandler := NewFinancialHandler(svc.Financial)

	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Dashboard
	api.Get("/dashboard", dashHandler.GetDashboardSummary)

	// Products
	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/low-stock", productHandler.GetLowStockProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", productHandler.CreateProduct)
	api.Patch("/products/:id", productHandler.UpdateProduct)

	// Production batches
	api.Get("/batches", batchHandler.GetBatches)
	api.Get("/batches/:id", batchHandler.GetBatch)
	api.Post("/batches", batchHandler.CreateBatch)
	api.Patch("/batches/:id", batchHandler.UpdateBatch)

	// Sales
	api.Get("/sales", saleHandler.GetSales)
	api.Get("/sales/:id", saleHandler.GetSale)
	api.Post("/sales", saleHandler.CreateSale)

	// Financial transactions
	api.Get("/financial", financialHandler.GetTransactions)
	api.Get("/financial/:id", financialHandler.GetTransaction)
	api.Post("/financial", financialHandler.CreateTransaction)
}
