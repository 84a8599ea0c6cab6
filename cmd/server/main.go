package main

import (
	"strings"

	"goldshop-backend/internal/audit"
	"goldshop-backend/internal/buyback"
	"goldshop-backend/internal/catalog"
	"goldshop-backend/internal/config"
	"goldshop-backend/internal/customer"
	"goldshop-backend/internal/dashboard"
	"goldshop-backend/internal/history"
	"goldshop-backend/internal/inventory"
	"goldshop-backend/internal/ledger"
	"goldshop-backend/internal/logging"
	"goldshop-backend/internal/money"
	"goldshop-backend/internal/notification"
	"goldshop-backend/internal/pos"
	"goldshop-backend/internal/report"
	"goldshop-backend/internal/seed"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	trail := audit.NewTrail()
	led := ledger.New(log, trail,
		money.ParseAmount(cfg.SpotGoldDefault),
		money.ParseAmount(cfg.SpotSilverDefault),
	)
	if cfg.SeedDemoData {
		seed.Load(led)
		log.Info("demo dataset loaded")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if ledger.IsValidation(err) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logging.LogError(log, "http", "errorHandler", c.Method()+" "+c.Path(), nil, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Catalog
	api.Get("/products", catalog.ListProductsHandler(led))
	api.Post("/products", catalog.CreateProductHandler(led))

	// Inventory
	api.Get("/items", inventory.ListItemsHandler(led))
	api.Get("/items/:serial", inventory.GetItemHandler(led))
	api.Post("/items/stock-in", inventory.StockInHandler(led))
	api.Post("/items/stock-in/preview", inventory.StockInPreviewHandler(led))

	// Spot prices & POS
	api.Get("/prices", pos.GetSpotPricesHandler(led))
	api.Put("/prices", pos.UpdateSpotPricesHandler(led))
	api.Post("/sales/quote", pos.QuoteSaleHandler(led))
	api.Post("/sales", pos.CompleteSaleHandler(led))

	// Buyback
	api.Post("/buybacks/quote", buyback.QuoteBuybackHandler(led))
	api.Post("/buybacks", buyback.CompleteBuybackHandler(led))

	// Customers
	api.Get("/customers", customer.ListCustomersHandler(led))
	api.Get("/customers/:id", customer.GetCustomerHandler(led))
	api.Post("/customers", customer.CreateCustomerHandler(led))

	// History & invoices
	api.Get("/transactions", history.ListTransactionsHandler(led))
	api.Get("/transactions/:id", history.GetTransactionHandler(led))
	api.Get("/transactions/:id/invoice", history.GetInvoiceHandler(led))
	api.Get("/price-snapshots", history.ListSnapshotsHandler(led))

	// Notifications
	api.Get("/notifications", notification.ListNotificationsHandler(led))
	api.Delete("/notifications", notification.ClearNotificationsHandler(led))

	// Dashboard & reports
	api.Get("/dashboard", dashboard.StatsHandler(led))
	api.Get("/reports/ledger.xlsx", report.ExportLedgerHandler(led))
	api.Get("/audit-logs", audit.ListAuditLogsHandler(trail))

	log.WithField("port", cfg.HTTPPort).Info("server starting")
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
