package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eesaa/retail-suite/internal/application/assistant"
	"github.com/eesaa/retail-suite/internal/application/auth"
	"github.com/eesaa/retail-suite/internal/application/billing"
	"github.com/eesaa/retail-suite/internal/application/documents"
	"github.com/eesaa/retail-suite/internal/application/inventory"
	"github.com/eesaa/retail-suite/internal/application/ledger"
	"github.com/eesaa/retail-suite/internal/application/reports"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	BillingUC   *billing.UseCase
	LedgerUC    *ledger.UseCase
	InventoryUC *inventory.UseCase
	ReportsUC   *reports.UseCase
	AssistantUC *assistant.UseCase
	DocumentsUC *documents.UseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/users", authHandler.ListUsers)

	// Everything else requires a Bearer token
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Dashboard and reports
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	protected.Get("/dashboard", reportsHandler.Dashboard)
	protected.Get("/audit", reportsHandler.AuditTrail)
	reportGroup := protected.Group("/reports")
	reportGroup.Get("/sales", reportsHandler.Sales)
	reportGroup.Get("/balance-sheet", reportsHandler.BalanceSheet)

	// Billing
	billingHandler := NewBillingHandler(deps.BillingUC)
	protected.Post("/billing/checkout", billingHandler.Checkout)
	invoices := protected.Group("/invoices")
	invoices.Get("/", billingHandler.List)
	invoices.Get("/:id", billingHandler.GetByID)
	invoices.Get("/:id/share", billingHandler.Share)

	// Catalog and stock
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	protected.Get("/branches", inventoryHandler.ListBranches)
	products := protected.Group("/products")
	products.Get("/", inventoryHandler.ListProducts)
	products.Post("/", inventoryHandler.CreateProduct)
	products.Post("/transfer", inventoryHandler.Transfer)
	products.Get("/:id", inventoryHandler.GetProduct)
	products.Put("/:id", inventoryHandler.UpdateProduct)
	products.Post("/:id/refill", inventoryHandler.Refill)
	stock := protected.Group("/stock")
	stock.Get("/requests", inventoryHandler.ListRequests)
	stock.Post("/requests", inventoryHandler.RaiseRequest)
	stock.Post("/requests/:id/process", inventoryHandler.ProcessRequest)
	stock.Get("/movements", inventoryHandler.ListMovements)

	// Dealers and collections
	customerHandler := NewCustomerHandler(deps.LedgerUC)
	customers := protected.Group("/customers")
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Get("/:id/ledger", customerHandler.Ledger)
	customers.Get("/:id/statement", customerHandler.Statement)
	protected.Post("/payments", customerHandler.CollectPayment)
	protected.Get("/payments", customerHandler.ListPayments)

	// Printable documents and exports
	documentsHandler := NewDocumentsHandler(deps.DocumentsUC)
	invoices.Get("/:id/pdf", documentsHandler.InvoicePDF)
	protected.Get("/payments/:id/pdf", documentsHandler.ReceiptPDF)
	customers.Get("/:id/statement/pdf", documentsHandler.StatementPDF)
	reportGroup.Get("/sales/pdf", documentsHandler.SalesReportPDF)
	reportGroup.Get("/sales/xlsx", documentsHandler.SalesReportXLSX)
	reportGroup.Get("/balance-sheet/pdf", documentsHandler.BalanceSheetPDF)

	// Assistant
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	assistantGroup := protected.Group("/assistant")
	assistantGroup.Post("/chat", assistantHandler.Chat)
	assistantGroup.Get("/analysis", assistantHandler.Analyze)
	assistantGroup.Get("/trends", assistantHandler.Trends)
	assistantGroup.Post("/email-draft", assistantHandler.EmailDraft)
}
