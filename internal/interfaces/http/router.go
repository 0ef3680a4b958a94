package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stokpro-api/internal/application/analytics"
	"github.com/jhoicas/stokpro-api/internal/application/inventory"
	"github.com/jhoicas/stokpro-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Manager     *inventory.Manager
	DashboardUC *analytics.DashboardUseCase
	InsightUC   *usecase.InsightUseCase
	Report      ReportGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Manager)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Manager)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Delete("/:id", categoryHandler.Delete)

	// Transactions
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.Manager)
	transactions.Post("/", transactionHandler.Register)
	transactions.Get("/", transactionHandler.List)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Insights
	insights := api.Group("/insights")
	insightHandler := NewInsightHandler(deps.InsightUC)
	insights.Get("/", insightHandler.Get)
	insights.Post("/refresh", insightHandler.Refresh)

	// Estado completo: exportación, reporte y reinicio
	state := api.Group("/state")
	stateHandler := NewStateHandler(deps.Manager, deps.Report)
	state.Get("/export", stateHandler.Export)
	state.Get("/report.pdf", stateHandler.ReportPDF)
	state.Post("/reset", stateHandler.Reset)
}
