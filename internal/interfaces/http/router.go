package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donaldoficial/armazem-swift/internal/application/analytics"
	"github.com/donaldoficial/armazem-swift/internal/application/catalog"
	"github.com/donaldoficial/armazem-swift/internal/application/pos"
	"github.com/donaldoficial/armazem-swift/internal/application/reports"
	"github.com/donaldoficial/armazem-swift/internal/application/stock"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC   *catalog.ProductUseCase
	FinalizeUC  *pos.FinalizeSaleUseCase
	StockUC     *stock.EntryUseCase
	ReportsUC   *reports.UseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de produtos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Vendas (PDV)
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.FinalizeUC)
	sales.Post("/", saleHandler.Finalize)
	sales.Get("/:id", saleHandler.GetByID)

	// Entradas de estoque
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/entries", stockHandler.RegisterEntry)
	stockGroup.Get("/entries", stockHandler.ListRecent)

	// Relatórios
	reportsGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/stock", reportHandler.Stock)
	reportsGroup.Get("/financial", reportHandler.Financial)
	reportsGroup.Get("/product", reportHandler.ProductHistory)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)
}
