package dto

import "github.com/shopspring/decimal"

// StockReportRow linha do relatório de estoque.
type StockReportRow struct {
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	StockQuantity int             `json:"stock_quantity"`
	MinStock      int             `json:"min_stock"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	TotalValue    decimal.Decimal `json:"total_value"` // quantidade × preço de venda
	Status        string          `json:"status"`      // sem_estoque | baixo | ok
}

// StockReportResponse relatório de estoque com totalizadores.
type StockReportResponse struct {
	CostValue     decimal.Decimal  `json:"cost_value"` // Σ(qtd × custo)
	SaleValue     decimal.Decimal  `json:"sale_value"` // Σ(qtd × venda)
	TotalProducts int              `json:"total_products"`
	Rows          []StockReportRow `json:"rows"`
}

// FinancialSummaryResponse resumo financeiro (dia corrente e mês corrente).
type FinancialSummaryResponse struct {
	TodayTotal    decimal.Decimal `json:"today_total"`
	TodayCount    int             `json:"today_count"`
	MonthTotal    decimal.Decimal `json:"month_total"`
	MonthCount    int             `json:"month_count"`
	AverageTicket decimal.Decimal `json:"average_ticket"` // MonthTotal / MonthCount; zero sem vendas
	TodaySales    []SaleResponse  `json:"today_sales"`
}

// ProductHistoryResponse produto resolvido pela busca mais suas movimentações.
type ProductHistoryResponse struct {
	Product   ProductResponse    `json:"product"`
	Movements []MovementResponse `json:"movements"`
}

// DashboardSummaryResponse indicadores da tela inicial.
// LowStockCount usa o corte fixo de 5 unidades (métrica de atenção global);
// a classificação por min_stock de cada produto vive no relatório de estoque.
type DashboardSummaryResponse struct {
	TotalProducts int             `json:"total_products"`
	LowStockCount int             `json:"low_stock_count"`
	SalesToday    decimal.Decimal `json:"sales_today"`
	SalesMonth    decimal.Decimal `json:"sales_month"`
	StockValue    decimal.Decimal `json:"stock_value"` // a preço de custo
}
