package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesWindowResult agregado de vendas de uma janela de tempo.
type SalesWindowResult struct {
	Total decimal.Decimal
	Count int
}

// StockValuationResult valor do estoque corrente a preço de custo e de venda:
// Σ(quantidade × custo) e Σ(quantidade × venda).
type StockValuationResult struct {
	CostValue decimal.Decimal
	SaleValue decimal.Decimal
	Products  int
}

// ReportRepository consultas read-only de agregados para dashboard e relatórios.
// As somas usam COALESCE no banco: janela sem vendas devolve zero, nunca erro.
type ReportRepository interface {
	CountProducts(ctx context.Context) (int, error)
	// CountStockBelow conta produtos com stock_quantity < threshold.
	// O dashboard usa o corte fixo 5, independente do min_stock de cada produto.
	CountStockBelow(ctx context.Context, threshold int) (int, error)
	SalesSince(ctx context.Context, since time.Time) (SalesWindowResult, error)
	StockValuation(ctx context.Context) (StockValuationResult, error)
}
