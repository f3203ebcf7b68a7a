package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only de agregados para dashboard e relatórios.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository constrói o adaptador de agregados.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// CountProducts total de produtos cadastrados.
func (r *ReportRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("report.CountProducts: %w", err)
	}
	return n, nil
}

// CountStockBelow produtos com stock_quantity abaixo do corte.
func (r *ReportRepo) CountStockBelow(ctx context.Context, threshold int) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE stock_quantity < $1`, threshold,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("report.CountStockBelow: %w", err)
	}
	return n, nil
}

// SalesSince total e contagem das vendas com created_at >= since.
// COALESCE devolve zero quando a janela não tem vendas.
func (r *ReportRepo) SalesSince(ctx context.Context, since time.Time) (repository.SalesWindowResult, error) {
	const query = `
		SELECT COALESCE(SUM(total), 0) AS total, COUNT(*) AS sales
		FROM sales
		WHERE created_at >= $1`
	var out repository.SalesWindowResult
	err := r.pool.QueryRow(ctx, query, since).Scan(&out.Total, &out.Count)
	if err != nil {
		return repository.SalesWindowResult{}, fmt.Errorf("report.SalesSince: %w", err)
	}
	return out, nil
}

// StockValuation valor do estoque corrente a custo e a venda.
func (r *ReportRepo) StockValuation(ctx context.Context) (repository.StockValuationResult, error) {
	const query = `
		SELECT
		    COALESCE(SUM(stock_quantity * cost_price), 0) AS cost_value,
		    COALESCE(SUM(stock_quantity * sale_price), 0) AS sale_value,
		    COUNT(*)                                      AS products
		FROM products`
	var out repository.StockValuationResult
	err := r.pool.QueryRow(ctx, query).Scan(&out.CostValue, &out.SaleValue, &out.Products)
	if err != nil {
		return repository.StockValuationResult{}, fmt.Errorf("report.StockValuation: %w", err)
	}
	return out, nil
}
