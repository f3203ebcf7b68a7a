// Package reports contém os relatórios read-only: estoque, resumo
// financeiro e histórico de movimentações por produto.
package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donaldoficial/armazem-swift/internal/application/dto"
	"github.com/donaldoficial/armazem-swift/internal/domain"
	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
)

// Filtros do relatório de estoque.
const (
	StockFilterAll = "all"
	StockFilterLow = "low"
	StockFilterOut = "out"
)

// historyLimit movimentações máximas no histórico de um produto.
const historyLimit = 50

// UseCase relatórios. Só leitura e redução; nenhuma mutação.
type UseCase struct {
	products  repository.ProductRepository
	sales     repository.SaleRepository
	movements repository.StockMovementRepository
	reports   repository.ReportRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	movements repository.StockMovementRepository,
	reports repository.ReportRepository,
) *UseCase {
	return &UseCase{products: products, sales: sales, movements: movements, reports: reports}
}

// StockReport relatório de níveis de estoque. Os totalizadores consideram
// todos os produtos; o filtro (all, low, out) restringe apenas as linhas,
// usando a classificação por min_stock de cada produto.
func (uc *UseCase) StockReport(ctx context.Context, filter string) (*dto.StockReportResponse, error) {
	switch filter {
	case "", StockFilterAll, StockFilterLow, StockFilterOut:
	default:
		return nil, domain.ErrInvalidInput
	}

	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.StockReportResponse{
		CostValue:     decimal.Zero,
		SaleValue:     decimal.Zero,
		TotalProducts: len(products),
		Rows:          []dto.StockReportRow{},
	}
	for _, p := range products {
		qty := decimal.NewFromInt(int64(p.StockQuantity))
		out.CostValue = out.CostValue.Add(qty.Mul(p.CostPrice))
		out.SaleValue = out.SaleValue.Add(qty.Mul(p.SalePrice))

		status := p.StockStatus()
		switch filter {
		case StockFilterLow:
			if status != entity.StockStatusLow {
				continue
			}
		case StockFilterOut:
			if status != entity.StockStatusOut {
				continue
			}
		}
		out.Rows = append(out.Rows, dto.StockReportRow{
			Code:          p.Code,
			Name:          p.Name,
			StockQuantity: p.StockQuantity,
			MinStock:      p.MinStock,
			SalePrice:     p.SalePrice,
			TotalValue:    qty.Mul(p.SalePrice),
			Status:        string(status),
		})
	}
	return out, nil
}

// FinancialSummary totais de vendas do dia e do mês corrente (calendário
// local) e ticket médio do mês. Mês sem vendas devolve ticket zero, nunca
// divisão por zero.
func (uc *UseCase) FinancialSummary(ctx context.Context, now time.Time) (*dto.FinancialSummaryResponse, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	today, err := uc.reports.SalesSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}
	month, err := uc.reports.SalesSince(ctx, monthStart)
	if err != nil {
		return nil, err
	}
	todaySales, err := uc.sales.ListSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}

	avgTicket := decimal.Zero
	if month.Count > 0 {
		avgTicket = month.Total.Div(decimal.NewFromInt(int64(month.Count))).Round(2)
	}

	out := &dto.FinancialSummaryResponse{
		TodayTotal:    today.Total,
		TodayCount:    today.Count,
		MonthTotal:    month.Total,
		MonthCount:    month.Count,
		AverageTicket: avgTicket,
		TodaySales:    []dto.SaleResponse{},
	}
	for _, s := range todaySales {
		out.TodaySales = append(out.TodaySales, dto.SaleResponse{
			ID:            s.ID,
			Total:         s.Total,
			PaymentMethod: s.PaymentMethod,
			Notes:         s.Notes,
			CreatedAt:     s.CreatedAt,
		})
	}
	return out, nil
}

// ProductHistory resolve o termo de busca para no máximo um produto (primeiro
// que casar por código ou nome) e lista suas movimentações mais recentes.
// Nenhum produto encontrado devolve domain.ErrNotFound.
func (uc *UseCase) ProductHistory(ctx context.Context, query string) (*dto.ProductHistoryResponse, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	matches, err := uc.products.Search(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrNotFound
	}
	p := matches[0]

	movements, err := uc.movements.ListByProduct(ctx, p.ID, historyLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.ProductHistoryResponse{
		Product: dto.ProductResponse{
			ID:            p.ID,
			Code:          p.Code,
			Name:          p.Name,
			Description:   p.Description,
			Category:      p.Category,
			Unit:          p.Unit,
			CostPrice:     p.CostPrice,
			SalePrice:     p.SalePrice,
			StockQuantity: p.StockQuantity,
			MinStock:      p.MinStock,
			StockStatus:   string(p.StockStatus()),
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     p.UpdatedAt,
		},
		Movements: []dto.MovementResponse{},
	}
	for _, m := range movements {
		out.Movements = append(out.Movements, dto.MovementResponse{
			ID:        m.ID,
			ProductID: m.ProductID,
			Type:      m.Type,
			Quantity:  m.Quantity,
			Reference: m.Reference,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
