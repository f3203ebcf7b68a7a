// Package analytics contém o caso de uso do dashboard da tela inicial.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donaldoficial/armazem-swift/internal/application/dto"
	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
	"github.com/donaldoficial/armazem-swift/pkg/logger"
)

// lowStockThreshold corte fixo do contador de atenção do dashboard.
// Deliberadamente independente do min_stock de cada produto: o relatório de
// estoque classifica produto a produto, este número é um termômetro global.
const lowStockThreshold = 5

// DashboardUseCase monta o resumo da tela inicial.
//
// As cinco leituras saem em paralelo (são independentes) e cada falha degrada
// o indicador correspondente para zero com log, sem derrubar a página: o
// dashboard é informativo, não transacional.
type DashboardUseCase struct {
	reports repository.ReportRepository
	log     *logger.Logger
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(reports repository.ReportRepository, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{reports: reports, log: log}
}

// GetSummary devolve os indicadores do dashboard para o instante dado.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, now time.Time) *dto.DashboardSummaryResponse {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	type countResult struct {
		n   int
		err error
	}
	type salesResult struct {
		window repository.SalesWindowResult
		err    error
	}
	type valuationResult struct {
		v   repository.StockValuationResult
		err error
	}

	productsCh := make(chan countResult, 1)
	lowStockCh := make(chan countResult, 1)
	todayCh := make(chan salesResult, 1)
	monthCh := make(chan salesResult, 1)
	valueCh := make(chan valuationResult, 1)

	go func() {
		n, err := uc.reports.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reports.CountStockBelow(ctx, lowStockThreshold)
		lowStockCh <- countResult{n, err}
	}()
	go func() {
		w, err := uc.reports.SalesSince(ctx, dayStart)
		todayCh <- salesResult{w, err}
	}()
	go func() {
		w, err := uc.reports.SalesSince(ctx, monthStart)
		monthCh <- salesResult{w, err}
	}()
	go func() {
		v, err := uc.reports.StockValuation(ctx)
		valueCh <- valuationResult{v, err}
	}()

	products := <-productsCh
	lowStock := <-lowStockCh
	today := <-todayCh
	month := <-monthCh
	value := <-valueCh

	out := &dto.DashboardSummaryResponse{
		SalesToday: decimal.Zero,
		SalesMonth: decimal.Zero,
		StockValue: decimal.Zero,
	}
	if products.err != nil {
		uc.log.Warn().Err(products.err).Msg("dashboard: contagem de produtos indisponível")
	} else {
		out.TotalProducts = products.n
	}
	if lowStock.err != nil {
		uc.log.Warn().Err(lowStock.err).Msg("dashboard: contagem de estoque baixo indisponível")
	} else {
		out.LowStockCount = lowStock.n
	}
	if today.err != nil {
		uc.log.Warn().Err(today.err).Msg("dashboard: vendas de hoje indisponíveis")
	} else {
		out.SalesToday = today.window.Total
	}
	if month.err != nil {
		uc.log.Warn().Err(month.err).Msg("dashboard: vendas do mês indisponíveis")
	} else {
		out.SalesMonth = month.window.Total
	}
	if value.err != nil {
		uc.log.Warn().Err(value.err).Msg("dashboard: valor de estoque indisponível")
	} else {
		out.StockValue = value.v.CostValue
	}
	return out
}
