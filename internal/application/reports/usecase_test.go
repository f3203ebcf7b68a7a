package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldoficial/armazem-swift/internal/application/reports"
	"github.com/donaldoficial/armazem-swift/internal/domain"
	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
	"github.com/donaldoficial/armazem-swift/internal/testutil"
)

type fixture struct {
	products  *testutil.FakeProductRepo
	sales     *testutil.FakeSaleRepo
	movements *testutil.FakeMovementRepo
	reports   *testutil.FakeReportRepo
	uc        *reports.UseCase
}

func newFixture() *fixture {
	products := testutil.NewFakeProductRepo()
	sales := testutil.NewFakeSaleRepo()
	movements := testutil.NewFakeMovementRepo()
	reportRepo := &testutil.FakeReportRepo{}
	return &fixture{
		products:  products,
		sales:     sales,
		movements: movements,
		reports:   reportRepo,
		uc:        reports.NewUseCase(products, sales, movements, reportRepo),
	}
}

func seedCatalog(f *fixture) {
	f.products.Seed(
		// sem_estoque
		&entity.Product{ID: "p1", Code: "A", Name: "Açúcar",
			CostPrice: decimal.RequireFromString("3.00"), SalePrice: decimal.RequireFromString("5.00"),
			StockQuantity: 0, MinStock: 5},
		// baixo (2 <= 5)
		&entity.Product{ID: "p2", Code: "B", Name: "Café",
			CostPrice: decimal.RequireFromString("10.00"), SalePrice: decimal.RequireFromString("15.00"),
			StockQuantity: 2, MinStock: 5},
		// ok
		&entity.Product{ID: "p3", Code: "C", Name: "Sal",
			CostPrice: decimal.RequireFromString("1.00"), SalePrice: decimal.RequireFromString("2.00"),
			StockQuantity: 10, MinStock: 3},
	)
}

// TestStockReport_Totalizadores: custo = 0×3 + 2×10 + 10×1 = 30.00;
// venda = 0×5 + 2×15 + 10×2 = 50.00. O filtro restringe só as linhas, os
// totalizadores seguem cobrindo o catálogo inteiro.
func TestStockReport_Totalizadores(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	out, err := f.uc.StockReport(context.Background(), reports.StockFilterAll)
	require.NoError(t, err)

	assert.Equal(t, 3, out.TotalProducts)
	assert.True(t, out.CostValue.Equal(decimal.RequireFromString("30.00")),
		"custo total deve ser 30.00, veio %s", out.CostValue)
	assert.True(t, out.SaleValue.Equal(decimal.RequireFromString("50.00")))
	assert.Len(t, out.Rows, 3)
}

func TestStockReport_FiltroBaixo(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	out, err := f.uc.StockReport(context.Background(), reports.StockFilterLow)
	require.NoError(t, err)

	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Café", out.Rows[0].Name)
	assert.Equal(t, string(entity.StockStatusLow), out.Rows[0].Status)
	// totalizadores não mudam com o filtro
	assert.Equal(t, 3, out.TotalProducts)
	assert.True(t, out.CostValue.Equal(decimal.RequireFromString("30.00")))
}

func TestStockReport_FiltroSemEstoque(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	out, err := f.uc.StockReport(context.Background(), reports.StockFilterOut)
	require.NoError(t, err)

	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Açúcar", out.Rows[0].Name)
	assert.True(t, out.Rows[0].TotalValue.Equal(decimal.Zero))
}

func TestStockReport_FiltroInvalido(t *testing.T) {
	f := newFixture()
	_, err := f.uc.StockReport(context.Background(), "qualquer-coisa")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFinancialSummary(t *testing.T) {
	f := newFixture()
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.Local)
	dayStart := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.Local)
	monthStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)

	f.reports.SalesSinceFn = func(since time.Time) (repository.SalesWindowResult, error) {
		switch {
		case since.Equal(dayStart):
			return repository.SalesWindowResult{Total: decimal.RequireFromString("50.00"), Count: 2}, nil
		case since.Equal(monthStart):
			return repository.SalesWindowResult{Total: decimal.RequireFromString("100.00"), Count: 4}, nil
		default:
			t.Fatalf("janela inesperada: %s", since)
			return repository.SalesWindowResult{}, nil
		}
	}
	f.sales.Sales = []*entity.Sale{
		{ID: "s1", Total: decimal.RequireFromString("30.00"), PaymentMethod: entity.PaymentPix, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "s2", Total: decimal.RequireFromString("20.00"), PaymentMethod: entity.PaymentCash, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "antiga", Total: decimal.RequireFromString("50.00"), PaymentMethod: entity.PaymentCard, CreatedAt: monthStart.Add(24 * time.Hour)},
	}

	out, err := f.uc.FinancialSummary(context.Background(), now)
	require.NoError(t, err)

	assert.True(t, out.TodayTotal.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, 2, out.TodayCount)
	assert.True(t, out.MonthTotal.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, 4, out.MonthCount)
	assert.True(t, out.AverageTicket.Equal(decimal.RequireFromString("25.00")),
		"ticket médio deve ser 100.00/4, veio %s", out.AverageTicket)

	require.Len(t, out.TodaySales, 2, "só as vendas de hoje aparecem na lista")
	assert.Equal(t, "s1", out.TodaySales[0].ID, "mais recente primeiro")
}

// TestFinancialSummary_MesSemVendas: ticket médio degrada para zero, nunca
// divisão por zero.
func TestFinancialSummary_MesSemVendas(t *testing.T) {
	f := newFixture()

	out, err := f.uc.FinancialSummary(context.Background(), time.Now())
	require.NoError(t, err)

	assert.Zero(t, out.MonthCount)
	assert.True(t, out.AverageTicket.Equal(decimal.Zero))
	assert.NotNil(t, out.TodaySales)
}

func TestProductHistory(t *testing.T) {
	f := newFixture()
	seedCatalog(f)
	base := time.Now()
	f.movements.Movements = []*entity.StockMovement{
		{ID: "m1", ProductID: "p2", Type: entity.MovementIn, Quantity: 10, Reference: "NF 1", CreatedAt: base.Add(-time.Hour)},
		{ID: "m2", ProductID: "p2", Type: entity.MovementOut, Quantity: 8, Reference: "Venda #abc12345", CreatedAt: base},
		{ID: "outro-produto", ProductID: "p3", Type: entity.MovementIn, Quantity: 1, CreatedAt: base},
	}

	out, err := f.uc.ProductHistory(context.Background(), "café")
	require.NoError(t, err)

	assert.Equal(t, "Café", out.Product.Name)
	assert.Equal(t, string(entity.StockStatusLow), out.Product.StockStatus)
	require.Len(t, out.Movements, 2)
	assert.Equal(t, "m2", out.Movements[0].ID, "mais recente primeiro")
	assert.Equal(t, "m1", out.Movements[1].ID)
}

func TestProductHistory_NaoEncontrado(t *testing.T) {
	f := newFixture()
	_, err := f.uc.ProductHistory(context.Background(), "banana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductHistory_TermoVazio(t *testing.T) {
	f := newFixture()
	_, err := f.uc.ProductHistory(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
