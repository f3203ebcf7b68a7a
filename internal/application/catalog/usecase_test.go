package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldoficial/armazem-swift/internal/application/catalog"
	"github.com/donaldoficial/armazem-swift/internal/application/dto"
	"github.com/donaldoficial/armazem-swift/internal/domain"
	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
	"github.com/donaldoficial/armazem-swift/internal/testutil"
)

type fixture struct {
	products  *testutil.FakeProductRepo
	sales     *testutil.FakeSaleRepo
	movements *testutil.FakeMovementRepo
	uc        *catalog.ProductUseCase
}

func newFixture() *fixture {
	products := testutil.NewFakeProductRepo()
	sales := testutil.NewFakeSaleRepo()
	movements := testutil.NewFakeMovementRepo()
	return &fixture{
		products:  products,
		sales:     sales,
		movements: movements,
		uc:        catalog.NewProductUseCase(products, sales, movements),
	}
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:          "ARZ-01",
		Name:          "Arroz 5kg",
		Category:      "Alimentos",
		CostPrice:     decimal.RequireFromString("18.00"),
		SalePrice:     decimal.RequireFromString("25.90"),
		StockQuantity: 12,
		MinStock:      4,
	}
}

func TestCreate_ProdutoValido(t *testing.T) {
	f := newFixture()

	out, err := f.uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ARZ-01", out.Code)
	assert.Equal(t, "un", out.Unit, "unidade não informada recebe o padrão")
	assert.Equal(t, string(entity.StockStatusOK), out.StockStatus)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCreate_EntradasInvalidas(t *testing.T) {
	f := newFixture()
	cases := []struct {
		name   string
		mutate func(*dto.CreateProductRequest)
	}{
		{"sem codigo", func(r *dto.CreateProductRequest) { r.Code = "" }},
		{"sem nome", func(r *dto.CreateProductRequest) { r.Name = "" }},
		{"preco de venda zero", func(r *dto.CreateProductRequest) { r.SalePrice = decimal.Zero }},
		{"preco de venda negativo", func(r *dto.CreateProductRequest) { r.SalePrice = decimal.RequireFromString("-1") }},
		{"custo negativo", func(r *dto.CreateProductRequest) { r.CostPrice = decimal.RequireFromString("-1") }},
		{"estoque negativo", func(r *dto.CreateProductRequest) { r.StockQuantity = -1 }},
		{"minimo negativo", func(r *dto.CreateProductRequest) { r.MinStock = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreate()
			tc.mutate(&in)
			_, err := f.uc.Create(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	in := validCreate()
	in.Name = "Outro arroz"
	_, err = f.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_Parcial(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	novoNome := "Arroz tipo 1 5kg"
	out, err := f.uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name: &novoNome,
	})
	require.NoError(t, err)

	assert.Equal(t, novoNome, out.Name)
	assert.Equal(t, created.Code, out.Code, "campos não enviados ficam como estavam")
	assert.Equal(t, created.StockQuantity, out.StockQuantity)
	assert.True(t, out.UpdatedAt.After(created.UpdatedAt) || out.UpdatedAt.Equal(created.UpdatedAt))
}

func TestUpdate_CodigoDuplicado(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	other := validCreate()
	other.Code = "FEI-01"
	other.Name = "Feijão 1kg"
	feijao, err := f.uc.Create(context.Background(), other)
	require.NoError(t, err)

	dup := "ARZ-01"
	_, err = f.uc.Update(context.Background(), feijao.ID, dto.UpdateProductRequest{Code: &dup})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_ProdutoInexistente(t *testing.T) {
	f := newFixture()
	nome := "x"
	_, err := f.uc.Update(context.Background(), "nao-existe", dto.UpdateProductRequest{Name: &nome})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_SemHistorico(t *testing.T) {
	f := newFixture()
	created, err := f.uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(context.Background(), created.ID))

	_, err = f.uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestDelete_RestritoPorHistorico: produtos já vendidos ou movimentados não
// podem ser excluídos, para não deixar histórico órfão.
func TestDelete_RestritoPorHistorico(t *testing.T) {
	t.Run("referenciado por venda", func(t *testing.T) {
		f := newFixture()
		created, err := f.uc.Create(context.Background(), validCreate())
		require.NoError(t, err)

		require.NoError(t, f.sales.CreateItems(context.Background(), []*entity.SaleItem{
			{ID: "i1", SaleID: "s1", ProductID: created.ID, Quantity: 1},
		}))

		assert.ErrorIs(t, f.uc.Delete(context.Background(), created.ID), domain.ErrConflict)
	})

	t.Run("referenciado por movimentacao", func(t *testing.T) {
		f := newFixture()
		created, err := f.uc.Create(context.Background(), validCreate())
		require.NoError(t, err)

		require.NoError(t, f.movements.Create(context.Background(), &entity.StockMovement{
			ID: "m1", ProductID: created.ID, Type: entity.MovementIn, Quantity: 5,
		}))

		assert.ErrorIs(t, f.uc.Delete(context.Background(), created.ID), domain.ErrConflict)
	})
}

func TestDelete_ProdutoInexistente(t *testing.T) {
	f := newFixture()
	assert.ErrorIs(t, f.uc.Delete(context.Background(), "nao-existe"), domain.ErrNotFound)
}

func TestSearch(t *testing.T) {
	f := newFixture()
	for _, in := range []dto.CreateProductRequest{
		{Code: "ARZ-01", Name: "Arroz 5kg", SalePrice: decimal.RequireFromString("25.90")},
		{Code: "FEI-01", Name: "Feijão 1kg", SalePrice: decimal.RequireFromString("8.50")},
		{Code: "CAF-01", Name: "Café 500g", SalePrice: decimal.RequireFromString("15.00")},
	} {
		_, err := f.uc.Create(context.Background(), in)
		require.NoError(t, err)
	}

	t.Run("por substring de nome, case-insensitive", func(t *testing.T) {
		out, err := f.uc.Search(context.Background(), "arroz")
		require.NoError(t, err)
		require.Equal(t, 1, out.Total)
		assert.Equal(t, "ARZ-01", out.Items[0].Code)
	})

	t.Run("por substring de codigo", func(t *testing.T) {
		out, err := f.uc.Search(context.Background(), "fei")
		require.NoError(t, err)
		require.Equal(t, 1, out.Total)
		assert.Equal(t, "Feijão 1kg", out.Items[0].Name)
	})

	t.Run("termo vazio devolve lista vazia", func(t *testing.T) {
		out, err := f.uc.Search(context.Background(), "")
		require.NoError(t, err)
		assert.Zero(t, out.Total)
		assert.NotNil(t, out.Items)
	})

	t.Run("sem resultado", func(t *testing.T) {
		out, err := f.uc.Search(context.Background(), "banana")
		require.NoError(t, err)
		assert.Zero(t, out.Total)
	})
}

func TestListAvailable_SoComEstoque(t *testing.T) {
	f := newFixture()
	f.products.Seed(
		&entity.Product{ID: "p1", Code: "A", Name: "Com estoque", SalePrice: decimal.RequireFromString("1.00"), StockQuantity: 3},
		&entity.Product{ID: "p2", Code: "B", Name: "Zerado", SalePrice: decimal.RequireFromString("1.00"), StockQuantity: 0},
	)

	out, err := f.uc.ListAvailable(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, out.Total)
	assert.Equal(t, "Com estoque", out.Items[0].Name)
}
