package pos_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldoficial/armazem-swift/internal/application/pos"
	"github.com/donaldoficial/armazem-swift/internal/domain"
	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
)

func produto(id, name, price string, stock int) *entity.Product {
	return &entity.Product{
		ID:            id,
		Code:          "C-" + id,
		Name:          name,
		SalePrice:     decimal.RequireFromString(price),
		StockQuantity: stock,
	}
}

func TestCart_AddEIncremento(t *testing.T) {
	cart := pos.NewCart()
	arroz := produto("p1", "Arroz", "10.00", 10)

	require.NoError(t, cart.Add(arroz, 2))
	require.NoError(t, cart.Add(arroz, 3))

	lines := cart.Lines()
	require.Len(t, lines, 1, "mesmo produto deve acumular na mesma linha")
	assert.Equal(t, 5, lines[0].Quantity)
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("50.00")),
		"total deve ser 5 × 10.00, veio %s", cart.Total())
}

func TestCart_AddRejeitaAlemDoSnapshot(t *testing.T) {
	cart := pos.NewCart()
	feijao := produto("p1", "Feijão", "8.00", 3)

	require.NoError(t, cart.Add(feijao, 3))
	err := cart.Add(feijao, 1)

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, cart.Lines()[0].Quantity, "rejeição não pode alterar o carrinho")
}

func TestCart_AddEntradaInvalida(t *testing.T) {
	cart := pos.NewCart()
	assert.ErrorIs(t, cart.Add(nil, 1), domain.ErrInvalidInput)
	assert.ErrorIs(t, cart.Add(produto("p1", "Café", "15.00", 5), 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, cart.Add(produto("p1", "Café", "15.00", 5), -2), domain.ErrInvalidInput)
	assert.True(t, cart.IsEmpty())
}

func TestCart_ChangeQuantity(t *testing.T) {
	cart := pos.NewCart()
	leite := produto("p1", "Leite", "6.00", 5)
	require.NoError(t, cart.Add(leite, 2))

	// aumento dentro do teto
	require.NoError(t, cart.ChangeQuantity("p1", 2))
	assert.Equal(t, 4, cart.Lines()[0].Quantity)

	// aumento além do snapshot é rejeitado sem efeito
	assert.ErrorIs(t, cart.ChangeQuantity("p1", 2), domain.ErrInsufficientStock)
	assert.Equal(t, 4, cart.Lines()[0].Quantity)

	// resultado <= 0 remove a linha
	require.NoError(t, cart.ChangeQuantity("p1", -4))
	assert.True(t, cart.IsEmpty())

	// linha inexistente
	assert.ErrorIs(t, cart.ChangeQuantity("p1", 1), domain.ErrNotFound)
}

func TestCart_RemoveEClear(t *testing.T) {
	cart := pos.NewCart()
	require.NoError(t, cart.Add(produto("p1", "Arroz", "10.00", 10), 1))
	require.NoError(t, cart.Add(produto("p2", "Feijão", "8.00", 10), 1))

	cart.Remove("p1")
	assert.Equal(t, 1, cart.Len())
	cart.Remove("p1") // remover de novo é no-op

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().Equal(decimal.Zero))
}

// TestCart_TotalSempreRecalculado garante que o total reflete cada mutação,
// nunca um valor cacheado.
func TestCart_TotalSempreRecalculado(t *testing.T) {
	cart := pos.NewCart()
	require.NoError(t, cart.Add(produto("p1", "Arroz", "10.00", 10), 2))
	require.NoError(t, cart.Add(produto("p2", "Feijão", "5.00", 10), 1))
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("25.00")))

	require.NoError(t, cart.ChangeQuantity("p1", -1))
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("15.00")))

	cart.Remove("p2")
	assert.True(t, cart.Total().Equal(decimal.RequireFromString("10.00")))
}

func TestCart_LinesPreservaOrdemDeInsercao(t *testing.T) {
	cart := pos.NewCart()
	require.NoError(t, cart.Add(produto("p2", "Feijão", "8.00", 10), 1))
	require.NoError(t, cart.Add(produto("p1", "Arroz", "10.00", 10), 1))
	require.NoError(t, cart.Add(produto("p3", "Café", "15.00", 10), 1))

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "p2", lines[0].Product.ID)
	assert.Equal(t, "p1", lines[1].Product.ID)
	assert.Equal(t, "p3", lines[2].Product.ID)
}
