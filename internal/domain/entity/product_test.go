package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
)

// TestClassifyStock cobre a regra única de classificação usada por catálogo,
// relatório de estoque e dashboard: sem_estoque se qty <= 0; baixo se
// 0 < qty <= min; ok caso contrário.
func TestClassifyStock(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minStock int
		want     entity.StockStatus
	}{
		{"estoque zerado", 0, 5, entity.StockStatusOut},
		{"estoque negativo conta como zerado", -3, 5, entity.StockStatusOut},
		{"abaixo do minimo", 3, 5, entity.StockStatusLow},
		{"exatamente no minimo e baixo", 5, 5, entity.StockStatusLow},
		{"acima do minimo", 6, 5, entity.StockStatusOK},
		{"minimo zero com estoque positivo", 1, 0, entity.StockStatusOK},
		{"minimo zero com estoque zerado", 0, 0, entity.StockStatusOut},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, entity.ClassifyStock(tc.quantity, tc.minStock))
		})
	}
}

func TestProduct_StockStatus(t *testing.T) {
	p := &entity.Product{StockQuantity: 2, MinStock: 10}
	assert.Equal(t, entity.StockStatusLow, p.StockStatus())
}

func TestValidPaymentMethod(t *testing.T) {
	assert.True(t, entity.ValidPaymentMethod(entity.PaymentCash))
	assert.True(t, entity.ValidPaymentMethod(entity.PaymentCard))
	assert.True(t, entity.ValidPaymentMethod(entity.PaymentPix))
	assert.False(t, entity.ValidPaymentMethod("cheque"))
	assert.False(t, entity.ValidPaymentMethod(""))
}
