package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus classificação de estoque de um produto.
type StockStatus string

const (
	StockStatusOut StockStatus = "sem_estoque" // quantidade <= 0
	StockStatusLow StockStatus = "baixo"       // 0 < quantidade <= mínimo
	StockStatusOK  StockStatus = "ok"
)

// Product representa um produto do armazém.
// StockQuantity é o total corrente denormalizado; toda mutação acontece na
// mesma transação que grava o movimento correspondente, nunca por
// read-modify-write do cliente.
type Product struct {
	ID            string
	Code          string // código único, digitado pelo operador
	Name          string
	Description   string
	Category      string
	Unit          string // un, kg, cx, ...
	CostPrice     decimal.Decimal
	SalePrice     decimal.Decimal
	StockQuantity int
	MinStock      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ClassifyStock classifica a situação de estoque.
// Regra única usada pelo catálogo, relatório de estoque e dashboard:
// sem_estoque se qty <= 0; baixo se 0 < qty <= min; ok caso contrário.
func ClassifyStock(quantity, minStock int) StockStatus {
	switch {
	case quantity <= 0:
		return StockStatusOut
	case quantity <= minStock:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}

// StockStatus classificação do próprio produto.
func (p *Product) StockStatus() StockStatus {
	return ClassifyStock(p.StockQuantity, p.MinStock)
}
