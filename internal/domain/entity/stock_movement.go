package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovementIn  = "entrada"
	MovementOut = "saida"
)

// StockMovement registro append-only de uma movimentação de estoque.
// Nunca é atualizado nem apagado pelo fluxo normal; a soma com sinal das
// movimentações de um produto deve bater com Product.StockQuantity.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string // entrada | saida
	Quantity  int    // sempre positivo; o sinal vem do Type
	Reference string // nota fiscal, "Venda #abc12345", "Entrada manual", ...
	CreatedAt time.Time
}
