package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLineRequest linha do carrinho enviada pelo terminal.
type SaleLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// FinalizeSaleRequest entrada para finalizar uma venda.
type FinalizeSaleRequest struct {
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=dinheiro cartao pix"`
	Notes         string            `json:"notes"`
	Items         []SaleLineRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse item de uma venda (com snapshots de nome e preço).
type SaleItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse saída de uma venda finalizada.
type SaleResponse struct {
	ID            string             `json:"id"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	Notes         string             `json:"notes,omitempty"`
	Items         []SaleItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}
