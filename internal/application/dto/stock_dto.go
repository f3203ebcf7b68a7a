package dto

import "time"

// RegisterEntryRequest entrada manual de estoque (recebimento de mercadoria).
type RegisterEntryRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Reference string `json:"reference"` // vazio -> "Entrada manual"
}

// MovementResponse movimentação de estoque.
type MovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"` // entrada | saida
	Quantity  int       `json:"quantity"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}

// EntryRowResponse entrada recente com dados do produto (barra lateral da tela).
type EntryRowResponse struct {
	Movement    MovementResponse `json:"movement"`
	ProductCode string           `json:"product_code"`
	ProductName string           `json:"product_name"`
	ProductUnit string           `json:"product_unit"`
}
