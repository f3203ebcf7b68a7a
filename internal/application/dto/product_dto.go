package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para cadastrar um produto.
type CreateProductRequest struct {
	Code          string          `json:"code" validate:"required,min=1,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price" validate:"required"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	MinStock      int             `json:"min_stock" validate:"min=0"`
}

// UpdateProductRequest entrada para atualização parcial de um produto.
// Campos nil não são alterados. StockQuantity não aparece aqui: estoque só
// muda via movimentações (venda ou entrada manual).
type UpdateProductRequest struct {
	Code        *string          `json:"code" validate:"omitempty,min=1,max=100"`
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Unit        *string          `json:"unit"`
	CostPrice   *decimal.Decimal `json:"cost_price"`
	SalePrice   *decimal.Decimal `json:"sale_price"`
	MinStock    *int             `json:"min_stock" validate:"omitempty,min=0"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
	MinStock      int             `json:"min_stock"`
	StockStatus   string          `json:"stock_status"` // sem_estoque | baixo | ok
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
