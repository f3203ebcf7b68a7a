package repository

import (
	"context"
	"time"

	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
)

// SaleRepository define o porto de persistência para vendas e seus itens.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	CreateItems(ctx context.Context, items []*entity.SaleItem) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	ListItems(ctx context.Context, saleID string) ([]*entity.SaleItem, error)
	// ListSince devolve as vendas com created_at >= since, mais recentes primeiro.
	ListSince(ctx context.Context, since time.Time) ([]*entity.Sale, error)
	// HasItemsForProduct informa se alguma venda referencia o produto
	// (usado pela política de restrição na exclusão de produtos).
	HasItemsForProduct(ctx context.Context, productID string) (bool, error)
}
