package repository

import (
	"context"

	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
)

// EntryRow movimentação de entrada acompanhada dos dados do produto
// (barra lateral da tela de entrada manual).
type EntryRow struct {
	Movement    entity.StockMovement
	ProductCode string
	ProductName string
	ProductUnit string
}

// StockMovementRepository define o porto de persistência para o livro de
// movimentações. Append-only: não há Update nem Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListByProduct devolve até limit movimentações do produto, mais recentes primeiro.
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error)
	// ListRecentEntries devolve as últimas entradas com dados do produto.
	// Entradas de produtos já excluídos vêm com os campos de produto vazios.
	ListRecentEntries(ctx context.Context, limit int) ([]EntryRow, error)
	// HasMovementsForProduct informa se o produto tem histórico de movimentações.
	HasMovementsForProduct(ctx context.Context, productID string) (bool, error)
}
