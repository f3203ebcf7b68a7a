// Package stock contém o caso de uso de entrada manual de estoque
// (recebimento de mercadoria com referência livre, ex: número da nota).
package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/donaldoficial/armazem-swift/internal/application/dto"
	"github.com/donaldoficial/armazem-swift/internal/domain"
	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
)

// defaultReference referência aplicada quando o operador não informa uma.
const defaultReference = "Entrada manual"

// recentEntriesLimit entradas exibidas na barra lateral da tela.
const recentEntriesLimit = 10

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Incremento de estoque e registro da
// movimentação de entrada valem os dois ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sales repository.SaleRepository,
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error) error
}

// EntryUseCase registra entradas manuais de estoque.
type EntryUseCase struct {
	txRunner  TxRunner
	products  repository.ProductRepository
	movements repository.StockMovementRepository
}

// NewEntryUseCase constrói o caso de uso.
func NewEntryUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
) *EntryUseCase {
	return &EntryUseCase{txRunner: txRunner, products: products, movements: movements}
}

// RegisterEntry soma a quantidade ao estoque do produto e grava a
// movimentação de entrada, na mesma transação. O incremento é atômico no
// banco, então entradas e vendas concorrentes não se perdem.
func (uc *EntryUseCase) RegisterEntry(ctx context.Context, in dto.RegisterEntryRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	reference := in.Reference
	if reference == "" {
		reference = defaultReference
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      entity.MovementIn,
		Quantity:  in.Quantity,
		Reference: reference,
		CreatedAt: time.Now(),
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.SaleRepository,
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error {
		if err := products.IncrementStock(ctx, in.ProductID, in.Quantity); err != nil {
			return err
		}
		return movements.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// ListRecent devolve as últimas entradas registradas com dados do produto.
func (uc *EntryUseCase) ListRecent(ctx context.Context) ([]dto.EntryRowResponse, error) {
	rows, err := uc.movements.ListRecentEntries(ctx, recentEntriesLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.EntryRowResponse{
			Movement:    *toMovementResponse(&row.Movement),
			ProductCode: row.ProductCode,
			ProductName: row.ProductName,
			ProductUnit: row.ProductUnit,
		})
	}
	return out, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
	}
}
