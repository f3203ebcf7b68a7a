package postgres

import (
	"context"
	"fmt"

	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementação do livro de movimentações sobre PostgreSQL
// (usável com pool ou tx). Append-only: não há UPDATE nem DELETE aqui.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste uma movimentação.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, type, quantity, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.Reference, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista até limit movimentações do produto, mais recentes primeiro.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, type, quantity, COALESCE(reference, ''), created_at
		FROM stock_movements
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reference, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// ListRecentEntries lista as últimas entradas com dados do produto.
// LEFT JOIN: entradas de produtos excluídos antes da política de restrição
// vêm com os campos de produto vazios em vez de sumir ou quebrar a consulta.
func (r *StockMovementRepo) ListRecentEntries(ctx context.Context, limit int) ([]repository.EntryRow, error) {
	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, COALESCE(m.reference, ''), m.created_at,
		       COALESCE(p.code, ''), COALESCE(p.name, ''), COALESCE(p.unit, '')
		FROM stock_movements m
		LEFT JOIN products p ON p.id = m.product_id
		WHERE m.type = $1
		ORDER BY m.created_at DESC
		LIMIT $2`
	rows, err := r.q.Query(ctx, query, entity.MovementIn, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent entries: %w", err)
	}
	defer rows.Close()
	var list []repository.EntryRow
	for rows.Next() {
		var row repository.EntryRow
		if err := rows.Scan(
			&row.Movement.ID, &row.Movement.ProductID, &row.Movement.Type,
			&row.Movement.Quantity, &row.Movement.Reference, &row.Movement.CreatedAt,
			&row.ProductCode, &row.ProductName, &row.ProductUnit,
		); err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// HasMovementsForProduct informa se o produto tem histórico no livro.
func (r *StockMovementRepo) HasMovementsForProduct(ctx context.Context, productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM stock_movements WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("movements for product: %w", err)
	}
	return exists, nil
}
