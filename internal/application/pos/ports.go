package pos

import (
	"context"

	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante que venda, itens, baixa de
// estoque e movimentações sejam gravados todos ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		sales repository.SaleRepository,
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error) error
}
