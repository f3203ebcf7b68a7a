package repository

import (
	"context"

	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
)

// ProductRepository define o porto de persistência para produtos (DIP).
//
// IncrementStock e DecrementStock são mutações atômicas do lado do banco
// (UPDATE condicional), nunca read-modify-write no cliente: duas sessões de
// PDV concorrentes não podem perder atualizações entre si.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	// List devolve todos os produtos em ordem alfabética de nome.
	List(ctx context.Context) ([]*entity.Product, error)
	// ListAvailable devolve os produtos com estoque positivo (tela do PDV).
	ListAvailable(ctx context.Context) ([]*entity.Product, error)
	// Search busca por substring (case-insensitive) em código ou nome.
	Search(ctx context.Context, query string, limit int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// IncrementStock soma quantity (positivo) ao estoque do produto.
	IncrementStock(ctx context.Context, id string, quantity int) error
	// DecrementStock subtrai quantity apenas se houver saldo suficiente;
	// devolve domain.ErrInsufficientStock caso contrário.
	DecrementStock(ctx context.Context, id string, quantity int) error
}
