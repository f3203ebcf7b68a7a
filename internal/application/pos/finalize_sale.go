// Package pos contém a sessão de carrinho e a finalização de venda do PDV.
package pos

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/donaldoficial/armazem-swift/internal/application/dto"
	"github.com/donaldoficial/armazem-swift/internal/domain"
	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
)

// FinalizeSaleUseCase transforma um carrinho em venda persistida.
//
// Toda a sequência — venda, itens, baixa de estoque e movimentações de saída —
// roda dentro de uma única transação via TxRunner: falha em qualquer passo
// desfaz os anteriores. A baixa usa decremento condicional no banco, então
// uma venda concorrente que esgotou o estoque aborta a transação inteira com
// domain.ErrInsufficientStock em vez de gravar saldo negativo.
type FinalizeSaleUseCase struct {
	txRunner TxRunner
	products repository.ProductRepository
	sales    repository.SaleRepository
}

// NewFinalizeSaleUseCase constrói o caso de uso.
func NewFinalizeSaleUseCase(
	txRunner TxRunner,
	products repository.ProductRepository,
	sales repository.SaleRepository,
) *FinalizeSaleUseCase {
	return &FinalizeSaleUseCase{txRunner: txRunner, products: products, sales: sales}
}

// Finalize persiste a venda do carrinho com a forma de pagamento escolhida.
// No sucesso o carrinho é esvaziado; em falha ele permanece intacto para o
// operador tentar de novo.
func (uc *FinalizeSaleUseCase) Finalize(ctx context.Context, cart *Cart, paymentMethod, notes string) (*dto.SaleResponse, error) {
	if cart == nil {
		return nil, domain.ErrInvalidInput
	}
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !entity.ValidPaymentMethod(paymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Total:         cart.Total(),
		PaymentMethod: paymentMethod,
		Notes:         notes,
		CreatedAt:     now,
	}
	// Referência curta da venda nas movimentações, ex: "Venda #3f1c9a2b"
	saleRef := fmt.Sprintf("Venda #%s", sale.ID[:8])

	items := make([]*entity.SaleItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, &entity.SaleItem{
			ID:          uuid.New().String(),
			SaleID:      sale.ID,
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name, // snapshot: histórico não muda com o produto
			Quantity:    line.Quantity,
			UnitPrice:   line.Product.SalePrice,
			Subtotal:    line.Subtotal(),
		})
	}

	err := uc.txRunner.Run(ctx, func(
		sales repository.SaleRepository,
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
	) error {
		if err := sales.Create(ctx, sale); err != nil {
			return err
		}
		if err := sales.CreateItems(ctx, items); err != nil {
			return err
		}
		for _, line := range lines {
			if err := products.DecrementStock(ctx, line.Product.ID, line.Quantity); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				ProductID: line.Product.ID,
				Type:      entity.MovementOut,
				Quantity:  line.Quantity,
				Reference: saleRef,
				CreatedAt: now,
			}
			if err := movements.Create(ctx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	cart.Clear()
	return toSaleResponse(sale, items), nil
}

// FinalizeFromRequest monta uma sessão de carrinho a partir das linhas
// enviadas pelo terminal e finaliza. O Add de cada linha aplica o teto do
// snapshot de estoque; a checagem definitiva segue sendo a transação.
func (uc *FinalizeSaleUseCase) FinalizeFromRequest(ctx context.Context, in dto.FinalizeSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	cart := NewCart()
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		if err := cart.Add(product, it.Quantity); err != nil {
			return nil, err
		}
	}
	return uc.Finalize(ctx, cart, in.PaymentMethod, in.Notes)
}

// GetByID obtém uma venda finalizada com seus itens.
func (uc *FinalizeSaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.sales.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

func toSaleResponse(sale *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:            sale.ID,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		Notes:         sale.Notes,
		CreatedAt:     sale.CreatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.SaleItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return out
}
