// Package catalog contém os casos de uso de cadastro de produtos:
// CRUD, busca interativa e classificação de estoque.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donaldoficial/armazem-swift/internal/application/dto"
	"github.com/donaldoficial/armazem-swift/internal/domain"
	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
)

// searchLimit resultados máximos da busca interativa (tela de PDV e cadastro).
const searchLimit = 20

// defaultUnit unidade aplicada quando o cadastro não informa uma.
const defaultUnit = "un"

// ProductUseCase casos de uso CRUD para produtos. Estoque só muda via
// movimentações (venda ou entrada manual), nunca por aqui.
type ProductUseCase struct {
	products  repository.ProductRepository
	sales     repository.SaleRepository
	movements repository.StockMovementRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	movements repository.StockMovementRepository,
) *ProductUseCase {
	return &ProductUseCase{products: products, sales: sales, movements: movements}
}

// Create cadastra um produto. Código, nome e preço de venda positivo são
// obrigatórios; código duplicado devolve domain.ErrDuplicate.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" || !in.SalePrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.LessThan(decimal.Zero) || in.StockQuantity < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.products.GetByCode(ctx, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Unit == "" {
		in.Unit = defaultUnit
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Code:          in.Code,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Unit:          in.Unit,
		CostPrice:     in.CostPrice,
		SalePrice:     in.SalePrice,
		StockQuantity: in.StockQuantity,
		MinStock:      in.MinStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista todos os produtos em ordem alfabética.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// ListAvailable lista os produtos com estoque positivo (carga da tela de PDV).
func (uc *ProductUseCase) ListAvailable(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.products.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// Search busca produtos por substring de código ou nome, case-insensitive,
// limitada a poucos resultados para uso interativo.
func (uc *ProductUseCase) Search(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	if query == "" {
		return &dto.ProductListResponse{Items: []dto.ProductResponse{}}, nil
	}
	list, err := uc.products.Search(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	return toProductListResponse(list), nil
}

// Update atualização parcial de um produto; sempre renova updated_at.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil && *in.Code != product.Code {
		if *in.Code == "" {
			return nil, domain.ErrInvalidInput
		}
		other, err := uc.products.GetByCode(ctx, *in.Code)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Unit != nil && *in.Unit != "" {
		product.Unit = *in.Unit
	}
	if in.CostPrice != nil {
		if in.CostPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		if !in.SalePrice.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete exclui um produto. Política de restrição: produtos referenciados por
// vendas ou movimentações não podem ser excluídos (domain.ErrConflict), para
// não deixar histórico órfão.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	sold, err := uc.sales.HasItemsForProduct(ctx, id)
	if err != nil {
		return err
	}
	if sold {
		return domain.ErrConflict
	}
	moved, err := uc.movements.HasMovementsForProduct(ctx, id)
	if err != nil {
		return err
	}
	if moved {
		return domain.ErrConflict
	}
	return uc.products.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Unit:          p.Unit,
		CostPrice:     p.CostPrice,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		MinStock:      p.MinStock,
		StockStatus:   string(p.StockStatus()),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductListResponse(list []*entity.Product) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}
}
