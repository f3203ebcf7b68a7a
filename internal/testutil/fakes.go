// Package testutil contém repositórios em memória para os testes dos casos
// de uso. Reproduzem o contrato dos adaptadores PostgreSQL, inclusive o
// decremento condicional de estoque e o rollback do TxRunner.
package testutil

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donaldoficial/armazem-swift/internal/domain"
	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
	"github.com/donaldoficial/armazem-swift/internal/domain/repository"
)

// ─── Produtos ─────────────────────────────────────────────────────────────────

// FakeProductRepo implementação em memória de repository.ProductRepository.
type FakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*FakeProductRepo)(nil)

// NewFakeProductRepo cria o repositório vazio.
func NewFakeProductRepo() *FakeProductRepo {
	return &FakeProductRepo{products: make(map[string]*entity.Product)}
}

// Seed insere produtos diretamente, sem validação.
func (r *FakeProductRepo) Seed(products ...*entity.Product) {
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
}

// StockOf devolve o estoque corrente do produto (zero se não existir).
func (r *FakeProductRepo) StockOf(id string) int {
	if p, ok := r.products[id]; ok {
		return p.StockQuantity
	}
	return 0
}

func (r *FakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	for _, p := range r.products {
		if p.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

func (r *FakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *FakeProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *FakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	return r.sortedByName(func(*entity.Product) bool { return true }), nil
}

func (r *FakeProductRepo) ListAvailable(_ context.Context) ([]*entity.Product, error) {
	return r.sortedByName(func(p *entity.Product) bool { return p.StockQuantity > 0 }), nil
}

func (r *FakeProductRepo) Search(_ context.Context, query string, limit int) ([]*entity.Product, error) {
	q := strings.ToLower(query)
	matches := r.sortedByName(func(p *entity.Product) bool {
		return strings.Contains(strings.ToLower(p.Code), q) ||
			strings.Contains(strings.ToLower(p.Name), q)
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *FakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	current, ok := r.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.products {
		if p.ID != product.ID && p.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *product
	cp.StockQuantity = current.StockQuantity // estoque não muda via Update
	r.products[product.ID] = &cp
	return nil
}

func (r *FakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *FakeProductRepo) IncrementStock(_ context.Context, id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.StockQuantity += quantity
	return nil
}

func (r *FakeProductRepo) DecrementStock(_ context.Context, id string, quantity int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.StockQuantity < quantity {
		return domain.ErrInsufficientStock
	}
	p.StockQuantity -= quantity
	return nil
}

func (r *FakeProductRepo) sortedByName(keep func(*entity.Product) bool) []*entity.Product {
	var out []*entity.Product
	for _, p := range r.products {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *FakeProductRepo) snapshot() map[string]*entity.Product {
	snap := make(map[string]*entity.Product, len(r.products))
	for id, p := range r.products {
		cp := *p
		snap[id] = &cp
	}
	return snap
}

// ─── Vendas ───────────────────────────────────────────────────────────────────

// FakeSaleRepo implementação em memória de repository.SaleRepository.
type FakeSaleRepo struct {
	Sales []*entity.Sale
	Items map[string][]*entity.SaleItem
}

var _ repository.SaleRepository = (*FakeSaleRepo)(nil)

// NewFakeSaleRepo cria o repositório vazio.
func NewFakeSaleRepo() *FakeSaleRepo {
	return &FakeSaleRepo{Items: make(map[string][]*entity.SaleItem)}
}

func (r *FakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	cp := *sale
	r.Sales = append(r.Sales, &cp)
	return nil
}

func (r *FakeSaleRepo) CreateItems(_ context.Context, items []*entity.SaleItem) error {
	for _, it := range items {
		cp := *it
		r.Items[it.SaleID] = append(r.Items[it.SaleID], &cp)
	}
	return nil
}

func (r *FakeSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	for _, s := range r.Sales {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *FakeSaleRepo) ListItems(_ context.Context, saleID string) ([]*entity.SaleItem, error) {
	items := r.Items[saleID]
	out := make([]*entity.SaleItem, 0, len(items))
	for _, it := range items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *FakeSaleRepo) ListSince(_ context.Context, since time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.Sales {
		if !s.CreatedAt.Before(since) {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *FakeSaleRepo) HasItemsForProduct(_ context.Context, productID string) (bool, error) {
	for _, items := range r.Items {
		for _, it := range items {
			if it.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *FakeSaleRepo) snapshot() ([]*entity.Sale, map[string][]*entity.SaleItem) {
	sales := make([]*entity.Sale, len(r.Sales))
	copy(sales, r.Sales)
	items := make(map[string][]*entity.SaleItem, len(r.Items))
	for id, list := range r.Items {
		cp := make([]*entity.SaleItem, len(list))
		copy(cp, list)
		items[id] = cp
	}
	return sales, items
}

// ─── Movimentações ────────────────────────────────────────────────────────────

// FakeMovementRepo implementação em memória de repository.StockMovementRepository.
// Products, quando definido, alimenta os dados de produto de ListRecentEntries.
type FakeMovementRepo struct {
	Movements []*entity.StockMovement
	Products  *FakeProductRepo
}

var _ repository.StockMovementRepository = (*FakeMovementRepo)(nil)

// NewFakeMovementRepo cria o repositório vazio.
func NewFakeMovementRepo() *FakeMovementRepo {
	return &FakeMovementRepo{}
}

func (r *FakeMovementRepo) Create(_ context.Context, movement *entity.StockMovement) error {
	cp := *movement
	r.Movements = append(r.Movements, &cp)
	return nil
}

func (r *FakeMovementRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.Movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *FakeMovementRepo) ListRecentEntries(_ context.Context, limit int) ([]repository.EntryRow, error) {
	var out []repository.EntryRow
	for _, m := range r.Movements {
		if m.Type != entity.MovementIn {
			continue
		}
		row := repository.EntryRow{Movement: *m}
		if r.Products != nil {
			if p, ok := r.Products.products[m.ProductID]; ok {
				row.ProductCode = p.Code
				row.ProductName = p.Name
				row.ProductUnit = p.Unit
			}
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Movement.CreatedAt.After(out[j].Movement.CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *FakeMovementRepo) HasMovementsForProduct(_ context.Context, productID string) (bool, error) {
	for _, m := range r.Movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeMovementRepo) snapshot() []*entity.StockMovement {
	out := make([]*entity.StockMovement, len(r.Movements))
	copy(out, r.Movements)
	return out
}

// ─── Agregados (dashboard e relatórios) ───────────────────────────────────────

// FakeReportRepo implementação configurável de repository.ReportRepository.
// SalesSinceFn permite distinguir as janelas de dia e mês no mesmo teste.
// Os campos *Err forçam a falha da consulta correspondente.
type FakeReportRepo struct {
	ProductsCount int
	ProductsErr   error

	BelowCount int
	BelowErr   error

	SalesSinceFn  func(since time.Time) (repository.SalesWindowResult, error)
	SalesSinceErr error

	Valuation    repository.StockValuationResult
	ValuationErr error
}

var _ repository.ReportRepository = (*FakeReportRepo)(nil)

func (r *FakeReportRepo) CountProducts(context.Context) (int, error) {
	return r.ProductsCount, r.ProductsErr
}

func (r *FakeReportRepo) CountStockBelow(_ context.Context, _ int) (int, error) {
	return r.BelowCount, r.BelowErr
}

func (r *FakeReportRepo) SalesSince(_ context.Context, since time.Time) (repository.SalesWindowResult, error) {
	if r.SalesSinceErr != nil {
		return repository.SalesWindowResult{}, r.SalesSinceErr
	}
	if r.SalesSinceFn != nil {
		return r.SalesSinceFn(since)
	}
	return repository.SalesWindowResult{Total: decimal.Zero}, nil
}

func (r *FakeReportRepo) StockValuation(context.Context) (repository.StockValuationResult, error) {
	return r.Valuation, r.ValuationErr
}

// ─── TxRunner ─────────────────────────────────────────────────────────────────

// FakeTxRunner executa o callback contra os repositórios em memória e, em
// caso de erro, restaura o estado anterior. Modela o rollback do banco para
// que os testes possam afirmar atomicidade.
type FakeTxRunner struct {
	Sales     *FakeSaleRepo
	Products  *FakeProductRepo
	Movements *FakeMovementRepo

	Calls int
}

// NewFakeTxRunner cria o runner sobre os três repositórios.
func NewFakeTxRunner(sales *FakeSaleRepo, products *FakeProductRepo, movements *FakeMovementRepo) *FakeTxRunner {
	return &FakeTxRunner{Sales: sales, Products: products, Movements: movements}
}

// Run executa fn; erro desfaz todas as mutações feitas dentro do callback.
func (r *FakeTxRunner) Run(ctx context.Context, fn func(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
) error) error {
	r.Calls++

	productSnap := r.Products.snapshot()
	salesSnap, itemsSnap := r.Sales.snapshot()
	movementSnap := r.Movements.snapshot()

	if err := fn(r.Sales, r.Products, r.Movements); err != nil {
		r.Products.products = productSnap
		r.Sales.Sales = salesSnap
		r.Sales.Items = itemsSnap
		r.Movements.Movements = movementSnap
		return err
	}
	return nil
}
