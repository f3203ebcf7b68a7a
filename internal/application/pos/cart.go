package pos

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/donaldoficial/armazem-swift/internal/domain"
	"github.com/donaldoficial/armazem-swift/internal/domain/entity"
)

// CartLine linha do carrinho: snapshot do produto no momento do Add mais a
// quantidade acumulada. O snapshot congela preço e nome para a venda; o
// estoque do snapshot serve só de teto local — a checagem definitiva é o
// decremento condicional no banco ao finalizar.
type CartLine struct {
	Product  entity.Product
	Quantity int
}

// Subtotal valor da linha (quantidade × preço de venda do snapshot).
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.SalePrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart sessão de carrinho de um terminal de PDV. Objeto explícito, nunca
// estado global: cada sessão de checkout constrói e descarta o seu.
type Cart struct {
	mu    sync.Mutex
	lines map[string]*CartLine
	order []string // IDs na ordem de inserção
}

// NewCart cria um carrinho vazio.
func NewCart() *Cart {
	return &Cart{lines: make(map[string]*CartLine)}
}

// Add acrescenta delta unidades do produto (nova linha ou incremento).
// Rejeita com domain.ErrInsufficientStock, sem alterar o carrinho, quando a
// quantidade resultante excederia o estoque do snapshot.
func (c *Cart) Add(product *entity.Product, delta int) error {
	if product == nil || delta <= 0 {
		return domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[product.ID]; ok {
		if line.Quantity+delta > line.Product.StockQuantity {
			return domain.ErrInsufficientStock
		}
		line.Quantity += delta
		return nil
	}
	if delta > product.StockQuantity {
		return domain.ErrInsufficientStock
	}
	c.lines[product.ID] = &CartLine{Product: *product, Quantity: delta}
	c.order = append(c.order, product.ID)
	return nil
}

// ChangeQuantity ajusta a quantidade de uma linha em delta. Resultado <= 0
// remove a linha; aumento além do estoque do snapshot é rejeitado sem efeito.
func (c *Cart) ChangeQuantity(productID string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	line, ok := c.lines[productID]
	if !ok {
		return domain.ErrNotFound
	}
	next := line.Quantity + delta
	if next <= 0 {
		c.removeLocked(productID)
		return nil
	}
	if next > line.Product.StockQuantity {
		return domain.ErrInsufficientStock
	}
	line.Quantity = next
	return nil
}

// Remove tira a linha do produto, se existir.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Total soma de quantidade × preço de venda de todas as linhas.
// Sempre recalculado, nunca cacheado entre mutações.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, id := range c.order {
		total = total.Add(c.lines[id].Subtotal())
	}
	return total
}

// Lines devolve cópias das linhas na ordem de inserção.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Len número de linhas no carrinho.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// IsEmpty informa se o carrinho está vazio.
func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

// Clear esvazia o carrinho (após finalizar ou no reset explícito).
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[string]*CartLine)
	c.order = nil
}
