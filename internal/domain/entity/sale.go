package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas no PDV.
const (
	PaymentCash = "dinheiro"
	PaymentCard = "cartao"
	PaymentPix  = "pix"
)

// ValidPaymentMethod informa se a forma de pagamento é aceita.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentPix
}

// Sale representa uma venda finalizada. Imutável após criada: não há edição
// nem estorno neste fluxo.
type Sale struct {
	ID            string
	Total         decimal.Decimal // soma dos subtotais dos itens
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
}

// SaleItem linha de uma venda. ProductName e UnitPrice são snapshots do
// momento da venda: alterações posteriores no produto não mudam o histórico.
type SaleItem struct {
	ID          string
	SaleID      string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal // Quantity × UnitPrice
}
