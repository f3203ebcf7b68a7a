package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donaldoficial/armazem-swift/internal/application/dto"
	"github.com/donaldoficial/armazem-swift/internal/application/stock"
)

// StockHandler trata entradas manuais de estoque.
type StockHandler struct {
	uc *stock.EntryUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(uc *stock.EntryUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RegisterEntry godoc
// @Summary      Registrar entrada manual de estoque
// @Description  Incrementa o estoque do produto e registra a movimentação na mesma transação.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "Produto, quantidade e referência"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *StockHandler) RegisterEntry(c *fiber.Ctx) error {
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegisterEntry(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListRecent godoc
// @Summary      Últimas entradas de estoque
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.EntryRowResponse
// @Router       /api/stock/entries [get]
func (h *StockHandler) ListRecent(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
