package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donaldoficial/armazem-swift/internal/application/dto"
	"github.com/donaldoficial/armazem-swift/internal/application/pos"
)

// SaleHandler trata a finalização e a consulta de vendas.
type SaleHandler struct {
	uc *pos.FinalizeSaleUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *pos.FinalizeSaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Finalize godoc
// @Summary      Finalizar venda
// @Description  Grava a venda, os itens, a baixa de estoque e as movimentações em uma única transação.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.FinalizeSaleRequest  true  "Itens e forma de pagamento"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Finalize(c *fiber.Ctx) error {
	var in dto.FinalizeSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.FinalizeFromRequest(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obter venda com itens
// @Tags         sales
// @Produce      json
// @Param        id  path  string  true  "ID da venda"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
