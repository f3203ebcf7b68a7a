package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/donaldoficial/armazem-swift/internal/application/reports"
)

// ReportHandler trata os três relatórios gerenciais.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Stock godoc
// @Summary      Relatório de estoque
// @Description  Totais sobre o catálogo inteiro; o filtro restringe apenas as linhas.
// @Tags         reports
// @Produce      json
// @Param        filter  query  string  false  "all | low | out"  default(all)
// @Success      200  {object}  dto.StockReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	filter := c.Query("filter", reports.StockFilterAll)
	out, err := h.uc.StockReport(c.Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Financial godoc
// @Summary      Resumo financeiro
// @Description  Vendas do dia e do mês corrente (calendário local) e ticket médio mensal.
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.FinancialSummaryResponse
// @Router       /api/reports/financial [get]
func (h *ReportHandler) Financial(c *fiber.Ctx) error {
	out, err := h.uc.FinancialSummary(c.Context(), time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductHistory godoc
// @Summary      Histórico de movimentações de um produto
// @Tags         reports
// @Produce      json
// @Param        q  query  string  true  "Código ou nome do produto"
// @Success      200  {object}  dto.ProductHistoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/product [get]
func (h *ReportHandler) ProductHistory(c *fiber.Ctx) error {
	out, err := h.uc.ProductHistory(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
