package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/donaldoficial/armazem-swift/internal/application/analytics"
)

// DashboardHandler expõe o resumo da tela inicial.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo do dashboard
// @Description  Cada indicador degrada para zero quando a consulta falha; o endpoint nunca devolve erro.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary(c.Context(), time.Now()))
}
