package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcampos/gestor-api/internal/application/usecase"
)

// StatsHandler atende o painel de contagens (protegido).
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler constrói o handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Get godoc
// @Summary      Contagens atuais de clientes, funcionários e serviços
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/v1/stats [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Compute()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
