package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dcherreria/taller-api/internal/application/dto"
	"github.com/dcherreria/taller-api/internal/application/usecase"
)

// DashboardHandler maneja el resumen financiero de la cartera.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetResumen devuelve las tres métricas de cartera: ganancia en mano, saldo a
// cobrar y material pago. Se recalculan en cada consulta.
// GET /api/dashboard/resumen
func (h *DashboardHandler) GetResumen(c *fiber.Ctx) error {
	out, err := h.uc.GetResumen(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "LOAD_FAILED", Message: "no se pudo cargar el resumen",
		})
	}
	return c.JSON(out)
}
