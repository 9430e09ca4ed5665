package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/ErpAdmin-api/internal/application/analytics"
	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve el resumen del mes en curso.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (valor del inventario, conteos de stock,
// ventas y compras del mes, órdenes pendientes).
// No requiere parámetros; las fechas se calculan automáticamente en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	summary, err := h.uc.GetSummary(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(summary)
}

// GetMonthlyInventoryValue devuelve la serie de valor de inventario de los
// últimos 12 meses, con etiquetas de mes listas para graficar.
// GET /api/dashboard/inventory-value/monthly
func (h *DashboardHandler) GetMonthlyInventoryValue(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	series, err := h.uc.GetMonthlyInventoryValue(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(series)
}
