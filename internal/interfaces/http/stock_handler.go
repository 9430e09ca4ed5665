package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/application/usecase"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
)

// StockHandler maneja el listado de inventario, su resumen y el reporte PDF (protegido).
type StockHandler struct {
	uc       *usecase.StockUseCase
	reportUC *usecase.StockReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, reportUC *usecase.StockReportUseCase) *StockHandler {
	return &StockHandler{uc: uc, reportUC: reportUC}
}

// List godoc
// @Summary      Listado de inventario
// @Description  Página del inventario filtrada por búsqueda, categoría, bodega y
//
//	estado de stock; ordenable por las columnas de la tabla.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        page          query  int     false  "Página"          default(1)
// @Param        page_size     query  int     false  "Tamaño"          default(20)
// @Param        search        query  string  false  "SKU o nombre (sin acentos)"
// @Param        category_id   query  string  false  "Categoría (UUID)"
// @Param        warehouse_id  query  string  false  "Bodega (UUID)"
// @Param        status        query  string  false  "in_stock | low_stock | out_of_stock"
// @Param        sort          query  string  false  "sku|name|category|warehouse|quantity|price|updatedat|createdat"
// @Param        dir           query  string  false  "asc | desc"
// @Success      200  {object}  dto.StockListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.StockListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(c.Context(), companyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro de estado inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Resumen del inventario
// @Description  Agregados (SKUs, unidades, valor, stock bajo/agotado) bajo el mismo
//
//	filtro del listado, sin paginación.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        search        query  string  false  "SKU o nombre"
// @Param        category_id   query  string  false  "Categoría (UUID)"
// @Param        warehouse_id  query  string  false  "Bodega (UUID)"
// @Param        status        query  string  false  "in_stock | low_stock | out_of_stock"
// @Success      200  {object}  dto.StockSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.StockListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Summary(c.Context(), companyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro de estado inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadReport godoc
// @Summary      Reporte de valorización de inventario (PDF)
// @Tags         stock
// @Security     Bearer
// @Produce      application/pdf
// @Param        search        query  string  false  "SKU o nombre"
// @Param        category_id   query  string  false  "Categoría (UUID)"
// @Param        warehouse_id  query  string  false  "Bodega (UUID)"
// @Param        status        query  string  false  "in_stock | low_stock | out_of_stock"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/report.pdf [get]
func (h *StockHandler) DownloadReport(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.StockListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	pdfBytes, filename, err := h.reportUC.Download(c.Context(), companyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtro de estado inválido"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
