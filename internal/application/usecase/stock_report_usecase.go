package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// reportMaxRows tope de filas del reporte PDF; un inventario más grande se
// trunca y el reporte lo indica en el pie.
const reportMaxRows = 500

// StockReportGenerator renderiza el reporte de valorización de inventario.
// La implementación vive en infrastructure/pdf.
type StockReportGenerator interface {
	GenerateStockReport(
		ctx context.Context,
		company *entity.Company,
		rows []repository.StockListRow,
		totalRows int,
		summary *repository.StockSummaryRow,
		generatedAt time.Time,
	) ([]byte, error)
}

// StockReportUseCase genera el PDF de valorización del inventario bajo el
// mismo filtro del listado.
type StockReportUseCase struct {
	stockListRepo repository.StockListRepository
	companyRepo   repository.CompanyRepository
	generator     StockReportGenerator
}

// NewStockReportUseCase construye el caso de uso inyectando sus dependencias.
func NewStockReportUseCase(
	stockListRepo repository.StockListRepository,
	companyRepo repository.CompanyRepository,
	generator StockReportGenerator,
) *StockReportUseCase {
	return &StockReportUseCase{
		stockListRepo: stockListRepo,
		companyRepo:   companyRepo,
		generator:     generator,
	}
}

// Download arma el reporte con los datos filtrados y devuelve (bytes, filename).
func (uc *StockReportUseCase) Download(
	ctx context.Context,
	companyID string,
	in dto.StockListRequest,
) (pdfBytes []byte, filename string, err error) {
	f, err := buildStockFilter(companyID, in)
	if err != nil {
		return nil, "", err
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	summary, err := uc.stockListRepo.Summary(ctx, f)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: resumen: %w", err)
	}

	totalRows, err := uc.stockListRepo.Count(ctx, f)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: conteo: %w", err)
	}

	f.Limit = reportMaxRows
	f.Offset = 0
	rows, err := uc.stockListRepo.List(ctx, f)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: listado: %w", err)
	}

	now := time.Now()
	pdfBytes, err = uc.generator.GenerateStockReport(ctx, company, rows, totalRows, summary, now)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("inventario_%s.pdf", now.Format("20060102"))
	return pdfBytes, filename, nil
}
