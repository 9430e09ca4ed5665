package usecase

import (
	"context"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/listing"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// stockSortAliases lista blanca de ordenamiento del listado de inventario.
// Las claves públicas son las que envía la UI (acepta camelCase); los valores
// son las columnas reales de la consulta en stock_list_repository.
var stockSortAliases = listing.NewSortMap(map[string]string{
	"sku":       "p.sku",
	"name":      "p.name",
	"category":  "c.name",
	"warehouse": "w.name",
	"quantity":  "s.quantity",
	"price":     "p.price",
	"updatedat": "p.updated_at",
	"createdat": "p.created_at",
}, "updatedat", listing.DirDesc)

// StockUseCase consultas del listado de inventario: página filtrada/ordenada
// y resumen agregado bajo el mismo filtro.
type StockUseCase struct {
	stockListRepo repository.StockListRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockListRepo repository.StockListRepository) *StockUseCase {
	return &StockUseCase{stockListRepo: stockListRepo}
}

// List devuelve una página del inventario de la empresa.
// El total se consulta primero para ajustar la página pedida a [1, TotalPages];
// así la UI nunca recibe una página vacía por pasarse del final.
func (uc *StockUseCase) List(ctx context.Context, companyID string, in dto.StockListRequest) (*dto.StockListResponse, error) {
	f, err := buildStockFilter(companyID, in)
	if err != nil {
		return nil, err
	}

	total, err := uc.stockListRepo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	page := listing.NewPage(in.Page, in.PageSize, total)
	if total == 0 {
		return &dto.StockListResponse{
			Items: []dto.StockItemResponse{},
			Page:  dto.ToPageResponse(page),
		}, nil
	}

	f.Limit = page.PageSize
	f.Offset = page.Offset
	rows, err := uc.stockListRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StockItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, toStockItemResponse(r))
	}
	return &dto.StockListResponse{
		Items: items,
		Page:  dto.ToPageResponse(page),
	}, nil
}

// Summary devuelve los agregados del inventario bajo el mismo filtro del listado
// (sin paginación): total de SKUs, unidades, valor y conteos de stock bajo/agotado.
func (uc *StockUseCase) Summary(ctx context.Context, companyID string, in dto.StockListRequest) (*dto.StockSummaryResponse, error) {
	f, err := buildStockFilter(companyID, in)
	if err != nil {
		return nil, err
	}
	row, err := uc.stockListRepo.Summary(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.StockSummaryResponse{
		TotalSKUs:       row.TotalSKUs,
		TotalUnits:      row.TotalUnits,
		InventoryValue:  row.InventoryValue.Round(2),
		LowStockCount:   row.LowStockCount,
		OutOfStockCount: row.OutOfStockCount,
	}, nil
}

// buildStockFilter traduce el request a filtro de repositorio: normaliza la
// búsqueda, valida el estado y resuelve el alias de ordenamiento.
func buildStockFilter(companyID string, in dto.StockListRequest) (repository.StockListFilter, error) {
	switch in.Status {
	case "", entity.StockStatusInStock, entity.StockStatusLowStock, entity.StockStatusOutOfStock:
	default:
		return repository.StockListFilter{}, domain.ErrInvalidInput
	}

	f := repository.StockListFilter{
		CompanyID:   companyID,
		Search:      listing.NormalizeSearch(in.Search),
		CategoryID:  in.CategoryID,
		WarehouseID: in.WarehouseID,
		Status:      in.Status,
	}
	f.SortColumn, f.SortDir = stockSortAliases.Resolve(in.Sort, in.Dir)
	return f, nil
}

func toStockItemResponse(r repository.StockListRow) dto.StockItemResponse {
	available := r.Quantity.Sub(r.Reserved)
	return dto.StockItemResponse{
		ID:            r.ProductID,
		SKU:           r.SKU,
		Name:          r.Name,
		CategoryID:    r.CategoryID,
		CategoryName:  r.CategoryName,
		WarehouseID:   r.WarehouseID,
		WarehouseName: r.WarehouseName,
		Quantity:      r.Quantity,
		Reserved:      r.Reserved,
		Available:     available,
		ReorderPoint:  r.ReorderPoint,
		Price:         r.Price,
		Cost:          r.Cost,
		Status:        entity.StockStatus(r.Quantity, r.ReorderPoint),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
