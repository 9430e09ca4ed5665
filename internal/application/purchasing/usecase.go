package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ErpAdmin-api/internal/application/dto"
	"github.com/jhoicas/ErpAdmin-api/internal/domain"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/listing"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

// PurchaseOrderUseCase gestiona el ciclo de vida de las órdenes de compra:
// crear (pending), recibir (entradas de inventario + costo promedio) y cancelar.
type PurchaseOrderUseCase struct {
	txRunner      PurchasingTxRunner
	inventoryUC   InventoryUseCase
	orderRepo     repository.PurchaseOrderRepository
	supplierRepo  repository.SupplierRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner PurchasingTxRunner,
	inventoryUC InventoryUseCase,
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:      txRunner,
		inventoryUC:   inventoryUC,
		orderRepo:     orderRepo,
		supplierRepo:  supplierRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create registra una orden de compra en estado pending. No toca el inventario.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Validar proveedor y que sea de la empresa
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	// Validar bodega destino
	wh, _ := uc.warehouseRepo.GetByID(in.WarehouseID)
	if wh == nil || wh.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	// Validar productos y costos (fuera de la tx, solo lectura)
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) || item.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
	}

	now := time.Now()
	order := &entity.PurchaseOrder{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SupplierID:  in.SupplierID,
		WarehouseID: in.WarehouseID,
		Status:      entity.PurchaseStatusPending,
		Notes:       in.Notes,
		OrderedAt:   now,
		CreatedBy:   userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	items := make([]*entity.PurchaseOrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		subtotal := item.Quantity.Mul(item.UnitCost)
		total = total.Add(subtotal)
		items = append(items, &entity.PurchaseOrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			Subtotal:  subtotal,
		})
	}
	order.Total = total

	err = uc.txRunner.RunPurchasing(ctx, func(
		_ repository.InventoryMovementRepository,
		_ repository.StockRepository,
		_ repository.ProductRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		// El consecutivo se toma dentro de la tx para evitar números duplicados
		number, err := orderRepo.NextNumber(companyID)
		if err != nil {
			return err
		}
		order.Number = number
		return orderRepo.Create(order, items)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order, items), nil
}

// Receive marca la orden como recibida y registra una entrada (IN) por cada línea
// en la bodega destino, todo en una sola transacción. Cada entrada recalcula el
// costo promedio ponderado del producto.
func (uc *PurchaseOrderUseCase) Receive(ctx context.Context, companyID, userID, orderID string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.PurchaseStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	items, err := uc.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, err
	}

	// Productos por línea (solo lectura, fuera de la tx)
	productsByID := make(map[string]*entity.Product, len(items))
	for _, item := range items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		productsByID[item.ProductID] = product
	}

	now := time.Now()
	err = uc.txRunner.RunPurchasing(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error {
		for _, item := range items {
			if err := uc.inventoryUC.ReceiveINInTx(
				movRepo, stockRepo, productRepo,
				productsByID[item.ProductID],
				order.WarehouseID, userID,
				item.Quantity, item.UnitCost,
				now,
				order.ID, order.Number,
			); err != nil {
				return err
			}
		}
		order.Status = entity.PurchaseStatusReceived
		order.ReceivedAt = &now
		order.UpdatedAt = now
		return orderRepo.UpdateStatus(order)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order, items), nil
}

// Cancel cancela una orden pendiente. Una orden recibida ya movió inventario
// y no se puede cancelar.
func (uc *PurchaseOrderUseCase) Cancel(ctx context.Context, companyID, orderID string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.PurchaseStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	order.Status = entity.PurchaseStatusCancelled
	order.UpdatedAt = now
	if err := uc.orderRepo.UpdateStatus(order); err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order, nil), nil
}

// GetByID devuelve una orden de compra con sus líneas.
func (uc *PurchaseOrderUseCase) GetByID(companyID, orderID string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	items, err := uc.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order, items), nil
}

// List devuelve una página de órdenes de compra filtrada por proveedor,
// estado y número de orden.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, companyID string, in dto.PurchaseOrderListRequest) (*dto.PurchaseOrderListResponse, error) {
	switch in.Status {
	case "", entity.PurchaseStatusPending, entity.PurchaseStatusReceived, entity.PurchaseStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}

	f := repository.PurchaseOrderFilter{
		CompanyID:  companyID,
		SupplierID: in.SupplierID,
		Status:     in.Status,
		Search:     listing.NormalizeSearch(in.Search),
	}
	win := listing.NewPage(in.Page, in.PageSize, -1)
	f.Limit = win.PageSize
	f.Offset = (win.Page - 1) * win.PageSize

	list, total, err := uc.orderRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	final := listing.NewPage(win.Page, win.PageSize, total)
	if len(list) == 0 && total > 0 && final.Page != win.Page {
		f.Limit = final.PageSize
		f.Offset = final.Offset
		list, _, err = uc.orderRepo.List(ctx, f)
		if err != nil {
			return nil, err
		}
	}

	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toPurchaseOrderResponse(o, nil))
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.ToPageResponse(final),
	}, nil
}

func toPurchaseOrderResponse(order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:          order.ID,
		CompanyID:   order.CompanyID,
		Number:      order.Number,
		SupplierID:  order.SupplierID,
		WarehouseID: order.WarehouseID,
		Status:      order.Status,
		Total:       order.Total,
		Notes:       order.Notes,
		OrderedAt:   order.OrderedAt,
		ReceivedAt:  order.ReceivedAt,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.PurchaseOrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
			Subtotal:  item.Subtotal,
		})
	}
	return resp
}
