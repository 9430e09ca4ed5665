package sales

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

// SalesOrderUseCase gestiona el ciclo de vida de las órdenes de venta:
// crear (reserva stock), despachar (salidas de inventario), entregar y cancelar.
type SalesOrderUseCase struct {
	txRunner      SalesTxRunner
	inventoryUC   InventoryUseCase
	orderRepo     repository.SalesOrderRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewSalesOrderUseCase construye el caso de uso.
func NewSalesOrderUseCase(
	txRunner SalesTxRunner,
	inventoryUC InventoryUseCase,
	orderRepo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *SalesOrderUseCase {
	return &SalesOrderUseCase{
		txRunner:      txRunner,
		inventoryUC:   inventoryUC,
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// Create registra una orden de venta en estado pending y reserva el stock de cada
// línea en la bodega origen, todo en una sola transacción. Si alguna línea no tiene
// disponible suficiente se hace rollback y retorna ErrInsufficientStock.
func (uc *SalesOrderUseCase) Create(ctx context.Context, companyID, userID string, in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if in.CustomerName == "" || in.WarehouseID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	// Validar bodega origen
	wh, _ := uc.warehouseRepo.GetByID(in.WarehouseID)
	if wh == nil || wh.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	// Validar productos y precios (fuera de la tx, solo lectura)
	productsByID := make(map[string]*entity.Product, len(in.Items))
	for i := range in.Items {
		item := &in.Items[i]
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if product.CompanyID != companyID {
			return nil, domain.ErrForbidden
		}
		productsByID[item.ProductID] = product
		if item.UnitPrice != nil && item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice == nil {
			price := product.Price
			in.Items[i].UnitPrice = &price
		}
	}

	now := time.Now()
	order := &entity.SalesOrder{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		CustomerName: in.CustomerName,
		WarehouseID:  in.WarehouseID,
		Status:       entity.SalesStatusPending,
		Notes:        in.Notes,
		OrderedAt:    now,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	items := make([]*entity.SalesOrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, item := range in.Items {
		subtotal := item.Quantity.Mul(*item.UnitPrice)
		total = total.Add(subtotal)
		items = append(items, &entity.SalesOrderItem{
			ID:        uuid.New().String(),
			OrderID:   order.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: *item.UnitPrice,
			Subtotal:  subtotal,
		})
	}
	order.Total = total

	err := uc.txRunner.RunSales(ctx, func(
		_ repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
		orderRepo repository.SalesOrderRepository,
	) error {
		// Reserva por línea con bloqueo de fila (SELECT FOR UPDATE)
		for _, item := range items {
			stock, err := stockRepo.GetForUpdate(item.ProductID, order.WarehouseID)
			if err != nil {
				return err
			}
			if stock.Available().LessThan(item.Quantity) {
				return domain.ErrInsufficientStock
			}
			stock.Reserved = stock.Reserved.Add(item.Quantity)
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
		}
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
	return toSalesOrderResponse(order, items), nil
}

// Dispatch despacha una orden pendiente: registra una salida (OUT) por cada línea
// consumiendo la reserva, y marca la orden como dispatched. Todo en una sola transacción.
func (uc *SalesOrderUseCase) Dispatch(ctx context.Context, companyID, userID, orderID string) (*dto.SalesOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.SalesStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	items, err := uc.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[string]*entity.Product, len(items))
	for _, item := range items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		productsByID[item.ProductID] = product
	}

	now := time.Now()
	err = uc.txRunner.RunSales(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
		orderRepo repository.SalesOrderRepository,
	) error {
		for _, item := range items {
			if err := uc.inventoryUC.DispatchOUTInTx(
				movRepo, stockRepo,
				productsByID[item.ProductID],
				order.WarehouseID, userID,
				item.Quantity,
				now,
				order.ID, order.Number,
			); err != nil {
				return err
			}
		}
		order.Status = entity.SalesStatusDispatched
		order.DispatchedAt = &now
		order.UpdatedAt = now
		return orderRepo.UpdateStatus(order)
	})
	if err != nil {
		return nil, err
	}
	return toSalesOrderResponse(order, items), nil
}

// Deliver marca una orden despachada como entregada. No toca el inventario.
func (uc *SalesOrderUseCase) Deliver(ctx context.Context, companyID, orderID string) (*dto.SalesOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.SalesStatusDispatched {
		return nil, domain.ErrInvalidTransition
	}
	order.Status = entity.SalesStatusDelivered
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.UpdateStatus(order); err != nil {
		return nil, err
	}
	return toSalesOrderResponse(order, nil), nil
}

// Cancel cancela una orden pendiente y libera las reservas de cada línea.
// Una orden despachada ya movió inventario y no se puede cancelar.
func (uc *SalesOrderUseCase) Cancel(ctx context.Context, companyID, orderID string) (*dto.SalesOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if order.Status != entity.SalesStatusPending {
		return nil, domain.ErrInvalidTransition
	}
	items, err := uc.orderRepo.GetItems(orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	err = uc.txRunner.RunSales(ctx, func(
		_ repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
		orderRepo repository.SalesOrderRepository,
	) error {
		for _, item := range items {
			stock, err := stockRepo.GetForUpdate(item.ProductID, order.WarehouseID)
			if err != nil {
				return err
			}
			stock.Reserved = stock.Reserved.Sub(item.Quantity)
			if stock.Reserved.LessThan(decimal.Zero) {
				stock.Reserved = decimal.Zero
			}
			stock.UpdatedAt = now
			if err := stockRepo.Upsert(stock); err != nil {
				return err
			}
		}
		order.Status = entity.SalesStatusCancelled
		order.UpdatedAt = now
		return orderRepo.UpdateStatus(order)
	})
	if err != nil {
		return nil, err
	}
	return toSalesOrderResponse(order, items), nil
}

// GetByID devuelve una orden de venta con sus líneas.
func (uc *SalesOrderUseCase) GetByID(companyID, orderID string) (*dto.SalesOrderResponse, error) {
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
	return toSalesOrderResponse(order, items), nil
}

// List devuelve una página de órdenes de venta filtrada por estado y por
// número de orden o nombre del cliente.
func (uc *SalesOrderUseCase) List(ctx context.Context, companyID string, in dto.SalesOrderListRequest) (*dto.SalesOrderListResponse, error) {
	switch in.Status {
	case "", entity.SalesStatusPending, entity.SalesStatusDispatched, entity.SalesStatusDelivered, entity.SalesStatusCancelled:
	default:
		return nil, domain.ErrInvalidInput
	}

	f := repository.SalesOrderFilter{
		CompanyID: companyID,
		Status:    in.Status,
		Search:    listing.NormalizeSearch(in.Search),
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

	items := make([]dto.SalesOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toSalesOrderResponse(o, nil))
	}
	return &dto.SalesOrderListResponse{
		Items: items,
		Page:  dto.ToPageResponse(final),
	}, nil
}

func toSalesOrderResponse(order *entity.SalesOrder, items []*entity.SalesOrderItem) *dto.SalesOrderResponse {
	resp := &dto.SalesOrderResponse{
		ID:           order.ID,
		CompanyID:    order.CompanyID,
		Number:       order.Number,
		CustomerName: order.CustomerName,
		WarehouseID:  order.WarehouseID,
		Status:       order.Status,
		Total:        order.Total,
		Notes:        order.Notes,
		OrderedAt:    order.OrderedAt,
		DispatchedAt: order.DispatchedAt,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SalesOrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return resp
}
