package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const purchaseOrderColumns = `id, company_id, number, supplier_id, warehouse_id, status, total, notes, ordered_at, received_at, created_by, created_at, updated_at`

// Create persiste cabecera y líneas. Llamar dentro de una transacción.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder, items []*entity.PurchaseOrderItem) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.Number, order.SupplierID, order.WarehouseID,
		order.Status, order.Total, order.Notes, order.OrderedAt, order.ReceivedAt,
		order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase order: %w", err)
	}
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO purchase_order_items (id, order_id, product_id, quantity, unit_cost, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitCost, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden de compra por ID.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.Number, &o.SupplierID, &o.WarehouseID, &o.Status,
		&o.Total, &o.Notes, &o.OrderedAt, &o.ReceivedAt, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return &o, nil
}

// GetItems devuelve las líneas de una orden de compra.
func (r *PurchaseOrderRepo) GetItems(orderID string) ([]*entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_cost, subtotal
		FROM purchase_order_items WHERE order_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrderItem
	for rows.Next() {
		var item entity.PurchaseOrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitCost, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza estado, fecha de recepción y updated_at de la orden.
func (r *PurchaseOrderRepo) UpdateStatus(order *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders SET status = $2, received_at = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.ReceivedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}

// NextNumber devuelve el siguiente consecutivo legible de la empresa (ej. "PO-000042").
// Cuenta órdenes existentes dentro de la tx del caller; el índice único sobre
// (company_id, number) detecta colisiones por concurrencia.
func (r *PurchaseOrderRepo) NextNumber(companyID string) (string, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchase_orders WHERE company_id = $1`, companyID,
	).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("next purchase order number: %w", err)
	}
	return fmt.Sprintf("PO-%06d", count+1), nil
}

// buildPurchaseOrderWhere arma el WHERE con placeholders posicionales según el filtro.
func buildPurchaseOrderWhere(f repository.PurchaseOrderFilter) (string, []any) {
	where := ` WHERE company_id = $1`
	args := []any{f.CompanyID}
	pos := 2

	if f.SupplierID != "" {
		where += fmt.Sprintf(" AND supplier_id = $%d", pos)
		args = append(args, f.SupplierID)
		pos++
	}
	if f.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	if f.Search != "" {
		where += fmt.Sprintf(" AND lower(number) LIKE $%d", pos)
		args = append(args, "%"+f.Search+"%")
		pos++
	}
	return where, args
}

// List devuelve la página de órdenes y el total bajo el mismo filtro.
func (r *PurchaseOrderRepo) List(ctx context.Context, f repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, int, error) {
	where, args := buildPurchaseOrderWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM purchase_orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count purchase orders: %w", err)
	}

	pos := len(args) + 1
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders` + where +
		fmt.Sprintf(` ORDER BY ordered_at DESC LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.Number, &o.SupplierID, &o.WarehouseID,
			&o.Status, &o.Total, &o.Notes, &o.OrderedAt, &o.ReceivedAt, &o.CreatedBy,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, &o)
	}
	return list, total, rows.Err()
}
