package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/entity"
	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación sobre PostgreSQL (usable con pool o tx).
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

const salesOrderColumns = `id, company_id, number, customer_name, warehouse_id, status, total, notes, ordered_at, dispatched_at, created_by, created_at, updated_at`

// Create persiste cabecera y líneas. Llamar dentro de una transacción.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder, items []*entity.SalesOrderItem) error {
	query := `
		INSERT INTO sales_orders (` + salesOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CompanyID, order.Number, order.CustomerName, order.WarehouseID,
		order.Status, order.Total, order.Notes, order.OrderedAt, order.DispatchedAt,
		order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sales order: %w", err)
	}
	for _, item := range items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO sales_order_items (id, order_id, product_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sales order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una orden de venta por ID.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders WHERE id = $1`
	var o entity.SalesOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CompanyID, &o.Number, &o.CustomerName, &o.WarehouseID, &o.Status,
		&o.Total, &o.Notes, &o.OrderedAt, &o.DispatchedAt, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	return &o, nil
}

// GetItems devuelve las líneas de una orden de venta.
func (r *SalesOrderRepo) GetItems(orderID string) ([]*entity.SalesOrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price, subtotal
		FROM sales_order_items WHERE order_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list sales order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrderItem
	for rows.Next() {
		var item entity.SalesOrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sales order item: %w", err)
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// UpdateStatus actualiza estado, fecha de despacho y updated_at de la orden.
func (r *SalesOrderRepo) UpdateStatus(order *entity.SalesOrder) error {
	query := `
		UPDATE sales_orders SET status = $2, dispatched_at = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.Status, order.DispatchedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales order status: %w", err)
	}
	return nil
}

// NextNumber devuelve el siguiente consecutivo legible de la empresa (ej. "SO-000317").
// Cuenta órdenes existentes dentro de la tx del caller; el índice único sobre
// (company_id, number) detecta colisiones por concurrencia.
func (r *SalesOrderRepo) NextNumber(companyID string) (string, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM sales_orders WHERE company_id = $1`, companyID,
	).Scan(&count)
	if err != nil {
		return "", fmt.Errorf("next sales order number: %w", err)
	}
	return fmt.Sprintf("SO-%06d", count+1), nil
}

// buildSalesOrderWhere arma el WHERE con placeholders posicionales según el filtro.
// Search compara contra número de orden y nombre del cliente normalizado.
func buildSalesOrderWhere(f repository.SalesOrderFilter) (string, []any) {
	where := ` WHERE company_id = $1`
	args := []any{f.CompanyID}
	pos := 2

	if f.Status != "" {
		where += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, f.Status)
		pos++
	}
	if f.Search != "" {
		where += fmt.Sprintf(" AND (lower(number) LIKE $%d OR lower(unaccent(customer_name)) LIKE $%d)", pos, pos)
		args = append(args, "%"+f.Search+"%")
		pos++
	}
	return where, args
}

// List devuelve la página de órdenes y el total bajo el mismo filtro.
func (r *SalesOrderRepo) List(ctx context.Context, f repository.SalesOrderFilter) ([]*entity.SalesOrder, int, error) {
	where, args := buildSalesOrderWhere(f)

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales_orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales orders: %w", err)
	}

	pos := len(args) + 1
	query := `SELECT ` + salesOrderColumns + ` FROM sales_orders` + where +
		fmt.Sprintf(` ORDER BY ordered_at DESC LIMIT $%d OFFSET $%d`, pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.SalesOrder
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.Number, &o.CustomerName, &o.WarehouseID,
			&o.Status, &o.Total, &o.Notes, &o.OrderedAt, &o.DispatchedAt, &o.CreatedBy,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, &o)
	}
	return list, total, rows.Err()
}
