package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ErpAdmin-api/internal/domain/repository"
)

var _ repository.StockListRepository = (*StockListRepo)(nil)

// StockListRepo consultas read-only del listado de inventario sobre PostgreSQL.
// Cada fila es un par producto-bodega con su cantidad, reserva y datos de catálogo.
type StockListRepo struct {
	q Querier
}

// NewStockListRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockListRepository(q Querier) *StockListRepo {
	return &StockListRepo{q: q}
}

// stockListFrom cláusula FROM/JOIN compartida por Count, List y Summary.
// Los alias p/s/c/w son los mismos que espera la lista blanca de ordenamiento.
const stockListFrom = `
	FROM products p
	JOIN stock s ON s.product_id = p.id
	JOIN warehouses w ON w.id = s.warehouse_id
	LEFT JOIN categories c ON c.id = p.category_id`

// buildStockListWhere arma el WHERE con placeholders posicionales según el filtro.
// Search compara contra sku y nombre ya normalizados (unaccent + lower) en la DB,
// espejo de la normalización que aplica el caso de uso al término.
func buildStockListWhere(f repository.StockListFilter) (string, []any) {
	where := ` WHERE p.company_id = $1`
	args := []any{f.CompanyID}
	pos := 2

	if f.Search != "" {
		where += fmt.Sprintf(" AND (lower(unaccent(p.sku)) LIKE $%d OR lower(unaccent(p.name)) LIKE $%d)", pos, pos)
		args = append(args, "%"+f.Search+"%")
		pos++
	}
	if f.CategoryID != "" {
		where += fmt.Sprintf(" AND p.category_id = $%d", pos)
		args = append(args, f.CategoryID)
		pos++
	}
	if f.WarehouseID != "" {
		where += fmt.Sprintf(" AND s.warehouse_id = $%d", pos)
		args = append(args, f.WarehouseID)
		pos++
	}
	switch f.Status {
	case "out_of_stock":
		where += " AND s.quantity <= 0"
	case "low_stock":
		where += " AND s.quantity > 0 AND s.quantity <= p.reorder_point"
	case "in_stock":
		where += " AND s.quantity > p.reorder_point"
	}
	return where, args
}

// Count devuelve el total de filas bajo el filtro.
func (r *StockListRepo) Count(ctx context.Context, f repository.StockListFilter) (int, error) {
	where, args := buildStockListWhere(f)
	var total int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+stockListFrom+where, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count stock list: %w", err)
	}
	return total, nil
}

// List devuelve la página de filas bajo el filtro, ordenada por la columna
// resuelta aguas arriba. SortColumn y SortDir vienen de la lista blanca del
// caso de uso; solo ellos se interpolan en el SQL.
func (r *StockListRepo) List(ctx context.Context, f repository.StockListFilter) ([]repository.StockListRow, error) {
	where, args := buildStockListWhere(f)
	pos := len(args) + 1

	query := `
		SELECT p.id, p.sku, p.name,
		       COALESCE(p.category_id::text, ''), COALESCE(c.name, ''),
		       s.warehouse_id, w.name,
		       s.quantity, s.reserved, p.reorder_point, p.price, p.cost,
		       p.created_at, p.updated_at` +
		stockListFrom + where +
		fmt.Sprintf(" ORDER BY %s %s, p.id ASC LIMIT $%d OFFSET $%d", f.SortColumn, f.SortDir, pos, pos+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var list []repository.StockListRow
	for rows.Next() {
		var row repository.StockListRow
		if err := rows.Scan(
			&row.ProductID, &row.SKU, &row.Name,
			&row.CategoryID, &row.CategoryName,
			&row.WarehouseID, &row.WarehouseName,
			&row.Quantity, &row.Reserved, &row.ReorderPoint, &row.Price, &row.Cost,
			&row.CreatedAt, &row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Summary devuelve los agregados del listado bajo el mismo filtro (sin paginación).
// Los conteos de stock bajo/agotado usan la misma derivación de estado que la lista.
func (r *StockListRepo) Summary(ctx context.Context, f repository.StockListFilter) (*repository.StockSummaryRow, error) {
	where, args := buildStockListWhere(f)
	query := `
		SELECT COUNT(DISTINCT p.id),
		       COALESCE(SUM(s.quantity), 0),
		       COALESCE(SUM(s.quantity * p.cost), 0),
		       COUNT(*) FILTER (WHERE s.quantity > 0 AND s.quantity <= p.reorder_point),
		       COUNT(*) FILTER (WHERE s.quantity <= 0)` +
		stockListFrom + where

	var s repository.StockSummaryRow
	err := r.q.QueryRow(ctx, query, args...).Scan(
		&s.TotalSKUs, &s.TotalUnits, &s.InventoryValue, &s.LowStockCount, &s.OutOfStockCount,
	)
	if err != nil {
		return nil, fmt.Errorf("stock summary: %w", err)
	}
	return &s, nil
}
