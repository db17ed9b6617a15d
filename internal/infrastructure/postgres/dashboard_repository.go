package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas de solo lectura. Opera siempre sobre el pool,
// nunca dentro de una tx: los números del dashboard son aproximados por naturaleza.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// SalesSummary cuenta ventas y suma ingresos del tenant en el rango [from, to).
func (r *DashboardRepo) SalesSummary(ctx context.Context, tenantID string, from, to time.Time) (*repository.SalesSummaryResult, error) {
	query := `
		SELECT COUNT(DISTINCT s.id), COALESCE(SUM(l.line_total_cents), 0)
		FROM sales s
		LEFT JOIN sale_lines l ON l.sale_id = s.id
		WHERE s.tenant_id = $1 AND s.occurred_at >= $2 AND s.occurred_at < $3`
	var res repository.SalesSummaryResult
	if err := r.q.QueryRow(ctx, query, tenantID, from, to).Scan(&res.SaleCount, &res.RevenueCents); err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}
	return &res, nil
}

// TopItems ítems más vendidos (por unidades) del tenant en el rango [from, to).
func (r *DashboardRepo) TopItems(ctx context.Context, tenantID string, from, to time.Time, limit int) ([]repository.TopItemResult, error) {
	query := `
		SELECT l.item_id, i.name, COALESCE(SUM(l.quantity), 0), COALESCE(SUM(l.line_total_cents), 0)
		FROM sale_lines l
		JOIN sales s ON s.id = l.sale_id
		JOIN items i ON i.id = l.item_id
		WHERE s.tenant_id = $1 AND s.occurred_at >= $2 AND s.occurred_at < $3
		GROUP BY l.item_id, i.name
		ORDER BY SUM(l.quantity) DESC
		LIMIT $4`
	rows, err := r.q.Query(ctx, query, tenantID, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top items: %w", err)
	}
	defer rows.Close()
	var list []repository.TopItemResult
	for rows.Next() {
		var t repository.TopItemResult
		if err := rows.Scan(&t.ItemID, &t.ItemName, &t.UnitsSold, &t.SalesCents); err != nil {
			return nil, fmt.Errorf("scan top item: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// StockLevels nivel actual de cada ítem activo del tenant (SUM de deltas del libro).
func (r *DashboardRepo) StockLevels(ctx context.Context, tenantID string) ([]repository.StockLevelResult, error) {
	query := `
		SELECT i.id, i.name, i.sku, COALESCE(SUM(m.quantity), 0)
		FROM items i
		LEFT JOIN stock_movements m ON m.item_id = i.id AND m.tenant_id = i.tenant_id
		WHERE i.tenant_id = $1 AND i.active
		GROUP BY i.id, i.name, i.sku
		ORDER BY i.sku`
	rows, err := r.q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("stock levels: %w", err)
	}
	defer rows.Close()
	var list []repository.StockLevelResult
	for rows.Next() {
		var s repository.StockLevelResult
		if err := rows.Scan(&s.ItemID, &s.ItemName, &s.SKU, &s.Level); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
