package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/inventauri/inventauri-api/internal/domain"
	"github.com/inventauri/inventauri-api/internal/domain/entity"
	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, tenant_id, customer, occurred_at, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.TenantID, nullIfEmpty(sale.Customer),
		sale.OccurredAt, sale.CreatedAt, nullIfEmpty(sale.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("sale id collision: %w", err)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateLine persiste una línea de venta. Una FK violada (item_id inexistente)
// se reporta como domain.ErrItemReference; la tx del caller hace rollback total.
func (r *SaleRepo) CreateLine(line *entity.SaleLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sale_lines (id, sale_id, item_id, quantity, unit_price_cents, line_total_cents)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.SaleID, line.ItemID, line.Quantity, line.UnitPriceCents, line.LineTotalCents,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert sale line %s: %w", line.ItemID, domain.ErrItemReference)
		}
		return fmt.Errorf("insert sale line: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta. Devuelve nil, nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, tenant_id, customer, occurred_at, created_at, created_by
		FROM sales WHERE id = $1`
	var s entity.Sale
	var customer, createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.TenantID, &customer, &s.OccurredAt, &s.CreatedAt, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if customer != nil {
		s.Customer = *customer
	}
	if createdBy != nil {
		s.CreatedBy = *createdBy
	}
	return &s, nil
}

// GetLinesBySaleID lista las líneas de una venta en su orden de inserción.
func (r *SaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	query := `
		SELECT id, sale_id, item_id, quantity, unit_price_cents, line_total_cents
		FROM sale_lines WHERE sale_id = $1
		ORDER BY seq`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale lines: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleLine
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ItemID, &l.Quantity, &l.UnitPriceCents, &l.LineTotalCents); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListByTenant lista ventas del tenant, más reciente primero.
func (r *SaleRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, tenant_id, customer, occurred_at, created_at, created_by
		FROM sales WHERE tenant_id = $1
		ORDER BY occurred_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var customer, createdBy *string
		if err := rows.Scan(&s.ID, &s.TenantID, &customer, &s.OccurredAt, &s.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if customer != nil {
			s.Customer = *customer
		}
		if createdBy != nil {
			s.CreatedBy = *createdBy
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
