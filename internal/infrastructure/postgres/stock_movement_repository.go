package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventauri/inventauri-api/internal/domain"
	"github.com/inventauri/inventauri-api/internal/domain/entity"
	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de stock sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento. La FK compuesta (item_id, tenant_id) → items
// rechaza ítems inexistentes o de otro tenant: se reporta como ErrItemReference.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, tenant_id, item_id, quantity, reason, reference, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.TenantID, movement.ItemID, movement.Quantity,
		movement.Reason, nullIfEmpty(movement.Reference), movement.CreatedAt, nullIfEmpty(movement.CreatedBy),
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert movement for item %s: %w", movement.ItemID, domain.ErrItemReference)
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByItem lista movimientos de un ítem, más reciente primero.
func (r *StockMovementRepo) ListByItem(tenantID, itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, tenant_id, item_id, quantity, reason, reference, created_at, created_by
		FROM stock_movements WHERE tenant_id = $1 AND item_id = $2
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, tenantID, itemID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var reference, createdBy *string
		if err := rows.Scan(&m.ID, &m.TenantID, &m.ItemID, &m.Quantity, &m.Reason, &reference, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if reference != nil {
			m.Reference = *reference
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// LevelByItem nivel actual del ítem: suma de deltas del libro (0 si no hay movimientos).
func (r *StockMovementRepo) LevelByItem(tenantID, itemID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM stock_movements WHERE tenant_id = $1 AND item_id = $2`
	var level decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, tenantID, itemID).Scan(&level); err != nil {
		return decimal.Zero, fmt.Errorf("stock level: %w", err)
	}
	return level, nil
}
