package repository

import (
	"github.com/shopspring/decimal"

	"github.com/inventauri/inventauri-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia para el libro de stock.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByItem(tenantID, itemID string, limit, offset int) ([]*entity.StockMovement, error)
	// LevelByItem devuelve el nivel actual: SUM(quantity) de todos los movimientos del ítem.
	LevelByItem(tenantID, itemID string) (decimal.Decimal, error)
}
