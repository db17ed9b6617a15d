package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/stock/movements (entradas manuales).
// Reason: "purchase" (qty > 0) o "adjustment" (qty firmada, distinta de cero).
// La razón "sale" está reservada al Sale Recorder y se rechaza aquí.
type RegisterMovementRequest struct {
	ItemID    string          `json:"item_id"`
	Qty       decimal.Decimal `json:"qty"`
	Reason    string          `json:"reason"`
	Reference string          `json:"reference,omitempty"`
}

// MovementResponse entrada del libro de stock en respuestas.
type MovementResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reason    string          `json:"reason"`
	Reference string          `json:"reference,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// StockLevelResponse nivel actual de un ítem (suma de deltas del libro).
type StockLevelResponse struct {
	ItemID string          `json:"item_id"`
	Level  decimal.Decimal `json:"level"`
}
