package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Razones de movimiento del libro de stock (vocabulario fijo).
const (
	MovementReasonSale       = "sale"       // salida por venta (la genera el Sale Recorder)
	MovementReasonPurchase   = "purchase"   // entrada por compra
	MovementReasonAdjustment = "adjustment" // ajuste manual, delta firmado
)

// StockMovement entrada append-only del libro de stock: delta firmado de cantidad
// para un ítem. Negativo = salida, positivo = entrada. El nivel de stock de un ítem
// es la suma de sus deltas; ningún componente mantiene un agregado materializado.
type StockMovement struct {
	ID        string
	TenantID  string
	ItemID    string
	Quantity  decimal.Decimal // delta firmado
	Reason    string          // ver constantes MovementReason*
	Reference string          // ID de la venta u operación que lo originó (vacío en ajustes sueltos)
	CreatedAt time.Time
	CreatedBy string // UserID
}
