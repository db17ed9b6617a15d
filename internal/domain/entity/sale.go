package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale cabecera de una venta POS. Las líneas y los movimientos de stock se crean
// junto con la venta en una sola transacción y nunca se modifican después
// (no hay flujo de devoluciones en este núcleo).
type Sale struct {
	ID         string
	TenantID   string
	Customer   string    // etiqueta libre del cliente; vacío = venta sin cliente
	OccurredAt time.Time // momento de la venta; si el caller no lo envía, momento de procesamiento
	CreatedAt  time.Time
	CreatedBy  string // UserID
}

// SaleLine línea de venta: cantidad de un ítem a un precio unitario en centavos.
// La cantidad es decimal (se admiten unidades fraccionadas, ej. 1.5 kg).
// Inmutable una vez creada.
type SaleLine struct {
	ID             string
	SaleID         string
	ItemID         string
	Quantity       decimal.Decimal
	UnitPriceCents int64
	LineTotalCents int64 // derivado: ver LineTotalCents
}

// LineTotalCents calcula el total de línea en centavos: round(cantidad × precio unitario).
// Regla de redondeo fijada: mitad lejos de cero al entero más cercano
// (la semántica de Round(0) de shopspring/decimal). Ej: 2.5 × 199 = 497.5 → 498.
func LineTotalCents(qty decimal.Decimal, unitPriceCents int64) int64 {
	return qty.Mul(decimal.NewFromInt(unitPriceCents)).Round(0).IntPart()
}
