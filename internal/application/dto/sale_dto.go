package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest body para POST /api/sales.
// SoldAt es opcional (RFC 3339); si va vacío la venta se fecha al momento de procesarla.
type RecordSaleRequest struct {
	Customer string            `json:"customer,omitempty"`
	SoldAt   string            `json:"sold_at,omitempty"`
	Items    []SaleLineRequest `json:"items"`
}

// SaleLineRequest línea solicitada: ítem, cantidad y precio unitario en centavos.
// Qty acepta número JSON o string decimal ("3", 1.5); decimal.Decimal parsea ambos.
// El precio lo fija el caller (la UI lo lee del catálogo antes de armar el carrito);
// el Sale Recorder no vuelve a consultar el precio del ítem.
type SaleLineRequest struct {
	ItemID         string          `json:"item_id"`
	Qty            decimal.Decimal `json:"qty"`
	UnitPriceCents int64           `json:"unit_price_cents"`
}

// SaleResponse cabecera de venta en respuestas. Las líneas solo se incluyen en
// GET /api/sales/:id; el POST devuelve únicamente la cabecera persistida.
type SaleResponse struct {
	ID         string             `json:"id"`
	TenantID   string             `json:"tenant_id"`
	Customer   string             `json:"customer,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
	CreatedAt  time.Time          `json:"created_at"`
	Lines      []SaleLineResponse `json:"lines,omitempty"`
}

// SaleLineResponse línea persistida con su total derivado.
type SaleLineResponse struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPriceCents int64           `json:"unit_price_cents"`
	LineTotalCents int64           `json:"line_total_cents"`
}
