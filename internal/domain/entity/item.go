package entity

import "time"

// Item representa un artículo vendible del catálogo (por tenant).
// El precio se guarda en centavos (unidad menor de moneda) para evitar
// errores de punto flotante con dinero; ningún valor monetario circula como float.
type Item struct {
	ID             string
	TenantID       string
	SKU            string // código único por tenant
	Name           string
	Description    string
	UnitPriceCents int64 // precio de venta de referencia, en centavos
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
