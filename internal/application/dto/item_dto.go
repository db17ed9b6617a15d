package dto

import "time"

// CreateItemRequest body para POST /api/items.
type CreateItemRequest struct {
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// UpdateItemRequest body para PUT /api/items/:id. Los campos vacíos no se tocan.
type UpdateItemRequest struct {
	Name           string `json:"name,omitempty"`
	Description    string `json:"description,omitempty"`
	UnitPriceCents *int64 `json:"unit_price_cents,omitempty"`
	Active         *bool  `json:"active,omitempty"`
}

// ItemResponse ítem del catálogo en respuestas.
type ItemResponse struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenant_id"`
	SKU            string    `json:"sku"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
