package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse resumen para GET /api/dashboard/summary.
type DashboardSummaryResponse struct {
	SalesToday   int64               `json:"sales_today"`
	RevenueCents int64               `json:"revenue_cents"`
	TopItems     []TopItemDTO        `json:"top_items"`
	StockLevels  []StockLevelItemDTO `json:"stock_levels"`
}

// TopItemDTO ítem más vendido del período.
type TopItemDTO struct {
	ItemID     string          `json:"item_id"`
	Name       string          `json:"name"`
	UnitsSold  decimal.Decimal `json:"units_sold"`
	SalesCents int64           `json:"sales_cents"`
}

// StockLevelItemDTO nivel de stock por ítem para el dashboard.
type StockLevelItemDTO struct {
	ItemID string          `json:"item_id"`
	SKU    string          `json:"sku"`
	Name   string          `json:"name"`
	Level  decimal.Decimal `json:"level"`
}
