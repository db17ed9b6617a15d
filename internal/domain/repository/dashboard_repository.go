package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SalesSummaryResult totales de ventas de un tenant en un rango de fechas.
type SalesSummaryResult struct {
	SaleCount    int64
	RevenueCents int64 // SUM(line_total_cents) de las líneas del rango
}

// TopItemResult unidades vendidas por ítem (ordenado descendente).
type TopItemResult struct {
	ItemID     string
	ItemName   string
	UnitsSold  decimal.Decimal
	SalesCents int64
}

// StockLevelResult nivel de stock por ítem (SUM de deltas del libro).
type StockLevelResult struct {
	ItemID   string
	ItemName string
	SKU      string
	Level    decimal.Decimal
}

// DashboardRepository consultas de solo lectura para el dashboard.
type DashboardRepository interface {
	SalesSummary(ctx context.Context, tenantID string, from, to time.Time) (*SalesSummaryResult, error)
	TopItems(ctx context.Context, tenantID string, from, to time.Time, limit int) ([]TopItemResult, error)
	StockLevels(ctx context.Context, tenantID string) ([]StockLevelResult, error)
}
