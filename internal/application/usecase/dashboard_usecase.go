package usecase

import (
	"context"
	"time"

	"github.com/inventauri/inventauri-api/internal/application/dto"
	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

// DashboardUseCase resumen de solo lectura para la pantalla principal.
type DashboardUseCase struct {
	dashRepo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(dashRepo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{dashRepo: dashRepo}
}

// GetSummary arma el resumen del día: ventas e ingresos de hoy, ítems más
// vendidos de los últimos 30 días y niveles de stock actuales.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, tenantID string) (*dto.DashboardSummaryResponse, error) {
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary, err := uc.dashRepo.SalesSummary(ctx, tenantID, startOfDay, now)
	if err != nil {
		return nil, err
	}
	topItems, err := uc.dashRepo.TopItems(ctx, tenantID, now.AddDate(0, 0, -30), now, 5)
	if err != nil {
		return nil, err
	}
	levels, err := uc.dashRepo.StockLevels(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardSummaryResponse{
		SalesToday:   summary.SaleCount,
		RevenueCents: summary.RevenueCents,
		TopItems:     make([]dto.TopItemDTO, 0, len(topItems)),
		StockLevels:  make([]dto.StockLevelItemDTO, 0, len(levels)),
	}
	for _, t := range topItems {
		resp.TopItems = append(resp.TopItems, dto.TopItemDTO{
			ItemID:     t.ItemID,
			Name:       t.ItemName,
			UnitsSold:  t.UnitsSold,
			SalesCents: t.SalesCents,
		})
	}
	for _, l := range levels {
		resp.StockLevels = append(resp.StockLevels, dto.StockLevelItemDTO{
			ItemID: l.ItemID,
			SKU:    l.SKU,
			Name:   l.ItemName,
			Level:  l.Level,
		})
	}
	return resp, nil
}
