package sales

import (
	"context"

	"github.com/inventauri/inventauri-api/internal/application/dto"
	"github.com/inventauri/inventauri-api/internal/domain"
)

// GetSale obtiene una venta por ID con sus líneas.
func (uc *RecordSaleUseCase) GetSale(ctx context.Context, tenantID, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, lines), nil
}

// ListSales lista las ventas del tenant, paginadas, más reciente primero.
func (uc *RecordSaleUseCase) ListSales(ctx context.Context, tenantID string, page dto.PageRequest) ([]dto.SaleResponse, error) {
	page.DefaultPage()
	list, err := uc.saleRepo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		result = append(result, *toSaleResponse(s, nil))
	}
	return result, nil
}
