package sales

import (
	"context"

	"github.com/inventauri/inventauri-api/internal/domain"
	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

// ReceiptUseCase genera el ticket PDF de una venta (representación impresa POS).
type ReceiptUseCase struct {
	saleRepo   repository.SaleRepository
	itemRepo   repository.ItemRepository
	tenantRepo repository.TenantRepository
	generator  ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	itemRepo repository.ItemRepository,
	tenantRepo repository.TenantRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, itemRepo: itemRepo, tenantRepo: tenantRepo, generator: generator}
}

// GenerateReceipt arma las líneas con nombre de ítem y delega el render al generador.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, tenantID, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.saleRepo.GetLinesBySaleID(saleID)
	if err != nil {
		return nil, err
	}
	receiptLines := make([]ReceiptLine, 0, len(lines))
	for _, l := range lines {
		itemName := l.ItemID
		if item, err := uc.itemRepo.GetByID(l.ItemID); err == nil && item != nil {
			itemName = item.Name
		}
		receiptLines = append(receiptLines, ReceiptLine{
			ItemName:       itemName,
			Quantity:       l.Quantity.String(),
			UnitPriceCents: l.UnitPriceCents,
			LineTotalCents: l.LineTotalCents,
		})
	}
	return uc.generator.GenerateReceipt(ctx, sale, tenant, receiptLines)
}
