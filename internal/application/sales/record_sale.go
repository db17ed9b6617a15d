package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventauri/inventauri-api/internal/application/dto"
	"github.com/inventauri/inventauri-api/internal/domain"
	"github.com/inventauri/inventauri-api/internal/domain/entity"
	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

// RecordSaleUseCase registra una venta de forma atómica: cabecera, una línea por
// ítem solicitado y un movimiento de stock de salida por línea, en una sola
// transacción. Si cualquier paso falla (incluida una violación de integridad
// referencial al insertar), no queda persistida ninguna fila de la solicitud.
//
// El caso de uso NO valida que los ítems existan ni relee precios: confía en el
// precio enviado por el caller y delega la integridad referencial a las
// constraints de la base de datos (ErrItemReference tras rollback).
//
// Registrar dos veces la misma solicitud produce dos ventas independientes:
// no hay clave de idempotencia ni deduplicación en este núcleo.
type RecordSaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewRecordSaleUseCase construye el caso de uso. saleRepo (atado al pool) se usa
// solo para las lecturas de GetSale/ListSales; las escrituras van por txRunner.
func NewRecordSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *RecordSaleUseCase {
	return &RecordSaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// RecordSale valida la solicitud completa antes de tocar la BD y luego persiste
// venta, líneas y movimientos en una transacción. Devuelve la cabecera persistida;
// las líneas se consultan aparte vía GetSale.
func (uc *RecordSaleUseCase) RecordSale(ctx context.Context, tenantID, userID string, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if tenantID == "" {
		return nil, domain.ErrInvalidInput
	}
	// Carrito vacío: error del caller, nunca una venta vacía válida.
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Items {
		if line.ItemID == "" {
			return nil, domain.ErrInvalidInput
		}
		// Cantidad estrictamente positiva. El origen de este sistema coercionaba
		// cantidades negativas con abs(); aquí se rechazan: una cantidad no
		// positiva es un error de validación, no una magnitud implícita.
		if !line.Qty.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if line.UnitPriceCents < 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	occurredAt := now
	if in.SoldAt != "" {
		t, err := time.Parse(time.RFC3339, in.SoldAt)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		occurredAt = t
	}

	sale := &entity.Sale{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		Customer:   in.Customer,
		OccurredAt: occurredAt,
		CreatedAt:  now,
		CreatedBy:  userID,
	}

	err := uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		// Líneas y movimientos en el orden enviado por el caller.
		for _, line := range in.Items {
			saleLine := &entity.SaleLine{
				ID:             uuid.New().String(),
				SaleID:         sale.ID,
				ItemID:         line.ItemID,
				Quantity:       line.Qty,
				UnitPriceCents: line.UnitPriceCents,
				LineTotalCents: entity.LineTotalCents(line.Qty, line.UnitPriceCents),
			}
			if err := saleRepo.CreateLine(saleLine); err != nil {
				return err
			}
			// Un movimiento de salida por línea: delta = −cantidad (ya validada > 0).
			mov := &entity.StockMovement{
				ID:        uuid.New().String(),
				TenantID:  tenantID,
				ItemID:    line.ItemID,
				Quantity:  line.Qty.Neg(),
				Reason:    entity.MovementReasonSale,
				Reference: sale.ID,
				CreatedAt: now,
				CreatedBy: userID,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, nil), nil
}

func toSaleResponse(sale *entity.Sale, lines []*entity.SaleLine) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:         sale.ID,
		TenantID:   sale.TenantID,
		Customer:   sale.Customer,
		OccurredAt: sale.OccurredAt,
		CreatedAt:  sale.CreatedAt,
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			ID:             l.ID,
			ItemID:         l.ItemID,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
			LineTotalCents: l.LineTotalCents,
		})
	}
	return resp
}
