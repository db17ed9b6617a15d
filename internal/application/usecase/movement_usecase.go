package usecase

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

// MovementUseCase entradas manuales del libro de stock (compras y ajustes) y
// consultas del libro. El libro es append-only; el nivel de un ítem es la suma
// de sus deltas, no hay agregado materializado que bloquear.
type MovementUseCase struct {
	movRepo  repository.StockMovementRepository
	itemRepo repository.ItemRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movRepo repository.StockMovementRepository, itemRepo repository.ItemRepository) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo, itemRepo: itemRepo}
}

// RegisterMovement registra una entrada manual. Reglas:
//   - reason "purchase": cantidad estrictamente positiva.
//   - reason "adjustment": cantidad firmada, distinta de cero.
//   - reason "sale" se rechaza: esos movimientos solo los crea el Sale Recorder.
func (uc *MovementUseCase) RegisterMovement(ctx context.Context, tenantID, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if tenantID == "" || in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Reason {
	case entity.MovementReasonPurchase:
		if !in.Qty.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementReasonAdjustment:
		if in.Qty.IsZero() {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	// Validar que el ítem exista y sea del tenant antes de escribir.
	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}

	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		ItemID:    in.ItemID,
		Quantity:  in.Qty,
		Reason:    in.Reason,
		Reference: in.Reference,
		CreatedAt: time.Now(),
		CreatedBy: userID,
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

// ListMovements lista el libro de un ítem, paginado, más reciente primero.
func (uc *MovementUseCase) ListMovements(ctx context.Context, tenantID, itemID string, page dto.PageRequest) ([]dto.MovementResponse, error) {
	page.DefaultPage()
	list, err := uc.movRepo.ListByItem(tenantID, itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		result = append(result, *toMovementResponse(m))
	}
	return result, nil
}

// StockLevel devuelve el nivel actual de un ítem: SUM(quantity) del libro.
func (uc *MovementUseCase) StockLevel(ctx context.Context, tenantID, itemID string) (*dto.StockLevelResponse, error) {
	if itemID == "" {
		return nil, domain.ErrInvalidInput
	}
	level, err := uc.movRepo.LevelByItem(tenantID, itemID)
	if err != nil {
		return nil, err
	}
	return &dto.StockLevelResponse{ItemID: itemID, Level: level}, nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:        m.ID,
		ItemID:    m.ItemID,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
	}
}
