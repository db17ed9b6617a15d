package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/inventauri/inventauri-api/internal/application/dto"
	"github.com/inventauri/inventauri-api/internal/domain"
	"github.com/inventauri/inventauri-api/internal/domain/entity"
	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

// ItemUseCase CRUD del catálogo de ítems (Catalog Store).
// La UI consulta aquí el precio antes de armar una venta; el Sale Recorder no
// vuelve a leer el catálogo.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(itemRepo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// CreateItem crea un ítem del catálogo. SKU único por tenant (ErrDuplicate si choca).
func (uc *ItemUseCase) CreateItem(ctx context.Context, tenantID string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if tenantID == "" || in.SKU == "" || in.Name == "" || in.UnitPriceCents < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.Item{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		SKU:            in.SKU,
		Name:           in.Name,
		Description:    in.Description,
		UnitPriceCents: in.UnitPriceCents,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// UpdateItem actualiza campos del ítem; los campos no enviados se conservan.
func (uc *ItemUseCase) UpdateItem(ctx context.Context, tenantID, id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.Description != "" {
		item.Description = in.Description
	}
	if in.UnitPriceCents != nil {
		if *in.UnitPriceCents < 0 {
			return nil, domain.ErrInvalidInput
		}
		item.UnitPriceCents = *in.UnitPriceCents
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetItem obtiene un ítem por ID validando el tenant.
func (uc *ItemUseCase) GetItem(ctx context.Context, tenantID, id string) (*dto.ItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if item.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	return toItemResponse(item), nil
}

// ListItems lista el catálogo del tenant, paginado.
func (uc *ItemUseCase) ListItems(ctx context.Context, tenantID string, page dto.PageRequest) ([]dto.ItemResponse, error) {
	page.DefaultPage()
	items, err := uc.itemRepo.List(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, *toItemResponse(item))
	}
	return result, nil
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:             item.ID,
		TenantID:       item.TenantID,
		SKU:            item.SKU,
		Name:           item.Name,
		Description:    item.Description,
		UnitPriceCents: item.UnitPriceCents,
		Active:         item.Active,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}
