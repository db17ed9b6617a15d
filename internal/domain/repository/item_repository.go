package repository

import "github.com/inventauri/inventauri-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para el catálogo de ítems.
type ItemRepository interface {
	Create(item *entity.Item) error
	Update(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	List(tenantID string, limit, offset int) ([]*entity.Item, error)
}
