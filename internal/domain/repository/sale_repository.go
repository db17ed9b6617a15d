package repository

import "github.com/inventauri/inventauri-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus líneas.
// Create y CreateLine se usan dentro de la transacción del Sale Recorder
// (repos atados a la tx vía TxRunner); las lecturas van contra el pool.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateLine(line *entity.SaleLine) error
	GetByID(id string) (*entity.Sale, error)
	GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Sale, error)
}
