package auth

import (
	"context"

	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El registro crea tenant y usuario juntos:
// o se persisten ambos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		tenantRepo repository.TenantRepository,
	) error) error
}
