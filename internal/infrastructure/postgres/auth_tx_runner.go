package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inventauri/inventauri-api/internal/application/auth"
	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

var _ auth.TxRunner = (*AuthTxRunner)(nil)

// AuthTxRunner ejecuta el registro (tenant + usuario) dentro de una transacción
// PostgreSQL: un fallo en cualquiera de las dos inserciones revierte ambas.
type AuthTxRunner struct {
	pool *pgxpool.Pool
}

// NewAuthTxRunner construye el runner con el pool.
func NewAuthTxRunner(pool *pgxpool.Pool) *AuthTxRunner {
	return &AuthTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *AuthTxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	tenantRepo repository.TenantRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewUserRepository(tx), NewTenantRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
