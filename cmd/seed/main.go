// seed crea datos de demostración: un tenant, un usuario admin, ítems de catálogo
// y movimientos de compra iniciales para que el stock arranque con niveles positivos.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_*).
// Credenciales de demo: admin@demo.inventauri / inventauri123
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventauri/inventauri-api/internal/domain/entity"
	"github.com/inventauri/inventauri-api/internal/infrastructure/postgres"
	"github.com/inventauri/inventauri-api/pkg/config"
)

type demoItem struct {
	sku          string
	name         string
	priceCents   int64
	openingStock string // decimal: los ítems a granel usan fracciones
}

var demoItems = []demoItem{
	{"CAFE-250", "Café molido 250g", 1850, "40"},
	{"PAN-INT", "Pan integral", 450, "25"},
	{"QUESO-KG", "Queso campesino (kg)", 2400, "12.5"},
	{"LECHE-1L", "Leche entera 1L", 390, "60"},
	{"AREPA-X5", "Arepas x5", 800, "30"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)

	now := time.Now()
	tenant := &entity.Tenant{
		ID:        uuid.New().String(),
		Name:      "Tienda Demo",
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tenantRepo.Create(tenant); err != nil {
		fail("crear tenant: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("inventauri123"), bcrypt.DefaultCost)
	if err != nil {
		fail("hash password: %v", err)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenant.ID,
		Email:        "admin@demo.inventauri",
		PasswordHash: string(hash),
		Name:         "Admin Demo",
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(admin); err != nil {
		fail("crear usuario admin: %v", err)
	}

	for _, d := range demoItems {
		item := &entity.Item{
			ID:             uuid.New().String(),
			TenantID:       tenant.ID,
			SKU:            d.sku,
			Name:           d.name,
			UnitPriceCents: d.priceCents,
			Active:         true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := itemRepo.Create(item); err != nil {
			fail("crear ítem %s: %v", d.sku, err)
		}
		qty, err := decimal.NewFromString(d.openingStock)
		if err != nil {
			fail("stock inicial de %s: %v", d.sku, err)
		}
		mov := &entity.StockMovement{
			ID:        uuid.New().String(),
			TenantID:  tenant.ID,
			ItemID:    item.ID,
			Quantity:  qty,
			Reason:    entity.MovementReasonPurchase,
			Reference: "seed",
			CreatedAt: now,
			CreatedBy: admin.ID,
		}
		if err := movRepo.Create(mov); err != nil {
			fail("stock inicial de %s: %v", d.sku, err)
		}
	}

	fmt.Printf("seed listo: tenant=%s usuario=%s (%d ítems)\n", tenant.ID, admin.Email, len(demoItems))
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
