package sales

import (
	"context"

	"github.com/inventauri/inventauri-api/internal/domain/entity"
	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza commit o rollback en toda ruta de salida, incluidos
// errores: es la única garantía de atomicidad del Sale Recorder.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// ReceiptGenerator renderiza el ticket PDF de una venta registrada.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, tenant *entity.Tenant, lines []ReceiptLine) ([]byte, error)
}

// ReceiptLine línea de venta enriquecida con el nombre del ítem para el ticket.
type ReceiptLine struct {
	ItemName       string
	Quantity       string // ya formateada (ej. "1.5")
	UnitPriceCents int64
	LineTotalCents int64
}
