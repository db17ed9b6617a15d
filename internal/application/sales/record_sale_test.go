package sales_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventauri/inventauri-api/internal/application/dto"
	"github.com/inventauri/inventauri-api/internal/application/sales"
	"github.com/inventauri/inventauri-api/internal/domain"
	"github.com/inventauri/inventauri-api/internal/domain/entity"
	"github.com/inventauri/inventauri-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes: almacén en memoria con semántica transaccional
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore guarda las filas "commiteadas". knownItems mapea itemID → tenantID
// y juega el papel de las FKs de la base de datos real.
type fakeStore struct {
	sales      []entity.Sale
	lines      []entity.SaleLine
	movements  []entity.StockMovement
	knownItems map[string]string
}

func newFakeStore(items map[string]string) *fakeStore {
	return &fakeStore{knownItems: items}
}

type fakeSaleRepo struct {
	store *fakeStore
}

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.store.sales = append(r.store.sales, *sale)
	return nil
}

func (r *fakeSaleRepo) CreateLine(line *entity.SaleLine) error {
	if _, ok := r.store.knownItems[line.ItemID]; !ok {
		return fmt.Errorf("insert sale line %s: %w", line.ItemID, domain.ErrItemReference)
	}
	r.store.lines = append(r.store.lines, *line)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for i := range r.store.sales {
		if r.store.sales[i].ID == id {
			s := r.store.sales[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSaleRepo) GetLinesBySaleID(saleID string) ([]*entity.SaleLine, error) {
	var out []*entity.SaleLine
	for i := range r.store.lines {
		if r.store.lines[i].SaleID == saleID {
			l := r.store.lines[i]
			out = append(out, &l)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for i := range r.store.sales {
		if r.store.sales[i].TenantID == tenantID {
			s := r.store.sales[i]
			out = append(out, &s)
		}
	}
	return out, nil
}

type fakeMovementRepo struct {
	store *fakeStore
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	// Emula la FK compuesta (item_id, tenant_id): ítem de otro tenant también viola.
	tenant, ok := r.store.knownItems[m.ItemID]
	if !ok || tenant != m.TenantID {
		return fmt.Errorf("insert movement for item %s: %w", m.ItemID, domain.ErrItemReference)
	}
	r.store.movements = append(r.store.movements, *m)
	return nil
}

func (r *fakeMovementRepo) ListByItem(tenantID, itemID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for i := range r.store.movements {
		if r.store.movements[i].TenantID == tenantID && r.store.movements[i].ItemID == itemID {
			m := r.store.movements[i]
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) LevelByItem(tenantID, itemID string) (decimal.Decimal, error) {
	level := decimal.Zero
	for i := range r.store.movements {
		if r.store.movements[i].TenantID == tenantID && r.store.movements[i].ItemID == itemID {
			level = level.Add(r.store.movements[i].Quantity)
		}
	}
	return level, nil
}

// fakeTxRunner simula commit/rollback: las escrituras van a un staging y solo
// se fusionan al almacén si el callback termina sin error.
type fakeTxRunner struct {
	store *fakeStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.SaleRepository, repository.StockMovementRepository) error) error {
	staging := newFakeStore(r.store.knownItems)
	if err := fn(&fakeSaleRepo{store: staging}, &fakeMovementRepo{store: staging}); err != nil {
		return err
	}
	r.store.sales = append(r.store.sales, staging.sales...)
	r.store.lines = append(r.store.lines, staging.lines...)
	r.store.movements = append(r.store.movements, staging.movements...)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	tenantA   = "tenant-a"
	tenantB   = "tenant-b"
	userA     = "user-a"
	itemCafe  = "item-cafe"
	itemPan   = "item-pan"
	itemAjeno = "item-de-otro-tenant"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// newUseCase arma el caso de uso con un almacén que conoce dos ítems del
// tenant A y uno del tenant B.
func newUseCase() (*sales.RecordSaleUseCase, *fakeStore) {
	store := newFakeStore(map[string]string{
		itemCafe:  tenantA,
		itemPan:   tenantA,
		itemAjeno: tenantB,
	})
	uc := sales.NewRecordSaleUseCase(&fakeTxRunner{store: store}, &fakeSaleRepo{store: store})
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSale — camino feliz
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_DosLineas_PersisteVentaLineasYMovimientos(t *testing.T) {
	uc, store := newUseCase()

	resp, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Customer: "Marcela",
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "3"), UnitPriceCents: 250},
			{ItemID: itemPan, Qty: dec(t, "1.5"), UnitPriceCents: 100},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.ID, "la venta debe salir con ID asignado")
	assert.Equal(t, tenantA, resp.TenantID)
	assert.Empty(t, resp.Lines, "el POST devuelve solo la cabecera")

	require.Len(t, store.sales, 1)
	require.Len(t, store.lines, 2)
	require.Len(t, store.movements, 2)

	// Líneas en el orden enviado, con el total derivado
	assert.Equal(t, itemCafe, store.lines[0].ItemID)
	assert.Equal(t, int64(750), store.lines[0].LineTotalCents, "3 × 250 = 750")
	assert.Equal(t, itemPan, store.lines[1].ItemID)
	assert.Equal(t, int64(150), store.lines[1].LineTotalCents, "1.5 × 100 = 150")

	// Un movimiento de salida por línea: delta negado, razón sale, referencia a la venta
	for i, mov := range store.movements {
		assert.Equal(t, entity.MovementReasonSale, mov.Reason)
		assert.Equal(t, resp.ID, mov.Reference, "el movimiento debe referenciar la venta")
		assert.Equal(t, store.lines[i].Quantity.Neg().String(), mov.Quantity.String(),
			"el delta debe ser la cantidad vendida negada")
	}
	assert.Equal(t, "-3", store.movements[0].Quantity.String())
	assert.Equal(t, "-1.5", store.movements[1].Quantity.String())
}

func TestRecordSale_RedondeoMitadHaciaArriba(t *testing.T) {
	// 2.5 × 199 = 497.5 → redondea lejos de cero → 498
	uc, store := newUseCase()

	_, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "2.5"), UnitPriceCents: 199},
		},
	})
	require.NoError(t, err)
	require.Len(t, store.lines, 1)
	assert.Equal(t, int64(498), store.lines[0].LineTotalCents)
}

func TestRecordSale_SoldAtExplicito(t *testing.T) {
	uc, store := newUseCase()

	soldAt := "2026-08-27T14:30:00Z"
	resp, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		SoldAt: soldAt,
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "1"), UnitPriceCents: 250},
		},
	})
	require.NoError(t, err)

	want, _ := time.Parse(time.RFC3339, soldAt)
	assert.True(t, resp.OccurredAt.Equal(want), "sold_at explícito debe respetarse")
	assert.True(t, store.sales[0].OccurredAt.Equal(want))
}

func TestRecordSale_SoldAtVacio_UsaAhora(t *testing.T) {
	uc, _ := newUseCase()

	before := time.Now()
	resp, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "1"), UnitPriceCents: 250},
		},
	})
	require.NoError(t, err)
	assert.False(t, resp.OccurredAt.Before(before), "sin sold_at la venta se fecha al procesarla")
	assert.False(t, resp.OccurredAt.After(time.Now()))
}

// Registrar dos veces la misma solicitud produce dos ventas independientes.
func TestRecordSale_NoEsIdempotente(t *testing.T) {
	uc, store := newUseCase()

	req := dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "2"), UnitPriceCents: 250},
		},
	}
	first, err := uc.RecordSale(context.Background(), tenantA, userA, req)
	require.NoError(t, err)
	second, err := uc.RecordSale(context.Background(), tenantA, userA, req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "cada solicitud crea una venta nueva")
	assert.Len(t, store.sales, 2)
	assert.Len(t, store.movements, 2, "el stock se descuenta dos veces")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSale — validación (rechazo antes de escribir)
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_CarritoVacio_Rechazado(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales, "no debe quedar ninguna fila")
	assert.Empty(t, store.movements)
}

func TestRecordSale_CantidadCero_Rechazada(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: decimal.Zero, UnitPriceCents: 250},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales)
}

func TestRecordSale_CantidadNegativa_Rechazada(t *testing.T) {
	// No se coerciona con valor absoluto: una cantidad negativa es un error.
	uc, store := newUseCase()

	_, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "-4"), UnitPriceCents: 250},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.movements)
}

func TestRecordSale_PrecioNegativo_Rechazado(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "1"), UnitPriceCents: -250},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales)
}

func TestRecordSale_SoldAtInvalido_Rechazado(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		SoldAt: "ayer a las tres",
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "1"), UnitPriceCents: 250},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales)
}

// Una línea inválida en medio del carrito invalida la solicitud completa,
// incluso si las líneas anteriores eran válidas.
func TestRecordSale_LineaInvalidaEnMedio_RechazaTodo(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "1"), UnitPriceCents: 250},
			{ItemID: "", Qty: dec(t, "1"), UnitPriceCents: 100},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, store.sales)
	assert.Empty(t, store.lines)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RecordSale — atomicidad (rollback por integridad referencial)
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_ItemInexistente_RollbackTotal(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "1"), UnitPriceCents: 250},
			{ItemID: "item-fantasma", Qty: dec(t, "1"), UnitPriceCents: 100},
		},
	})
	assert.ErrorIs(t, err, domain.ErrItemReference)

	// La primera línea era válida pero la transacción se revierte completa.
	assert.Empty(t, store.sales)
	assert.Empty(t, store.lines)
	assert.Empty(t, store.movements)
}

func TestRecordSale_ItemDeOtroTenant_RollbackTotal(t *testing.T) {
	uc, store := newUseCase()

	_, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemAjeno, Qty: dec(t, "1"), UnitPriceCents: 500},
		},
	})
	assert.ErrorIs(t, err, domain.ErrItemReference,
		"un ítem de otro tenant debe violar la FK compuesta del movimiento")
	assert.Empty(t, store.sales)
	assert.Empty(t, store.movements)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetSale
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSale_IncluyeLineasEnOrden(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "3"), UnitPriceCents: 250},
			{ItemID: itemPan, Qty: dec(t, "1"), UnitPriceCents: 100},
		},
	})
	require.NoError(t, err)

	got, err := uc.GetSale(context.Background(), tenantA, resp.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, itemCafe, got.Lines[0].ItemID)
	assert.Equal(t, itemPan, got.Lines[1].ItemID)
}

func TestGetSale_OtroTenant_Forbidden(t *testing.T) {
	uc, _ := newUseCase()

	resp, err := uc.RecordSale(context.Background(), tenantA, userA, dto.RecordSaleRequest{
		Items: []dto.SaleLineRequest{
			{ItemID: itemCafe, Qty: dec(t, "1"), UnitPriceCents: 250},
		},
	})
	require.NoError(t, err)

	_, err = uc.GetSale(context.Background(), tenantB, resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetSale_Inexistente_NotFound(t *testing.T) {
	uc, _ := newUseCase()

	_, err := uc.GetSale(context.Background(), tenantA, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// failingSaleRepo simula una base de datos caída en las lecturas.
type failingSaleRepo struct {
	*fakeSaleRepo
	err error
}

func (r *failingSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return nil, r.err
}

// Un fallo de almacenamiento no es un 404: el error se propaga tal cual.
func TestGetSale_ErrorDeAlmacenamiento_NoEsNotFound(t *testing.T) {
	store := newFakeStore(map[string]string{itemCafe: tenantA})
	errDB := errors.New("db caída")
	uc := sales.NewRecordSaleUseCase(
		&fakeTxRunner{store: store},
		&failingSaleRepo{fakeSaleRepo: &fakeSaleRepo{store: store}, err: errDB},
	)

	_, err := uc.GetSale(context.Background(), tenantA, "cualquiera")
	assert.ErrorIs(t, err, errDB)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del DTO — qty acepta número o string en JSON
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSaleRequest_QtyNumeroOString(t *testing.T) {
	payload := `{
		"items": [
			{"item_id": "a", "qty": 3, "unit_price_cents": 250},
			{"item_id": "b", "qty": "1.5", "unit_price_cents": 100}
		]
	}`
	var req dto.RecordSaleRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	require.Len(t, req.Items, 2)
	assert.Equal(t, "3", req.Items[0].Qty.String())
	assert.Equal(t, "1.5", req.Items[1].Qty.String())
}

// Un string que no es numérico no se coerciona a cero: el unmarshal falla.
func TestRecordSaleRequest_QtyStringMalformado_Rechazado(t *testing.T) {
	casos := []string{
		`{"items": [{"item_id": "a", "qty": "tres", "unit_price_cents": 250}]}`,
		`{"items": [{"item_id": "a", "qty": "", "unit_price_cents": 250}]}`,
		`{"items": [{"item_id": "a", "qty": "1..5", "unit_price_cents": 250}]}`,
	}
	for _, payload := range casos {
		var req dto.RecordSaleRequest
		assert.Error(t, json.Unmarshal([]byte(payload), &req), "payload: %s", payload)
	}
}
