package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/emart-api/internal/application/inventory"
	"github.com/jhoicas/emart-api/internal/domain"
	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// tickClock reloj determinista que avanza un segundo por lectura: IDs únicos
// por producto y timestamps reproducibles.
type tickClock struct {
	t time.Time
}

func (c *tickClock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(seed []entity.Product, opts inventory.Options) *inventory.Store {
	clock := &tickClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	opts.Now = clock.now
	return inventory.NewStore(seed, opts)
}

func productoLeche() entity.Product {
	return entity.Product{
		VendorCode:     "VND001",
		Category:       "Dairy",
		Description:    "Fresh Milk 1L",
		Count:          120,
		Cost:           decimal.RequireFromString("3.99"),
		Currency:       "USD",
		ExpiryDate:     time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		WarehouseStock: 80,
		ShelfStock:     40,
		Threshold:      20,
		Status:         entity.StatusActive,
		CreatedBy:      "maker",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_AsignaIDYTimestampsIguales(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})

	created := store.AddProduct(productoLeche())

	require.NotEmpty(t, created.ID, "debe asignarse un ID nuevo")
	assert.Equal(t, created.CreatedAt, created.UpdatedAt,
		"CreatedAt y UpdatedAt deben ser iguales al crear")

	list := store.Products(inventory.Filter{})
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0], "el listado debe contener exactamente el producto creado")
	assert.Equal(t, "Fresh Milk 1L", list[0].Description)
}

// El store no valida campos numéricos: acepta stock negativo y umbral cero.
func TestAddProduct_SinValidacionNumerica(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})

	p := productoLeche()
	p.Count = -5
	p.Threshold = 0
	created := store.AddProduct(p)

	got := store.Product(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, -5, got.Count)
	assert.Equal(t, 0, got.Threshold)
}

// Crear un producto bajo umbral dispara la recomputación de alertas.
func TestAddProduct_RecalculaAlertas(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})

	p := productoLeche()
	p.Count = 5
	created := store.AddProduct(p)

	alerts := store.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.LowStockAlertID(created.ID), alerts[0].ID)
	assert.Equal(t, entity.SeverityHigh, alerts[0].Severity)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateProduct / ApproveProduct / MoveStock
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_SoloCambiaCamposPresentes(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	created := store.AddProduct(productoLeche())

	count := 5
	require.NoError(t, store.UpdateProduct(created.ID, inventory.ProductUpdate{Count: &count}))

	got := store.Product(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, 5, got.Count, "count debe actualizarse")
	assert.True(t, got.UpdatedAt.After(got.CreatedAt), "UpdatedAt debe estamparse de nuevo")

	// El resto de campos queda intacto.
	assert.Equal(t, created.VendorCode, got.VendorCode)
	assert.Equal(t, created.Description, got.Description)
	assert.True(t, created.Cost.Equal(got.Cost))
	assert.Equal(t, created.WarehouseStock, got.WarehouseStock)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
}

func TestUpdateProduct_IDInexistente_ErrProductNotFound(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	count := 5
	err := store.UpdateProduct("nope", inventory.ProductUpdate{Count: &count})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestApproveProduct_MarcaAprobadoPor(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	created := store.AddProduct(productoLeche())

	require.NoError(t, store.ApproveProduct(created.ID, "checker"))

	got := store.Product(created.ID)
	require.NotNil(t, got)
	assert.True(t, got.Approved)
	assert.Equal(t, "checker", got.ApprovedBy)
}

// MoveStock aplica los dos deltas de forma independiente y sin validar signos.
func TestMoveStock_DeltasIndependientes(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	created := store.AddProduct(productoLeche()) // bodega 80, estante 40

	require.NoError(t, store.MoveStock(created.ID, 30, 25))

	got := store.Product(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, 50, got.WarehouseStock)
	assert.Equal(t, 65, got.ShelfStock)
	assert.Equal(t, 120, got.Count, "Count no se toca al mover stock")
}

func TestMoveStock_PermiteResultadoNegativo(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	created := store.AddProduct(productoLeche())

	require.NoError(t, store.MoveStock(created.ID, 500, 0))

	got := store.Product(created.ID)
	require.NotNil(t, got)
	assert.Equal(t, -420, got.WarehouseStock, "la holgura del diseño permite negativos")
}

func TestMoveStock_IDInexistente_ErrProductNotFound(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	assert.ErrorIs(t, store.MoveStock("nope", 1, 1), domain.ErrProductNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AcknowledgeAlert y regeneración
// ──────────────────────────────────────────────────────────────────────────────

// Reconocer marca solo la alerta indicada; una mutación posterior regenera la
// lista y el flag vuelve a false (comportamiento documentado, no un defecto).
func TestAcknowledgeAlert_SePierdeTrasRegeneracion(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	low := productoLeche()
	low.Count = 5
	pLow := store.AddProduct(low)
	other := store.AddProduct(productoLeche())

	alertID := entity.LowStockAlertID(pLow.ID)
	require.NoError(t, store.AcknowledgeAlert(alertID))

	for _, a := range store.Alerts() {
		if a.ID == alertID {
			assert.True(t, a.Acknowledged)
		} else {
			assert.False(t, a.Acknowledged, "las demás alertas no se tocan")
		}
	}

	// Mutación no relacionada: regenera el conjunto completo.
	desc := "Whole Milk 1L"
	require.NoError(t, store.UpdateProduct(other.ID, inventory.ProductUpdate{Description: &desc}))

	for _, a := range store.Alerts() {
		assert.False(t, a.Acknowledged, "la regeneración descarta el reconocimiento")
	}
}

// Con KeepAcknowledged el flag se conserva por ID a través de regeneraciones.
func TestAcknowledgeAlert_KeepAcknowledgedConserva(t *testing.T) {
	store := newTestStore(nil, inventory.Options{KeepAcknowledged: true})
	low := productoLeche()
	low.Count = 5
	pLow := store.AddProduct(low)
	other := store.AddProduct(productoLeche())

	alertID := entity.LowStockAlertID(pLow.ID)
	require.NoError(t, store.AcknowledgeAlert(alertID))

	desc := "Whole Milk 1L"
	require.NoError(t, store.UpdateProduct(other.ID, inventory.ProductUpdate{Description: &desc}))

	var found bool
	for _, a := range store.Alerts() {
		if a.ID == alertID {
			found = true
			assert.True(t, a.Acknowledged, "el flag debe sobrevivir la regeneración")
		}
	}
	assert.True(t, found, "la alerta debe seguir existiendo mientras la condición persista")
}

func TestAcknowledgeAlert_IDInexistente_ErrAlertNotFound(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	assert.ErrorIs(t, store.AcknowledgeAlert("nope"), domain.ErrAlertNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas: filtro, categorías, facturas
// ──────────────────────────────────────────────────────────────────────────────

func TestProducts_BusquedaYCategoria(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	store.AddProduct(productoLeche()) // VND001 / Dairy / Fresh Milk 1L
	apples := productoLeche()
	apples.VendorCode = "VND002"
	apples.Category = "Fruits"
	apples.Description = "Organic Apples 2lb"
	store.AddProduct(apples)

	// Búsqueda sin distinción de mayúsculas sobre descripción...
	got := store.Products(inventory.Filter{Search: "MILK"})
	require.Len(t, got, 1)
	assert.Equal(t, "Fresh Milk 1L", got[0].Description)

	// ...y sobre código de proveedor.
	got = store.Products(inventory.Filter{Search: "vnd002"})
	require.Len(t, got, 1)
	assert.Equal(t, "Organic Apples 2lb", got[0].Description)

	// Categoría con coincidencia exacta.
	got = store.Products(inventory.Filter{Category: "Fruits"})
	require.Len(t, got, 1)

	// Categoría y búsqueda combinadas sin resultados.
	got = store.Products(inventory.Filter{Search: "milk", Category: "Fruits"})
	assert.Empty(t, got)
}

func TestCategories_OrdenPrimeraAparicion(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	for _, cat := range []string{"Dairy", "Fruits", "Dairy", "Vegetables"} {
		p := productoLeche()
		p.Category = cat
		store.AddProduct(p)
	}
	assert.Equal(t, []string{"Dairy", "Fruits", "Vegetables"}, store.Categories())
}

func TestInvoices_SiempreVacio(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})
	store.AddProduct(productoLeche())
	assert.NotNil(t, store.Invoices())
	assert.Empty(t, store.Invoices())
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificación a suscriptores
// ──────────────────────────────────────────────────────────────────────────────

// El suscriptor se invoca después de la recomputación: siempre observa un
// conjunto de alertas consistente con el listado.
func TestSubscribe_NotificaTrasRecomputar(t *testing.T) {
	store := newTestStore(nil, inventory.Options{})

	var calls int
	var alertsSeen int
	store.Subscribe(func() {
		calls++
		alertsSeen = len(store.Alerts())
	})

	low := productoLeche()
	low.Count = 1
	created := store.AddProduct(low)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, alertsSeen, "el observador ve las alertas ya recalculadas")

	count := 999
	require.NoError(t, store.UpdateProduct(created.ID, inventory.ProductUpdate{Count: &count}))
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, alertsSeen, "reponer stock despeja la alerta antes de notificar")
}
