package alerting_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/emart-api/internal/domain/alerting"
	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// "now" fijo para todos los escenarios: 2024-01-01T00:00:00Z.
var testNow = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func productoBase() entity.Product {
	return entity.Product{
		ID:          "1",
		VendorCode:  "VND001",
		Description: "Fresh Milk 1L",
		Count:       120,
		Threshold:   20,
		ExpiryDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:      entity.StatusActive,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla low-stock: bordes de umbral y corte de severidad
// ──────────────────────────────────────────────────────────────────────────────

// count == threshold NO debe emitir alerta (comparación estricta).
func TestGenerate_LowStock_CountIgualUmbral_SinAlerta(t *testing.T) {
	p := productoBase()
	p.Count = 20
	p.Threshold = 20

	alerts := alerting.Generate([]entity.Product{p}, testNow, 0)
	assert.Empty(t, alerts, "count == threshold no debe generar low-stock")
}

// count == threshold-1 emite severidad medium (19 no está bajo la mitad de 20).
func TestGenerate_LowStock_JustoBajoUmbral_SeveridadMedium(t *testing.T) {
	p := productoBase()
	p.Count = 19
	p.Threshold = 20

	alerts := alerting.Generate([]entity.Product{p}, testNow, 0)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, "low-stock-1", a.ID, "el ID debe derivarse del tipo y el producto")
	assert.Equal(t, entity.AlertLowStock, a.Type)
	assert.Equal(t, "1", a.ProductID)
	assert.Equal(t, entity.SeverityMedium, a.Severity)
	assert.Equal(t, "Fresh Milk 1L is running low (19 remaining)", a.Message)
	assert.False(t, a.Acknowledged, "las alertas nacen sin reconocer")
}

// count < threshold*0.5 escala a high: threshold=20, count=9 (9 < 10).
func TestGenerate_LowStock_BajoMitadUmbral_SeveridadHigh(t *testing.T) {
	p := productoBase()
	p.Count = 9
	p.Threshold = 20

	alerts := alerting.Generate([]entity.Product{p}, testNow, 0)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.SeverityHigh, alerts[0].Severity)
}

// count == threshold*0.5 exacto sigue siendo medium (10 no es < 10).
func TestGenerate_LowStock_MitadExacta_SigueMedium(t *testing.T) {
	p := productoBase()
	p.Count = 10
	p.Threshold = 20

	alerts := alerting.Generate([]entity.Product{p}, testNow, 0)
	require.Len(t, alerts, 1)
	assert.Equal(t, entity.SeverityMedium, alerts[0].Severity)
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla expiry-warning: ventana de 3 días con bordes excluidos
// ──────────────────────────────────────────────────────────────────────────────

// Dentro de la ventana (2024-01-03 con now=2024-01-01) emite high.
func TestGenerate_Expiry_DentroVentana_SeveridadHigh(t *testing.T) {
	p := productoBase()
	p.ExpiryDate = time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	alerts := alerting.Generate([]entity.Product{p}, testNow, 0)
	require.Len(t, alerts, 1)

	a := alerts[0]
	assert.Equal(t, "expiry-1", a.ID)
	assert.Equal(t, entity.AlertExpiryWarning, a.Type)
	assert.Equal(t, entity.SeverityHigh, a.Severity, "expiry-warning siempre es high")
	assert.Equal(t, "Fresh Milk 1L expires on 2024-01-03", a.Message)
}

// Exactamente now+3d queda FUERA (comparación estricta en el borde superior).
func TestGenerate_Expiry_BordeSuperiorExacto_SinAlerta(t *testing.T) {
	p := productoBase()
	p.ExpiryDate = time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)

	alerts := alerting.Generate([]entity.Product{p}, testNow, 0)
	assert.Empty(t, alerts, "expiry == now+3d no debe generar alerta")
}

// Exactamente now queda FUERA (comparación estricta en el borde inferior).
func TestGenerate_Expiry_IgualANow_SinAlerta(t *testing.T) {
	p := productoBase()
	p.ExpiryDate = testNow

	alerts := alerting.Generate([]entity.Product{p}, testNow, 0)
	assert.Empty(t, alerts)
}

// Producto ya vencido (2023-12-31) no se marca retroactivamente.
func TestGenerate_Expiry_YaVencido_SinAlerta(t *testing.T) {
	p := productoBase()
	p.ExpiryDate = time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	alerts := alerting.Generate([]entity.Product{p}, testNow, 0)
	assert.Empty(t, alerts)
}

// La ventana es configurable: con 7 días, 2024-01-05 sí entra.
func TestGenerate_Expiry_VentanaConfigurable(t *testing.T) {
	p := productoBase()
	p.ExpiryDate = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, alerting.Generate([]entity.Product{p}, testNow, 3))
	assert.Len(t, alerting.Generate([]entity.Product{p}, testNow, 7), 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden, idempotencia y combinación de reglas
// ──────────────────────────────────────────────────────────────────────────────

// Un producto puede emitir ambas alertas, low-stock primero.
func TestGenerate_AmbasReglas_OrdenLowStockPrimero(t *testing.T) {
	p := productoBase()
	p.Count = 5
	p.Threshold = 20
	p.ExpiryDate = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	alerts := alerting.Generate([]entity.Product{p}, testNow, 0)
	require.Len(t, alerts, 2)
	assert.Equal(t, entity.AlertLowStock, alerts[0].Type)
	assert.Equal(t, entity.AlertExpiryWarning, alerts[1].Type)
}

// Las alertas siguen el orden de iteración del listado, sin orden global.
func TestGenerate_OrdenPorProducto(t *testing.T) {
	p1 := productoBase()
	p1.ID = "a"
	p1.Count = 1
	p2 := productoBase()
	p2.ID = "b"
	p2.Count = 1

	alerts := alerting.Generate([]entity.Product{p2, p1}, testNow, 0)
	require.Len(t, alerts, 2)
	assert.Equal(t, "low-stock-b", alerts[0].ID)
	assert.Equal(t, "low-stock-a", alerts[1].ID)
}

// Generar dos veces sobre el mismo listado produce el mismo conjunto
// (mismos IDs, mismo tamaño) — la recomputación es idempotente.
func TestGenerate_Idempotente(t *testing.T) {
	p := productoBase()
	p.Count = 3
	p.ExpiryDate = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	products := []entity.Product{p}

	first := alerting.Generate(products, testNow, 0)
	second := alerting.Generate(products, testNow, 0)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].Severity, second[i].Severity)
		assert.Equal(t, first[i].Message, second[i].Message)
	}
}

// Listado vacío produce conjunto vacío, no nil.
func TestGenerate_SinProductos(t *testing.T) {
	alerts := alerting.Generate(nil, testNow, 0)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
