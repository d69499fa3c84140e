// Package alerting contiene las reglas de derivación de alertas de inventario
// (servicio de dominio puro, sin estado).
package alerting

import (
	"fmt"
	"time"

	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// DefaultExpiryWindowDays ventana hacia adelante por defecto para expiry-warning.
const DefaultExpiryWindowDays = 3

// Generate deriva el conjunto completo de alertas a partir del listado de
// productos. Es una función pura: mismo listado y mismo instante producen el
// mismo conjunto (IDs deterministas por tipo y producto).
//
// Por cada producto se evalúan dos reglas independientes, en orden de
// iteración del listado y low-stock antes que expiry-warning:
//
//  1. Low-stock: Count < Threshold emite "low-stock-{id}"; severidad high si
//     Count < Threshold*0.5, si no medium.
//  2. Expiry: ExpiryDate estrictamente posterior a now Y estrictamente
//     anterior a now+window emite "expiry-{id}" con severidad high. Ambas
//     comparaciones son estrictas: los instantes de borde quedan fuera.
//
// No se aplica ningún orden global posterior. windowDays <= 0 usa el default.
func Generate(products []entity.Product, now time.Time, windowDays int) []entity.Alert {
	if windowDays <= 0 {
		windowDays = DefaultExpiryWindowDays
	}
	warning := now.AddDate(0, 0, windowDays)

	alerts := make([]entity.Alert, 0)
	for _, p := range products {
		if p.Count < p.Threshold {
			alerts = append(alerts, entity.Alert{
				ID:        entity.LowStockAlertID(p.ID),
				Type:      entity.AlertLowStock,
				ProductID: p.ID,
				Message:   fmt.Sprintf("%s is running low (%d remaining)", p.Description, p.Count),
				Severity:  lowStockSeverity(p.Count, p.Threshold),
				CreatedAt: now,
			})
		}

		if p.ExpiryDate.After(now) && p.ExpiryDate.Before(warning) {
			alerts = append(alerts, entity.Alert{
				ID:        entity.ExpiryAlertID(p.ID),
				Type:      entity.AlertExpiryWarning,
				ProductID: p.ID,
				Message:   fmt.Sprintf("%s expires on %s", p.Description, p.ExpiryDate.Format("2006-01-02")),
				Severity:  entity.SeverityHigh,
				CreatedAt: now,
			})
		}
	}
	return alerts
}

// lowStockSeverity aplica el corte de severidad: count < threshold*0.5 es high.
// Se compara 2*count < threshold para mantener la semántica exacta en enteros.
func lowStockSeverity(count, threshold int) string {
	if 2*count < threshold {
		return entity.SeverityHigh
	}
	return entity.SeverityMedium
}
