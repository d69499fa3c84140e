// Package inventory implementa el store de inventario: fuente única de verdad
// para los productos y sus alertas derivadas.
package inventory

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/emart-api/internal/domain"
	"github.com/jhoicas/emart-api/internal/domain/alerting"
	"github.com/jhoicas/emart-api/internal/domain/entity"
)

// Options opciones de construcción del store.
type Options struct {
	// ExpiryWindowDays ventana hacia adelante para expiry-warning (3 por defecto).
	ExpiryWindowDays int
	// KeepAcknowledged conserva el flag Acknowledged por ID de alerta al
	// regenerar el conjunto. Por defecto false: el reconocimiento es efímero
	// y se pierde en la siguiente mutación de productos (comportamiento
	// histórico del dashboard).
	KeepAcknowledged bool
	// Now reloj inyectable; time.Now si es nil.
	Now func() time.Time
}

// Store mantiene el listado mutable de productos y la lista derivada de
// alertas. Cada mutación recalcula el conjunto completo de alertas de forma
// síncrona antes de notificar a los suscriptores: nunca se observa una lista
// parcial. Seguro para uso concurrente desde los handlers HTTP.
type Store struct {
	mu       sync.RWMutex
	products []entity.Product
	alerts   []entity.Alert
	invoices []entity.Invoice
	uploads  []entity.FileUpload
	opts     Options
	subs     []func()
}

// NewStore construye el store con el listado semilla y recalcula las alertas
// iniciales.
func NewStore(seed []entity.Product, opts Options) *Store {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Store{
		products: append([]entity.Product(nil), seed...),
		invoices: []entity.Invoice{},
		uploads:  []entity.FileUpload{},
		opts:     opts,
	}
	s.alerts = alerting.Generate(s.products, opts.Now(), opts.ExpiryWindowDays)
	return s
}

// Subscribe registra un observador que se invoca (de forma síncrona, fuera del
// lock) después de cada mutación completada.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// ProductUpdate actualización parcial tipada de un producto. Solo los campos
// no nil se aplican (Approved/ApprovedBy tienen su propia operación).
type ProductUpdate struct {
	VendorCode     *string
	Category       *string
	Description    *string
	Count          *int
	Cost           *decimal.Decimal
	Currency       *string
	ExpiryDate     *time.Time
	WarehouseStock *int
	ShelfStock     *int
	Threshold      *int
	Barcode        *string
	Status         *string
}

// AddProduct asigna ID (timestamp de alta resolución) y CreatedAt/UpdatedAt
// iguales, agrega el producto al final del listado y recalcula alertas.
// No valida campos numéricos: stock negativo o umbral cero son responsabilidad
// del caller.
func (s *Store) AddProduct(p entity.Product) entity.Product {
	s.mu.Lock()
	now := s.opts.Now()
	p.ID = strconv.FormatInt(now.UnixNano(), 10)
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products = append(s.products, p)
	s.recompute(now)
	s.mu.Unlock()

	s.notify()
	return p
}

// UpdateProduct aplica los campos presentes de la actualización, estampa
// UpdatedAt y recalcula alertas. Devuelve domain.ErrProductNotFound si el ID
// no existe (el caller que quiera el viejo no-op silencioso puede ignorarlo).
func (s *Store) UpdateProduct(id string, upd ProductUpdate) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrProductNotFound
	}
	p := &s.products[idx]
	if upd.VendorCode != nil {
		p.VendorCode = *upd.VendorCode
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Count != nil {
		p.Count = *upd.Count
	}
	if upd.Cost != nil {
		p.Cost = *upd.Cost
	}
	if upd.Currency != nil {
		p.Currency = *upd.Currency
	}
	if upd.ExpiryDate != nil {
		p.ExpiryDate = *upd.ExpiryDate
	}
	if upd.WarehouseStock != nil {
		p.WarehouseStock = *upd.WarehouseStock
	}
	if upd.ShelfStock != nil {
		p.ShelfStock = *upd.ShelfStock
	}
	if upd.Threshold != nil {
		p.Threshold = *upd.Threshold
	}
	if upd.Barcode != nil {
		p.Barcode = *upd.Barcode
	}
	if upd.Status != nil {
		p.Status = *upd.Status
	}
	now := s.opts.Now()
	p.UpdatedAt = now
	s.recompute(now)
	s.mu.Unlock()

	s.notify()
	return nil
}

// ApproveProduct marca el producto como aprobado por approvedBy (atajo del
// flujo maker/checker) y estampa UpdatedAt.
func (s *Store) ApproveProduct(id, approvedBy string) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrProductNotFound
	}
	now := s.opts.Now()
	s.products[idx].Approved = true
	s.products[idx].ApprovedBy = approvedBy
	s.products[idx].UpdatedAt = now
	s.recompute(now)
	s.mu.Unlock()

	s.notify()
	return nil
}

// MoveStock resta fromWarehouse de WarehouseStock y suma toShelf a ShelfStock.
// Los dos deltas son independientes y no se valida que el resultado quede
// no-negativo ni que fromWarehouse == toShelf (holgura deliberada del diseño
// original).
func (s *Store) MoveStock(id string, fromWarehouse, toShelf int) error {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.ErrProductNotFound
	}
	now := s.opts.Now()
	s.products[idx].WarehouseStock -= fromWarehouse
	s.products[idx].ShelfStock += toShelf
	s.products[idx].UpdatedAt = now
	s.recompute(now)
	s.mu.Unlock()

	s.notify()
	return nil
}

// AcknowledgeAlert marca como reconocida la alerta del ID dado en la
// generación actual. Salvo con Options.KeepAcknowledged, el flag se pierde en
// la siguiente regeneración disparada por cualquier mutación de productos.
func (s *Store) AcknowledgeAlert(alertID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.alerts {
		if s.alerts[i].ID == alertID {
			s.alerts[i].Acknowledged = true
			return nil
		}
	}
	return domain.ErrAlertNotFound
}

// Filter criterios de lectura del listado de productos.
type Filter struct {
	Search   string // substring sin distinción de mayúsculas sobre Description y VendorCode
	Category string // coincidencia exacta
}

// Products devuelve los productos que cumplen el filtro, en orden de inserción.
func (s *Store) Products(f Filter) []entity.Product {
	fold := cases.Fold()
	search := fold.String(f.Search)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if search != "" &&
			!strings.Contains(fold.String(p.Description), search) &&
			!strings.Contains(fold.String(p.VendorCode), search) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Product devuelve una copia del producto o nil si no existe.
func (s *Store) Product(id string) *entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := s.indexOf(id); idx >= 0 {
		p := s.products[idx]
		return &p
	}
	return nil
}

// Categories devuelve las categorías distintas en orden de primera aparición.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool, len(s.products))
	out := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Alerts devuelve una copia de la generación actual de alertas.
func (s *Store) Alerts() []entity.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Alert(nil), s.alerts...)
}

// Invoices devuelve la colección de facturas (siempre vacía: la generación de
// facturas está fuera del alcance).
func (s *Store) Invoices() []entity.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Invoice(nil), s.invoices...)
}

// Uploads devuelve la colección de cargas masivas (siempre vacía: el parseo
// de archivos está fuera del alcance).
func (s *Store) Uploads() []entity.FileUpload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.FileUpload(nil), s.uploads...)
}

// recompute reemplaza la lista completa de alertas a partir del listado
// actual. Debe llamarse con el lock de escritura tomado.
func (s *Store) recompute(now time.Time) {
	next := alerting.Generate(s.products, now, s.opts.ExpiryWindowDays)
	if s.opts.KeepAcknowledged {
		acked := make(map[string]bool, len(s.alerts))
		for _, a := range s.alerts {
			if a.Acknowledged {
				acked[a.ID] = true
			}
		}
		for i := range next {
			if acked[next[i].ID] {
				next[i].Acknowledged = true
			}
		}
	}
	s.alerts = next
}

// notify invoca los suscriptores fuera del lock (pueden leer el store).
func (s *Store) notify() {
	s.mu.RLock()
	subs := append(([]func())(nil), s.subs...)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}

// indexOf busca un producto por ID. Debe llamarse con algún lock tomado.
func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
