// Package inventory contiene el contenedor de estado del inventario y todas
// sus operaciones de mutación.
//
// El Manager es dueño del State autoritativo: cada operación valida primero,
// construye el siguiente estado completo y lo intercambia de forma atómica
// bajo el mutex. Nunca es observable un estado intermedio (por ejemplo, una
// transacción registrada sin su ajuste de stock). Tras cada mutación exitosa
// el estado se persiste entero vía StateStore y se notifica a los
// suscriptores.
package inventory

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stokpro-api/internal/application/dto"
	"github.com/jhoicas/stokpro-api/internal/domain"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
	"github.com/jhoicas/stokpro-api/internal/domain/repository"
	"github.com/jhoicas/stokpro-api/pkg/logger"
)

// Subscriber recibe una copia del estado después de cada mutación exitosa.
type Subscriber func(state *entity.State)

// Manager contenedor explícito del estado del inventario.
type Manager struct {
	mu    sync.Mutex
	state *entity.State
	store repository.StateStore
	log   *logger.Logger
	subs  []Subscriber
}

// NewManager carga (o siembra) el estado desde el store y construye el Manager.
func NewManager(store repository.StateStore, log *logger.Logger) (*Manager, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("inventory: cargar estado: %w", err)
	}
	return &Manager{state: state, store: store, log: log}, nil
}

// Subscribe registra un suscriptor de cambios de estado. No es seguro llamar
// después de iniciar a servir peticiones; registrar todo en el arranque.
func (m *Manager) Subscribe(fn Subscriber) {
	m.subs = append(m.subs, fn)
}

// Snapshot devuelve una copia profunda del estado actual para lectura.
func (m *Manager) Snapshot() *entity.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// ── Productos ─────────────────────────────────────────────────────────────────

// CreateProduct valida la entrada, genera ID y marca de tiempo y agrega el
// producto al catálogo. SKU duplicado está permitido (comportamiento heredado);
// precio, stock y stock mínimo negativos se rechazan.
func (m *Manager) CreateProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: sku y name son requeridos", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return nil, fmt.Errorf("%w: stock y min_stock no pueden ser negativos", domain.ErrInvalidInput)
	}

	product := entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		Description: in.Description,
		UpdatedAt:   time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.state.Clone()
	next.Products = append(next.Products, product)
	m.commit(next)
	return &product, nil
}

// UpdateProduct reemplaza los campos descriptivos del producto y refresca
// UpdatedAt. El stock existente siempre se conserva, aunque el caller envíe
// otro valor: el stock solo cambia aplicando transacciones.
func (m *Manager) UpdateProduct(id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.MinStock != nil && *in.MinStock < 0 {
		return nil, fmt.Errorf("%w: min_stock no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.SKU != nil && *in.SKU == "" {
		return nil, fmt.Errorf("%w: sku no puede quedar vacío", domain.ErrInvalidInput)
	}
	if in.Name != nil && *in.Name == "" {
		return nil, fmt.Errorf("%w: name no puede quedar vacío", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.state.FindProduct(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}

	next := m.state.Clone()
	p := &next.Products[idx]
	if in.SKU != nil {
		p.SKU = *in.SKU
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.MinStock != nil {
		p.MinStock = *in.MinStock
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	p.UpdatedAt = time.Now()

	m.commit(next)
	out := *p
	return &out, nil
}

// DeleteProduct elimina el producto y, en la misma transición de estado, todas
// las transacciones que lo referencian. Si el ID no existe es un no-op.
func (m *Manager) DeleteProduct(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.FindProduct(id) < 0 {
		return
	}

	next := m.state.Clone()
	products := next.Products[:0]
	for _, p := range next.Products {
		if p.ID != id {
			products = append(products, p)
		}
	}
	next.Products = products

	transactions := next.Transactions[:0]
	for _, t := range next.Transactions {
		if t.ProductID != id {
			transactions = append(transactions, t)
		}
	}
	next.Transactions = transactions

	m.commit(next)
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategory valida el nombre, genera ID y agrega la categoría.
func (m *Manager) CreateCategory(name string) (*entity.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}

	category := entity.Category{ID: uuid.New().String(), Name: name}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.state.Clone()
	next.Categories = append(next.Categories, category)
	m.commit(next)
	return &category, nil
}

// DeleteCategory elimina la categoría y, en la misma transición, limpia el
// CategoryID de todos los productos que la referencian (quedan sin categoría).
// Si el ID no existe es un no-op.
func (m *Manager) DeleteCategory(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.FindCategory(id) < 0 {
		return
	}

	next := m.state.Clone()
	categories := next.Categories[:0]
	for _, c := range next.Categories {
		if c.ID != id {
			categories = append(categories, c)
		}
	}
	next.Categories = categories

	for i := range next.Products {
		if next.Products[i].CategoryID == id {
			next.Products[i].CategoryID = ""
			next.Products[i].UpdatedAt = time.Now()
		}
	}

	m.commit(next)
}

// ── Transacciones ─────────────────────────────────────────────────────────────

// ApplyTransaction registra un movimiento de stock. La transacción agregada y
// el ajuste de stock del producto son una única transición atómica: si la
// validación falla (cantidad no positiva, producto inexistente, stock
// insuficiente en una salida) el estado queda exactamente igual y no se
// registra nada.
func (m *Manager) ApplyTransaction(in dto.RegisterTransactionRequest) (*entity.Transaction, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity debe ser un entero positivo", domain.ErrInvalidInput)
	}
	if in.Type != entity.TransactionTypeIN && in.Type != entity.TransactionTypeOUT {
		return nil, fmt.Errorf("%w: type debe ser IN u OUT", domain.ErrInvalidInput)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.state.FindProduct(in.ProductID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	if in.Type == entity.TransactionTypeOUT && in.Quantity > m.state.Products[idx].Stock {
		return nil, fmt.Errorf("%w: stock disponible %d, salida solicitada %d",
			domain.ErrInsufficientStock, m.state.Products[idx].Stock, in.Quantity)
	}

	tx := entity.Transaction{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Date:      time.Now(),
	}

	next := m.state.Clone()
	p := &next.Products[idx]
	if in.Type == entity.TransactionTypeIN {
		p.Stock += in.Quantity
	} else {
		p.Stock -= in.Quantity
	}
	p.UpdatedAt = tx.Date
	next.Transactions = append(next.Transactions, tx)

	m.commit(next)
	return &tx, nil
}

// ── Exportación y reinicio ────────────────────────────────────────────────────

// Export serializa el estado completo tal cual, como documento JSON
// descargable. Exportación de un solo sentido: este sistema no lo reimporta.
func (m *Manager) Export() ([]byte, error) {
	snapshot := m.Snapshot()
	doc, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("inventory: exportar estado: %w", err)
	}
	return doc, nil
}

// Reset borra el registro persistido y vuelve a sembrar el catálogo inicial.
func (m *Manager) Reset() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("inventory: limpiar store: %w", err)
	}
	state, err := m.store.Load()
	if err != nil {
		return fmt.Errorf("inventory: resembrar estado: %w", err)
	}
	m.state = state
	m.notify()
	return nil
}

// ── Internos ──────────────────────────────────────────────────────────────────

// commit intercambia el estado autoritativo, lo persiste y notifica.
// La persistencia es fire-and-forget respecto al caller: un fallo de Save se
// registra en el log pero la mutación en memoria ya es definitiva.
// Debe llamarse con el mutex tomado.
func (m *Manager) commit(next *entity.State) {
	m.state = next
	if err := m.store.Save(next); err != nil {
		m.log.Error().Err(err).Msg("persistir estado del inventario")
	}
	m.notify()
}

// notify entrega una copia del estado a cada suscriptor.
func (m *Manager) notify() {
	for _, fn := range m.subs {
		fn(m.state.Clone())
	}
}
