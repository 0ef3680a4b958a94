package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock solo se modifica aplicando transacciones (entrada/salida), nunca por
// edición directa; UpdatedAt se refresca en cada mutación del producto.
type Product struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"categoryId"` // vacío = sin categoría
	Price       decimal.Decimal `json:"price"`      // precio de venta
	Stock       int             `json:"stock"`
	MinStock    int             `json:"minStock"`
	Description string          `json:"description"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// IsLowStock indica si el producto está en o por debajo de su stock mínimo.
// Stock en cero también cuenta como stock bajo.
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// StockValue devuelve el valor del inventario de este producto (precio × stock).
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}
