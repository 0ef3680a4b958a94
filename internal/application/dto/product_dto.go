package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// El stock inicial solo puede fijarse aquí; después se modifica únicamente
// vía transacciones.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	CategoryID  string          `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"min=0"`
	MinStock    int             `json:"min_stock" validate:"min=0"`
	Description string          `json:"description"`
}

// UpdateProductRequest body para PUT /api/products/:id. No incluye Stock:
// el stock existente siempre se conserva en una actualización.
type UpdateProductRequest struct {
	SKU         *string          `json:"sku,omitempty"`
	Name        *string          `json:"name,omitempty"`
	CategoryID  *string          `json:"category_id,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	MinStock    *int             `json:"min_stock,omitempty" validate:"omitempty,min=0"`
	Description *string          `json:"description,omitempty"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	MinStock    int             `json:"min_stock"`
	Description string          `json:"description"`
	LowStock    bool            `json:"low_stock"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse respuesta de GET /api/products.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
