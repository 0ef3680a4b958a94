package badgerstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stokpro-api/internal/domain/entity"
)

// DefaultState devuelve el catálogo de ejemplo con el que arranca una
// instalación nueva: cuatro categorías, dos productos, cero transacciones.
func DefaultState() *entity.State {
	now := time.Now()
	return &entity.State{
		Categories: []entity.Category{
			{ID: "1", Name: "Electrónica"},
			{ID: "2", Name: "Ropa"},
			{ID: "3", Name: "Alimentos"},
			{ID: "4", Name: "Artículos de Oficina"},
		},
		Products: []entity.Product{
			{
				ID:          "p1",
				SKU:         "EL-001",
				Name:        "Laptop Pro 14",
				CategoryID:  "1",
				Price:       decimal.NewFromInt(15000000),
				Stock:       5,
				MinStock:    2,
				Description: "Portátil de alto rendimiento para profesionales",
				UpdatedAt:   now,
			},
			{
				ID:          "p2",
				SKU:         "MK-002",
				Name:        "Café Arábica 250g",
				CategoryID:  "3",
				Price:       decimal.NewFromInt(75000),
				Stock:       50,
				MinStock:    10,
				Description: "Granos de café seleccionados, calidad de exportación",
				UpdatedAt:   now,
			},
		},
		Transactions: []entity.Transaction{},
	}
}
