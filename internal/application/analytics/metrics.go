// Package analytics calcula las métricas derivadas del inventario.
//
// Todas las funciones son puras: dependen únicamente del State recibido y se
// recalculan de forma determinista en cada consulta, sin caché que pueda
// divergir del estado actual.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stokpro-api/internal/application/dto"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
)

// StockChartSize número de productos en la serie del gráfico del dashboard.
const StockChartSize = 5

// TotalStockValue suma precio × stock sobre todos los productos.
func TotalStockValue(state *entity.State) decimal.Decimal {
	total := decimal.Zero
	for _, p := range state.Products {
		total = total.Add(p.StockValue())
	}
	return total
}

// LowStockCount cuenta los productos con stock en o por debajo de su mínimo.
// Stock cero también cuenta como stock bajo, no es un estado aparte.
func LowStockCount(state *entity.State) int {
	n := 0
	for _, p := range state.Products {
		if p.IsLowStock() {
			n++
		}
	}
	return n
}

// StockChartSeries devuelve los primeros n productos en orden de inserción
// con su stock, para el gráfico de barras. No se ordena por magnitud.
func StockChartSeries(state *entity.State, n int) []dto.StockChartPointDTO {
	if n > len(state.Products) {
		n = len(state.Products)
	}
	series := make([]dto.StockChartPointDTO, 0, n)
	for _, p := range state.Products[:n] {
		series = append(series, dto.StockChartPointDTO{Name: p.Name, Stock: p.Stock})
	}
	return series
}

// AvailabilitySplit particiona los productos en seguros (stock por encima del
// mínimo) y críticos (en o por debajo). Safe + Critical = len(Products).
func AvailabilitySplit(state *entity.State) dto.AvailabilitySplitDTO {
	split := dto.AvailabilitySplitDTO{}
	for _, p := range state.Products {
		if p.IsLowStock() {
			split.Critical++
		} else {
			split.Safe++
		}
	}
	return split
}

// LowStockProducts devuelve los productos en stock bajo, en orden de inserción.
// Lo usa el prompt de insights para nombrar los ítems críticos.
func LowStockProducts(state *entity.State) []entity.Product {
	var items []entity.Product
	for _, p := range state.Products {
		if p.IsLowStock() {
			items = append(items, p)
		}
	}
	return items
}
