package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs derivados del estado actual; se recalculan en cada consulta, sin caché.
type DashboardSummaryDTO struct {
	TotalProducts   int             `json:"total_products"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"` // Σ precio × stock
	LowStockCount   int             `json:"low_stock_count"`   // stock ≤ stock mínimo

	// Serie para el gráfico de barras: primeros N productos en orden de
	// inserción (no ordenados por magnitud).
	StockChart []StockChartPointDTO `json:"stock_chart"`

	// Partición seguro/crítico; Safe + Critical = TotalProducts siempre.
	Availability AvailabilitySplitDTO `json:"availability"`

	RecentTransactions int `json:"recent_transactions"` // últimas 10 como máximo
}

// StockChartPointDTO un punto de la serie del gráfico de stock.
type StockChartPointDTO struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// AvailabilitySplitDTO partición de productos por disponibilidad.
type AvailabilitySplitDTO struct {
	Safe     int `json:"safe"`     // stock > stock mínimo
	Critical int `json:"critical"` // stock ≤ stock mínimo
}
