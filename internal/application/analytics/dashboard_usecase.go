package analytics

import (
	"github.com/jhoicas/stokpro-api/internal/application/dto"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
)

// recentTransactionWindow tamaño de la ventana de transacciones recientes.
const recentTransactionWindow = 10

// StateReader expone una vista de solo lectura del estado del inventario.
type StateReader interface {
	Snapshot() *entity.State
}

// DashboardUseCase arma el resumen del dashboard a partir del estado actual.
type DashboardUseCase struct {
	reader StateReader
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reader StateReader) *DashboardUseCase {
	return &DashboardUseCase{reader: reader}
}

// GetSummary construye el DashboardSummaryDTO con todas las métricas derivadas.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	state := uc.reader.Snapshot()

	recent := len(state.Transactions)
	if recent > recentTransactionWindow {
		recent = recentTransactionWindow
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:      len(state.Products),
		TotalStockValue:    TotalStockValue(state).Round(2),
		LowStockCount:      LowStockCount(state),
		StockChart:         StockChartSeries(state, StockChartSize),
		Availability:       AvailabilitySplit(state),
		RecentTransactions: recent,
	}
}
