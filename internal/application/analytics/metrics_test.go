package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stokpro-api/internal/application/analytics"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
)

// buildState catálogo de prueba: tres productos, uno en stock bajo (b2) y uno
// en cero (c3, también cuenta como stock bajo).
func buildState() *entity.State {
	return &entity.State{
		Products: []entity.Product{
			{ID: "a1", Name: "Monitor", Price: decimal.NewFromInt(100), Stock: 10, MinStock: 3},
			{ID: "b2", Name: "Teclado", Price: decimal.NewFromInt(20), Stock: 2, MinStock: 5},
			{ID: "c3", Name: "Mouse", Price: decimal.NewFromInt(15), Stock: 0, MinStock: 2},
		},
	}
}

func TestTotalStockValue(t *testing.T) {
	state := buildState()

	// 100×10 + 20×2 + 15×0 = 1040
	got := analytics.TotalStockValue(state)
	assert.True(t, got.Equal(decimal.NewFromInt(1040)), "esperaba 1040, obtuve %s", got)
}

func TestTotalStockValue_CatalogoVacio(t *testing.T) {
	got := analytics.TotalStockValue(&entity.State{})
	assert.True(t, got.IsZero())
}

func TestLowStockCount_IncluyeStockCero(t *testing.T) {
	state := buildState()

	// b2 (2 ≤ 5) y c3 (0 ≤ 2); el stock en cero no es un estado aparte.
	assert.Equal(t, 2, analytics.LowStockCount(state))
}

func TestStockChartSeries_OrdenDeInsercion(t *testing.T) {
	state := buildState()

	series := analytics.StockChartSeries(state, 2)
	require.Len(t, series, 2)
	assert.Equal(t, "Monitor", series[0].Name)
	assert.Equal(t, 10, series[0].Stock)
	assert.Equal(t, "Teclado", series[1].Name, "la serie respeta el orden de inserción, no la magnitud")
}

func TestStockChartSeries_MenosProductosQueN(t *testing.T) {
	state := buildState()

	series := analytics.StockChartSeries(state, 50)
	assert.Len(t, series, 3)
}

func TestAvailabilitySplit_SumaIgualAlTotal(t *testing.T) {
	state := buildState()

	split := analytics.AvailabilitySplit(state)
	assert.Equal(t, 1, split.Safe)
	assert.Equal(t, 2, split.Critical)
	assert.Equal(t, len(state.Products), split.Safe+split.Critical,
		"safe + critical siempre es igual al total de productos")
}

func TestLowStockProducts_Nombres(t *testing.T) {
	state := buildState()

	items := analytics.LowStockProducts(state)
	require.Len(t, items, 2)
	assert.Equal(t, "Teclado", items[0].Name)
	assert.Equal(t, "Mouse", items[1].Name)
}

// fakeReader StateReader de prueba para el caso de uso del dashboard.
type fakeReader struct{ state *entity.State }

func (r *fakeReader) Snapshot() *entity.State { return r.state.Clone() }

func TestDashboardSummary(t *testing.T) {
	state := buildState()
	for i := 0; i < 12; i++ {
		state.Transactions = append(state.Transactions, entity.Transaction{
			ID: "t", ProductID: "a1", Type: entity.TransactionTypeIN, Quantity: 1,
		})
	}

	uc := analytics.NewDashboardUseCase(&fakeReader{state: state})
	summary := uc.GetSummary()

	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 2, summary.LowStockCount)
	assert.True(t, summary.TotalStockValue.Equal(decimal.NewFromInt(1040)))
	assert.Len(t, summary.StockChart, 3)
	assert.Equal(t, 10, summary.RecentTransactions, "la ventana de recientes tiene tope en 10")
	assert.Equal(t, summary.TotalProducts, summary.Availability.Safe+summary.Availability.Critical)
}
