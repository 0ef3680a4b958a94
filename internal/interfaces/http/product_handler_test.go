package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stokpro-api/internal/application/analytics"
	"github.com/jhoicas/stokpro-api/internal/application/dto"
	"github.com/jhoicas/stokpro-api/internal/application/inventory"
	"github.com/jhoicas/stokpro-api/internal/application/usecase"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
	apphttp "github.com/jhoicas/stokpro-api/internal/interfaces/http"
	"github.com/jhoicas/stokpro-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct{ state *entity.State }

func (s *memStore) Load() (*entity.State, error) { return s.state.Clone(), nil }
func (s *memStore) Save(st *entity.State) error  { s.state = st.Clone(); return nil }
func (s *memStore) Clear() error                 { s.state = seedState(); return nil }

func seedState() *entity.State {
	return &entity.State{
		Products: []entity.Product{
			{ID: "p1", SKU: "EL-001", Name: "Laptop Pro 14", CategoryID: "c1",
				Price: decimal.NewFromInt(1500), Stock: 5, MinStock: 2},
		},
		Categories:   []entity.Category{{ID: "c1", Name: "Electrónica"}},
		Transactions: []entity.Transaction{},
	}
}

type stubInsightService struct{}

func (stubInsightService) GenerateInsight(context.Context, []entity.Product, []entity.Transaction) (*entity.Insight, error) {
	return &entity.Insight{Status: entity.InsightStatusGood, Message: "ok", Suggestion: "ok"}, nil
}

type stubReport struct{}

func (stubReport) GenerateInventoryReport(context.Context, *entity.State) ([]byte, error) {
	return []byte("%PDF-1.7"), nil
}

// buildTestApp arma la aplicación Fiber completa con el estado de siembra y
// dobles para el LLM y el generador de PDF.
func buildTestApp(t *testing.T) (*fiber.App, *inventory.Manager) {
	t.Helper()
	manager, err := inventory.NewManager(&memStore{state: seedState()}, logger.Nop())
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Manager:     manager,
		DashboardUC: analytics.NewDashboardUseCase(manager),
		InsightUC:   usecase.NewInsightUseCase(stubInsightService{}, manager, logger.Nop()),
		Report:      stubReport{},
	})
	return app, manager
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_CrearYListar(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/products", dto.CreateProductRequest{
		SKU: "MK-002", Name: "Café Arábica 250g", Stock: 50, MinStock: 10,
		Price: decimal.NewFromInt(75),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.ProductResponse](t, resp)
	assert.NotEmpty(t, created.ID)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.ProductListResponse](t, resp)
	assert.Equal(t, 2, list.Total)
}

func TestProductos_ValidacionEnLaFrontera(t *testing.T) {
	app, _ := buildTestApp(t)

	// Sin SKU ni nombre: rechazado por el validador antes de tocar el estado.
	resp := doJSON(t, app, fiber.MethodPost, "/api/products", map[string]any{"price": 10})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
}

func TestProductos_ActualizarNoTocaElStock(t *testing.T) {
	app, manager := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodPut, "/api/products/p1", map[string]any{
		"name": "Laptop Pro 16",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Laptop Pro 16", updated.Name)
	assert.Equal(t, 5, updated.Stock)
	assert.Equal(t, 5, manager.Snapshot().Products[0].Stock)
}

func TestProductos_EliminarBorraSusTransacciones(t *testing.T) {
	app, manager := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/transactions", dto.RegisterTransactionRequest{
		ProductID: "p1", Type: entity.TransactionTypeIN, Quantity: 2,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/products/p1", nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	state := manager.Snapshot()
	assert.Empty(t, state.Products)
	assert.Empty(t, state.Transactions)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestTransacciones_SalidaConStockInsuficiente(t *testing.T) {
	app, manager := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/transactions", dto.RegisterTransactionRequest{
		ProductID: "p1", Type: entity.TransactionTypeOUT, Quantity: 10,
	})
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)

	state := manager.Snapshot()
	assert.Equal(t, 5, state.Products[0].Stock, "la salida rechazada no cambia el stock")
	assert.Empty(t, state.Transactions)
}

func TestDashboard_Resumen(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/dashboard/summary", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 1, summary.TotalProducts)
	assert.Equal(t, summary.TotalProducts, summary.Availability.Safe+summary.Availability.Critical)
}

// ──────────────────────────────────────────────────────────────────────────────
// Insights y estado completo
// ──────────────────────────────────────────────────────────────────────────────

func TestInsights_RefreshYConsulta(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/insights/refresh", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	insight := decode[dto.InsightDTO](t, resp)
	assert.Equal(t, entity.InsightStatusGood, insight.Status)

	resp = doJSON(t, app, fiber.MethodGet, "/api/insights", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	current := decode[dto.InsightDTO](t, resp)
	assert.Equal(t, insight.Status, current.Status)
	assert.False(t, current.Refreshing)
}

func TestState_ExportDescargable(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/state/export", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "stokpro_backup.json")

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"products"`)
}

func TestState_ReportePDF(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/state/report.pdf", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
}
