package badgerstore_test

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stokpro-api/internal/domain/entity"
	"github.com/jhoicas/stokpro-api/internal/infrastructure/badgerstore"
)

func TestMain(m *testing.M) {
	// Igual que en el arranque de la aplicación: montos como números JSON planos.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

func openTestStore(t *testing.T) *badgerstore.BadgerStateStore {
	t.Helper()
	store, err := badgerstore.Open(badgerstore.Config{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// testState estado con marcas de tiempo fijas para poder comparar en profundidad.
func testState() *entity.State {
	ts := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	return &entity.State{
		Products: []entity.Product{
			{
				ID:          "p1",
				SKU:         "EL-001",
				Name:        "Laptop Pro 14",
				CategoryID:  "1",
				Price:       decimal.NewFromInt(15000000),
				Stock:       5,
				MinStock:    2,
				Description: "Portátil de alto rendimiento",
				UpdatedAt:   ts,
			},
		},
		Categories: []entity.Category{{ID: "1", Name: "Electrónica"}},
		Transactions: []entity.Transaction{
			{ID: "t1", ProductID: "p1", Type: entity.TransactionTypeIN, Quantity: 3, Reason: "compra", Date: ts},
		},
	}
}

func TestLoad_SiembraElCatalogoInicial(t *testing.T) {
	store := openTestStore(t)

	state, err := store.Load()
	require.NoError(t, err)

	assert.Len(t, state.Categories, 4)
	assert.Len(t, state.Products, 2)
	assert.Empty(t, state.Transactions)
	assert.Equal(t, "p1", state.Products[0].ID)
	assert.Equal(t, "EL-001", state.Products[0].SKU)

	// La siembra quedó persistida: un segundo Load devuelve lo mismo.
	again, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Laptop Pro 14", again.Products[0].Name)
	assert.Len(t, again.Categories, 4)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := openTestStore(t)
	original := testState()

	require.NoError(t, store.Save(original))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, original, loaded, "save seguido de load devuelve un estado idéntico")
}

func TestSave_ReemplazaElRegistroCompleto(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(testState()))

	next := testState()
	next.Products = nil
	next.Transactions = nil
	require.NoError(t, store.Save(next))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Products, "no hay persistencia parcial: el registro se reemplaza entero")
	assert.Len(t, loaded.Categories, 1)
}

func TestClear_ElProximoLoadVuelveASembrar(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(testState()))
	require.NoError(t, store.Clear())

	state, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, state.Categories, 4, "tras Clear se vuelve al catálogo inicial")
	assert.Empty(t, state.Transactions)
}

// TestClose_LiberaElLockDelDirectorio cerrar el store suelta el lock de Badger
// sobre el directorio de datos: una segunda apertura sobre el mismo path debe
// funcionar y encontrar lo persistido.
func TestClose_LiberaElLockDelDirectorio(t *testing.T) {
	dir := t.TempDir()

	store, err := badgerstore.Open(badgerstore.Config{Path: dir})
	require.NoError(t, err)
	_, err = store.Load()
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := badgerstore.Open(badgerstore.Config{Path: dir})
	require.NoError(t, err, "el directorio no debe quedar bloqueado tras Close")
	defer reopened.Close()

	state, err := reopened.Load()
	require.NoError(t, err)
	assert.Len(t, state.Categories, 4)
}

// TestLayoutPersistido verifica el contrato del registro serializado: montos
// como números planos, timestamps ISO-8601 y el tipo como literal "IN"/"OUT".
func TestLayoutPersistido(t *testing.T) {
	raw, err := json.Marshal(testState())
	require.NoError(t, err)

	doc := string(raw)
	assert.Contains(t, doc, `"price":15000000`, "el precio se serializa como número plano, sin comillas")
	assert.Contains(t, doc, `"type":"IN"`)
	assert.Contains(t, doc, `"updatedAt":"2026-08-30T10:00:00Z"`)
}
