package repository

import "github.com/jhoicas/stokpro-api/internal/domain/entity"

// StateStore es el puerto de persistencia del estado completo del inventario.
// El estado se guarda y se carga siempre como un único registro; no hay
// persistencia parcial ni incremental.
type StateStore interface {
	// Load devuelve el estado persistido. Si no existe ningún registro,
	// siembra el catálogo inicial, lo persiste y lo devuelve.
	Load() (*entity.State, error)

	// Save reemplaza el registro persistido con el estado dado.
	Save(state *entity.State) error

	// Clear elimina el registro persistido; el próximo Load vuelve a sembrar.
	Clear() error
}
