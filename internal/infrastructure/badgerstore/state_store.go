// Package badgerstore implementa el StateStore sobre BadgerDB embebido.
//
// El estado completo del inventario vive como un único registro JSON bajo una
// clave fija. No hay persistencia parcial: cada Save reemplaza el registro
// entero y cada Load lo devuelve entero. Si la clave no existe, Load siembra
// el catálogo inicial y lo persiste antes de devolverlo.
package badgerstore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/jhoicas/stokpro-api/internal/domain/entity"
	"github.com/jhoicas/stokpro-api/internal/domain/repository"
)

// storageKey clave fija del registro de estado.
const storageKey = "stokpro_db_v1"

// Verificar en tiempo de compilación que implementa el puerto.
var _ repository.StateStore = (*BadgerStateStore)(nil)

// Config opciones del store.
type Config struct {
	Path     string // directorio de datos; ignorado si InMemory es true
	InMemory bool   // modo en memoria, para tests
}

// BadgerStateStore persiste el State como un registro JSON en BadgerDB.
type BadgerStateStore struct {
	db *badger.DB
}

// Open abre (o crea) la base de datos local.
func Open(cfg Config) (*BadgerStateStore, error) {
	opts := badger.DefaultOptions(cfg.Path).
		WithInMemory(cfg.InMemory).
		WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerstore: abrir base de datos: %w", err)
	}
	return &BadgerStateStore{db: db}, nil
}

// Close cierra la base de datos.
func (s *BadgerStateStore) Close() error {
	return s.db.Close()
}

// Load devuelve el estado persistido, sembrando el catálogo inicial si la
// clave no existe todavía.
func (s *BadgerStateStore) Load() (*entity.State, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(storageKey))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		seed := DefaultState()
		if err := s.Save(seed); err != nil {
			return nil, fmt.Errorf("badgerstore: persistir estado inicial: %w", err)
		}
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("badgerstore: leer estado: %w", err)
	}

	state := &entity.State{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("badgerstore: deserializar estado: %w", err)
	}
	return state, nil
}

// Save reemplaza el registro persistido con el estado dado.
func (s *BadgerStateStore) Save(state *entity.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("badgerstore: serializar estado: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(storageKey), raw)
	})
	if err != nil {
		return fmt.Errorf("badgerstore: escribir estado: %w", err)
	}
	return nil
}

// Clear elimina el registro; el próximo Load vuelve a sembrar.
func (s *BadgerStateStore) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(storageKey))
	})
	if err != nil {
		return fmt.Errorf("badgerstore: borrar estado: %w", err)
	}
	return nil
}
