package entity

import "time"

// Tipos de transacción de stock.
const (
	TransactionTypeIN  = "IN"  // entrada
	TransactionTypeOUT = "OUT" // salida
)

// Transaction representa un movimiento de stock inmutable: una vez creado
// nunca se edita, solo se elimina en cascada junto con su producto.
type Transaction struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Type      string    `json:"type"` // IN u OUT
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Date      time.Time `json:"date"`
}
