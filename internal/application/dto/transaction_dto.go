package dto

import "time"

// RegisterTransactionRequest body para POST /api/transactions.
type RegisterTransactionRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason"`
}

// TransactionResponse representación HTTP de una transacción.
type TransactionResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Date      time.Time `json:"date"`
}

// TransactionListResponse respuesta de GET /api/transactions.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}
