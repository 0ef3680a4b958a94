package http

import (
	"github.com/jhoicas/stokpro-api/internal/application/dto"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
)

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		CategoryID:  p.CategoryID,
		Price:       p.Price,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Description: p.Description,
		LowStock:    p.IsLowStock(),
		UpdatedAt:   p.UpdatedAt,
	}
}

func toCategoryResponse(c entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name}
}

func toTransactionResponse(t entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:        t.ID,
		ProductID: t.ProductID,
		Type:      t.Type,
		Quantity:  t.Quantity,
		Reason:    t.Reason,
		Date:      t.Date,
	}
}

func toInsightDTO(i *entity.Insight, refreshing bool) dto.InsightDTO {
	out := dto.InsightDTO{Refreshing: refreshing}
	if i != nil {
		out.Status = i.Status
		out.Message = i.Message
		out.Suggestion = i.Suggestion
	}
	return out
}
