// Package ai contiene los adaptadores hacia servicios de generación de texto.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/jhoicas/stokpro-api/internal/application/analytics"
	"github.com/jhoicas/stokpro-api/internal/application/ports"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa InsightService.
var _ ports.InsightService = (*GeminiService)(nil)

// recentWindow transacciones consideradas "recientes" en el prompt.
const recentWindow = 10

// GeminiService adaptador que implementa InsightService sobre la API de
// Google Gemini usando el SDK oficial. El esquema de respuesta JSON obliga al
// modelo a devolver exactamente la forma de Insight; cualquier desviación se
// devuelve como error y el caso de uso la convierte en el insight de respaldo.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.5-flash".
// Con apiKey vacío el cliente se construye igual y las llamadas fallan con un
// error descriptivo, que aguas arriba se convierte en el fallback.
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: crear cliente Gemini: %w", err)
	}
	return &GeminiService{client: client, model: model}, nil
}

// insightSchema fuerza la forma {status, message, suggestion} en la respuesta.
var insightSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"status": {
			Type:        genai.TypeString,
			Description: "critical, warning o good",
		},
		"message":    {Type: genai.TypeString},
		"suggestion": {Type: genai.TypeString},
	},
	Required: []string{"status", "message", "suggestion"},
}

// GenerateInsight arma el prompt con los agregados del inventario y hace una
// única llamada al modelo, sin reintentos.
func (s *GeminiService) GenerateInsight(
	ctx context.Context,
	products []entity.Product,
	transactions []entity.Transaction,
) (*entity.Insight, error) {
	prompt := buildPrompt(products, transactions)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   insightSchema,
			Temperature:      genai.Ptr[float32](0.2),
			MaxOutputTokens:  512,
		})
	if err != nil {
		return nil, fmt.Errorf("ai: llamada a Gemini: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("ai: respuesta vacía del modelo")
	}

	var insight entity.Insight
	if err := json.Unmarshal([]byte(raw), &insight); err != nil {
		return nil, fmt.Errorf("ai: respuesta no es JSON válido: %w", err)
	}
	if insight.Status != entity.InsightStatusCritical &&
		insight.Status != entity.InsightStatusWarning &&
		insight.Status != entity.InsightStatusGood {
		return nil, fmt.Errorf("ai: status desconocido %q", insight.Status)
	}
	if insight.Message == "" || insight.Suggestion == "" {
		return nil, fmt.Errorf("ai: respuesta incompleta del modelo")
	}
	return &insight, nil
}

// buildPrompt embebe los agregados del inventario: total de productos, ítems
// en stock bajo con sus nombres, valor total del activo y transacciones
// recientes.
func buildPrompt(products []entity.Product, transactions []entity.Transaction) string {
	state := &entity.State{Products: products, Transactions: transactions}

	lowStock := analytics.LowStockProducts(state)
	names := make([]string, 0, len(lowStock))
	for _, p := range lowStock {
		names = append(names, p.Name)
	}

	recent := len(transactions)
	if recent > recentWindow {
		recent = recentWindow
	}

	return fmt.Sprintf(`Analiza los siguientes datos de inventario y entrega un único insight breve.
Datos:
- Total de productos: %d
- Ítems con stock bajo: %d (%s)
- Valor total del activo: %s
- Transacciones recientes: %d

Responde únicamente el objeto JSON pedido por el esquema, con status "critical", "warning" o "good", message y suggestion en español.`,
		len(products),
		len(lowStock),
		strings.Join(names, ", "),
		analytics.TotalStockValue(state).StringFixed(2),
		recent,
	)
}
