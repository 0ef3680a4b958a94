package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/stokpro-api/internal/application/analytics"
	"github.com/jhoicas/stokpro-api/internal/application/ports"
	"github.com/jhoicas/stokpro-api/internal/domain/entity"
	"github.com/jhoicas/stokpro-api/pkg/logger"
)

// insightTimeout tiempo máximo por llamada al LLM. Las llamadas a modelos
// generativos pueden demorar varios segundos.
const insightTimeout = 15 * time.Second

// InsightUseCase administra el único slot de insight vigente.
//
// Cada Refresh es una tarea cancelable: una solicitud nueva cancela la que
// esté en vuelo y solo el resultado de la solicitud más reciente (o su
// fallback) se escribe en el slot. Un fallo del gateway jamás se propaga como
// error: se convierte en el insight de respaldo fijo.
type InsightUseCase struct {
	llm    ports.InsightService
	reader analytics.StateReader
	log    *logger.Logger

	mu         sync.Mutex
	current    *entity.Insight
	refreshing bool
	seq        uint64             // número de la solicitud más reciente
	cancel     context.CancelFunc // cancela la solicitud en vuelo
}

// NewInsightUseCase construye el caso de uso.
func NewInsightUseCase(llm ports.InsightService, reader analytics.StateReader, log *logger.Logger) *InsightUseCase {
	return &InsightUseCase{llm: llm, reader: reader, log: log}
}

// Current devuelve el insight vigente (nil si nunca se generó uno) y si hay
// una generación en curso.
func (uc *InsightUseCase) Current() (*entity.Insight, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current, uc.refreshing
}

// Refresh genera un insight a partir del estado actual y bloquea hasta tener
// el resultado de esta solicitud. Si mientras tanto llega una solicitud más
// nueva, esta queda cancelada y su resultado no pisa el slot.
func (uc *InsightUseCase) Refresh(ctx context.Context) *entity.Insight {
	state := uc.reader.Snapshot()

	uc.mu.Lock()
	if uc.cancel != nil {
		uc.cancel() // la solicitud nueva reemplaza a la que esté en vuelo
	}
	uc.seq++
	mySeq := uc.seq
	callCtx, cancel := context.WithTimeout(ctx, insightTimeout)
	uc.cancel = cancel
	uc.refreshing = true
	uc.mu.Unlock()

	insight, err := uc.llm.GenerateInsight(callCtx, state.Products, state.Transactions)
	cancel()
	if err != nil || insight == nil {
		if err != nil {
			uc.log.Warn().Err(err).Msg("generación de insight falló, usando respaldo")
		}
		insight = entity.FallbackInsight()
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if mySeq == uc.seq {
		// Solo la solicitud más reciente escribe el slot.
		uc.current = insight
		uc.refreshing = false
		uc.cancel = nil
	}
	return insight
}
