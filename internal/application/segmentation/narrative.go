package segmentation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/application/ports"
	"github.com/jhoicas/rfm-dashboard/internal/domain"
)

const narrativeTimeout = 10 * time.Second

// NarrativeUseCase resumen ejecutivo de los insights redactado por un LLM.
type NarrativeUseCase struct {
	insights *InsightsUseCase
	narrator ports.InsightNarrator
	now      func() time.Time
}

// NewNarrativeUseCase construye el caso de uso. narrator nil deshabilita la función.
func NewNarrativeUseCase(insights *InsightsUseCase, narrator ports.InsightNarrator) *NarrativeUseCase {
	return &NarrativeUseCase{insights: insights, narrator: narrator, now: time.Now}
}

// Enabled indica si hay un narrador configurado.
func (uc *NarrativeUseCase) Enabled() bool { return uc.narrator != nil }

// Narrate calcula los insights y los envía al narrador con timeout de 10 s.
func (uc *NarrativeUseCase) Narrate(ctx context.Context) (*dto.NarrativeDTO, error) {
	if uc.narrator == nil {
		return nil, domain.ErrNarratorDisabled
	}
	insights, err := uc.insights.Insights(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()

	summary, err := uc.narrator.Narrate(ctx, insights)
	if err != nil {
		return nil, fmt.Errorf("narrativa IA: %w", err)
	}
	return &dto.NarrativeDTO{
		Summary:     strings.TrimSpace(summary),
		Model:       uc.narrator.Model(),
		GeneratedAt: uc.now().UTC(),
	}, nil
}
