package ports

import (
	"context"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
)

// InsightNarrator puerto de salida hacia un LLM que redacta el resumen ejecutivo
// de los insights. La aplicación solo conoce este contrato; Anthropic y Gemini son
// adaptadores intercambiables.
type InsightNarrator interface {
	// Narrate recibe los insights ya calculados (dataset completo) y devuelve
	// un resumen breve en texto plano. El contexto debe llevar timeout.
	Narrate(ctx context.Context, insights *dto.InsightsDTO) (string, error)
	// Model identifica el modelo usado, para la respuesta HTTP.
	Model() string
}
