package segmentation

import (
	"fmt"

	"github.com/jhoicas/rfm-dashboard/internal/domain"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

// ParseSegments normaliza la selección del multiselect.
//
//   - explicit=false y sin valores (o solo vacíos): todos los segmentos (estado inicial del sidebar).
//   - explicit=true y sin valores: selección vacía (el usuario desmarcó todo).
//   - un nombre fuera del catálogo devuelve ErrUnknownSegment.
//
// El resultado sigue el orden del catálogo y no tiene duplicados.
func ParseSegments(values []string, explicit bool) ([]string, error) {
	if len(values) == 0 {
		if explicit {
			return []string{}, nil
		}
		return entity.SegmentNames(), nil
	}

	requested := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := entity.SegmentByName(v); !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSegment, v)
		}
		requested[v] = struct{}{}
	}
	if len(requested) == 0 && !explicit {
		return entity.SegmentNames(), nil
	}

	out := make([]string, 0, len(requested))
	for _, name := range entity.SegmentNames() {
		if _, ok := requested[name]; ok {
			out = append(out, name)
		}
	}
	return out, nil
}

// ResolveFocus valida el segmento del análisis detallado.
// Vacío equivale al primer segmento del catálogo.
func ResolveFocus(name string) (entity.Segment, error) {
	if name == "" {
		return entity.Segments()[0], nil
	}
	seg, ok := entity.SegmentByName(name)
	if !ok {
		return entity.Segment{}, fmt.Errorf("%w: %q", domain.ErrUnknownSegment, name)
	}
	return seg, nil
}
