package segmentation

import (
	"context"
	"sort"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/domain/stats"
)

// Parámetros de los histogramas del overview.
const (
	recencyBins        = 50
	frequencyBins      = 30
	frequencyCap       = 50
	monetaryBins       = 50
	monetaryCap        = 10000
	avgRecencyDecimals = 0
)

// OverviewUseCase KPIs y distribuciones de la selección actual (tab 1).
type OverviewUseCase struct {
	data DatasetProvider
}

// NewOverviewUseCase construye el caso de uso.
func NewOverviewUseCase(data DatasetProvider) *OverviewUseCase {
	return &OverviewUseCase{data: data}
}

// Overview calcula la vista sobre las filas filtradas por segments.
func (uc *OverviewUseCase) Overview(_ context.Context, segments []string) (*dto.OverviewDTO, error) {
	ds, err := uc.data.Snapshot()
	if err != nil {
		return nil, err
	}
	rows := ds.Filter(segments)
	names, groups := groupBySegment(rows)

	// ── Ingresos por segmento (orden alfabético) ──────────────────────────────
	revenue := make([]dto.SegmentValueDTO, 0, len(names))
	for _, n := range names {
		revenue = append(revenue, dto.SegmentValueDTO{
			Segment: n,
			Color:   entity.ColorFor(n),
			Value:   sumMonetary(groups[n]),
		})
	}

	// ── Distribución de clientes (conteo desc, empate por nombre) ─────────────
	distribution := make([]dto.SegmentCountDTO, 0, len(names))
	for _, n := range names {
		distribution = append(distribution, dto.SegmentCountDTO{
			Segment: n,
			Color:   entity.ColorFor(n),
			Count:   len(groups[n]),
		})
	}
	sort.SliceStable(distribution, func(i, j int) bool {
		return distribution[i].Count > distribution[j].Count
	})

	return &dto.OverviewDTO{
		Selected:         segments,
		CustomerCount:    len(rows),
		SegmentCount:     len(names),
		TotalRevenue:     sumMonetary(rows),
		AvgRecency:       optional(stats.Mean(recencies(rows)), avgRecencyDecimals),
		RevenueBySegment: revenue,
		Distribution:     distribution,
		RecencyHist: dto.HistogramDTO{
			Title:  "Recency Distribution",
			XLabel: "Days Since Last Purchase",
			Bins:   stats.Histogram(recencies(rows), recencyBins),
		},
		FrequencyHist: dto.HistogramDTO{
			Title:  "Frequency Distribution (capped at 50)",
			XLabel: "Number of Purchases",
			Bins:   stats.Histogram(stats.Clip(frequencies(rows), frequencyCap), frequencyBins),
		},
		MonetaryHist: dto.HistogramDTO{
			Title:  "Monetary Distribution (capped at $10k)",
			XLabel: "Total Spending ($)",
			Bins:   stats.Histogram(stats.Clip(monetaries(rows), monetaryCap), monetaryBins),
		},
	}, nil
}
