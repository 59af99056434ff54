package segmentation

import (
	"context"
	"sort"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/domain/stats"
)

const topCustomers = 10

// SegmentUseCase análisis detallado de un segmento (tab 2).
type SegmentUseCase struct {
	data DatasetProvider
}

// NewSegmentUseCase construye el caso de uso.
func NewSegmentUseCase(data DatasetProvider) *SegmentUseCase {
	return &SegmentUseCase{data: data}
}

// Analyze toma las filas filtradas que pertenecen a focus.
// Si el filtro excluye a focus la vista sale vacía, no es un error.
func (uc *SegmentUseCase) Analyze(_ context.Context, segments []string, focus string) (*dto.SegmentAnalysisDTO, error) {
	seg, err := ResolveFocus(focus)
	if err != nil {
		return nil, err
	}
	ds, err := uc.data.Snapshot()
	if err != nil {
		return nil, err
	}
	rows := entity.OnlySegment(ds.Filter(segments), seg.Name)

	rec, freq, mon := recencies(rows), frequencies(rows), monetaries(rows)

	return &dto.SegmentAnalysisDTO{
		Focus:        seg.Name,
		Selected:     segments,
		Customers:    len(rows),
		AvgRecency:   optional(stats.Mean(rec), 0),
		AvgFrequency: optional(stats.Mean(freq), 1),
		AvgMonetary:  optional(stats.Mean(mon), 0),
		Stats: []dto.MetricStatsDTO{
			metricStats("Recency", rec),
			metricStats("Frequency", freq),
			metricStats("Monetary", mon),
		},
		TopCustomers: topByMonetary(rows, topCustomers),
		RecencyMonetary: scatter(rows, "Recency vs Monetary",
			"Days Since Last Purchase", "Frequency",
			func(c entity.Customer) (float64, float64) { return float64(c.Recency), float64(c.Frequency) }),
		FrequencyMonetary: scatter(rows, "Frequency vs Monetary",
			"Number of Purchases", "Recency",
			func(c entity.Customer) (float64, float64) { return float64(c.Frequency), float64(c.Recency) }),
	}, nil
}

func metricStats(metric string, values []float64) dto.MetricStatsDTO {
	s := stats.Describe(values)
	return dto.MetricStatsDTO{
		Metric: metric,
		Count:  s.Count,
		Mean:   optional(s.Mean, 2),
		Std:    optional(s.Std, 2),
		Min:    optional(s.Min, 2),
		P25:    optional(s.P25, 2),
		P50:    optional(s.P50, 2),
		P75:    optional(s.P75, 2),
		Max:    optional(s.Max, 2),
	}
}

// topByMonetary devuelve los n clientes de mayor gasto; en empate manda el orden original.
func topByMonetary(rows []entity.Customer, n int) []dto.CustomerDTO {
	sorted := make([]entity.Customer, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Monetary.GreaterThan(sorted[j].Monetary)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	out := make([]dto.CustomerDTO, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, dto.CustomerDTO{
			CustomerID: c.CustomerID,
			Recency:    c.Recency,
			Frequency:  c.Frequency,
			Monetary:   c.Monetary,
		})
	}
	return out
}

// scatter arma un gráfico con Monetary en el eje Y y como tamaño del punto.
// xc devuelve el valor del eje X y la métrica que colorea el punto.
func scatter(rows []entity.Customer, title, xLabel, colorLabel string, xc func(entity.Customer) (float64, float64)) dto.ScatterDTO {
	points := make([]dto.ScatterPointDTO, 0, len(rows))
	for _, c := range rows {
		x, color := xc(c)
		m := c.Monetary.InexactFloat64()
		points = append(points, dto.ScatterPointDTO{
			CustomerID: c.CustomerID,
			X:          x,
			Y:          m,
			Color:      color,
			Size:       m,
		})
	}
	return dto.ScatterDTO{
		Title:      title,
		XLabel:     xLabel,
		YLabel:     "Total Spending ($)",
		ColorLabel: colorLabel,
		Points:     points,
	}
}
