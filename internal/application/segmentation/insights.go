package segmentation

import (
	"context"
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/domain/stats"
)

// DefaultChurnDays umbral de inactividad para el indicador de churn.
const DefaultChurnDays = 400

// InsightsUseCase hallazgos y recomendaciones (tab 3).
// Siempre trabaja sobre el dataset completo, sin aplicar el filtro del sidebar.
type InsightsUseCase struct {
	data      DatasetProvider
	churnDays int
}

// NewInsightsUseCase construye el caso de uso. churnDays <= 0 usa DefaultChurnDays.
func NewInsightsUseCase(data DatasetProvider, churnDays int) *InsightsUseCase {
	if churnDays <= 0 {
		churnDays = DefaultChurnDays
	}
	return &InsightsUseCase{data: data, churnDays: churnDays}
}

// Insights calcula tarjetas por segmento, insights críticos y la tabla comparativa.
func (uc *InsightsUseCase) Insights(_ context.Context) (*dto.InsightsDTO, error) {
	ds, err := uc.data.Snapshot()
	if err != nil {
		return nil, err
	}
	all := ds.Customers
	total := len(all)
	revenue := sumMonetary(all)

	// ── Tarjetas por segmento (orden del catálogo) ────────────────────────────
	findings := make([]dto.SegmentFindingDTO, 0, 3)
	for _, seg := range entity.Segments() {
		rows := ds.InSegment(seg.Name)
		segRevenue := sumMonetary(rows)
		findings = append(findings, dto.SegmentFindingDTO{
			Segment:        seg.Name,
			Icon:           seg.Icon,
			Color:          seg.Color,
			Customers:      len(rows),
			CustomerPct:    share(len(rows), total),
			Revenue:        segRevenue,
			RevenuePct:     shareDecimal(segRevenue, revenue),
			HeadlineMetric: seg.Headline,
			HeadlineValue:  headline(seg.Headline, rows),
			Strategy:       seg.Strategy,
		})
	}

	return &dto.InsightsDTO{
		TotalCustomers: total,
		TotalRevenue:   revenue,
		Findings:       findings,
		Concentration:  concentration(ds, total, revenue),
		ChurnRisk:      uc.churnRisk(ds, total),
		Comparison:     Comparison(all),
	}, nil
}

func headline(metric string, rows []entity.Customer) *float64 {
	switch metric {
	case "recency":
		return optional(stats.Mean(recencies(rows)), 0)
	case "frequency":
		return optional(stats.Mean(frequencies(rows)), 1)
	case "monetary":
		return optional(stats.Mean(monetaries(rows)), 0)
	}
	return nil
}

// concentration mide cuánto del ingreso depende de los VIP y cuántos clientes Core
// equivalen en gasto medio a un VIP.
func concentration(ds *entity.Dataset, total int, revenue decimal.Decimal) dto.ConcentrationDTO {
	vip := ds.InSegment(entity.SegmentVIP)
	core := ds.InSegment(entity.SegmentCore)
	vipRevenue := sumMonetary(vip)

	equivalent := 0
	if len(vip) > 0 && len(core) > 0 {
		coreAvg := meanMonetary(core)
		if coreAvg.IsPositive() {
			equivalent = int(math.Round(meanMonetary(vip).Div(coreAvg).InexactFloat64()))
		}
	}

	return dto.ConcentrationDTO{
		VIPCustomers:      len(vip),
		VIPCustomerPct:    share(len(vip), total),
		VIPRevenue:        vipRevenue,
		VIPRevenuePct:     shareDecimal(vipRevenue, revenue),
		RegularEquivalent: equivalent,
	}
}

func (uc *InsightsUseCase) churnRisk(ds *entity.Dataset, total int) dto.ChurnRiskDTO {
	dormant := 0
	for _, c := range ds.Customers {
		if c.Recency >= uc.churnDays {
			dormant++
		}
	}
	return dto.ChurnRiskDTO{
		ThresholdDays:    uc.churnDays,
		DormantCustomers: dormant,
		DormantPct:       share(dormant, total),
		WinBackRevenue:   sumMonetary(ds.InSegment(entity.SegmentLost)),
	}
}

// Comparison agrega por segmento (orden alfabético). Los promedios y totales se
// redondean a 2 decimales antes de calcular el porcentaje de ingresos.
func Comparison(rows []entity.Customer) []dto.ComparisonRowDTO {
	names, groups := groupBySegment(rows)

	out := make([]dto.ComparisonRowDTO, 0, len(names))
	sum := decimal.Zero
	for _, n := range names {
		g := groups[n]
		totalRevenue := sumMonetary(g).Round(2)
		sum = sum.Add(totalRevenue)
		out = append(out, dto.ComparisonRowDTO{
			Segment:       n,
			CustomerCount: len(g),
			AvgRecency:    round(stats.Mean(recencies(g)), 2),
			AvgFrequency:  round(stats.Mean(frequencies(g)), 2),
			AvgMonetary:   meanMonetary(g).Round(2).InexactFloat64(),
			TotalRevenue:  totalRevenue,
		})
	}
	for i := range out {
		out[i].RevenuePct = shareDecimal(out[i].TotalRevenue, sum)
	}
	return out
}
