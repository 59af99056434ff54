package segmentation

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

func recencies(rows []entity.Customer) []float64 {
	out := make([]float64, len(rows))
	for i, c := range rows {
		out[i] = float64(c.Recency)
	}
	return out
}

func frequencies(rows []entity.Customer) []float64 {
	out := make([]float64, len(rows))
	for i, c := range rows {
		out[i] = float64(c.Frequency)
	}
	return out
}

func monetaries(rows []entity.Customer) []float64 {
	out := make([]float64, len(rows))
	for i, c := range rows {
		out[i] = c.Monetary.InexactFloat64()
	}
	return out
}

func sumMonetary(rows []entity.Customer) decimal.Decimal {
	total := decimal.Zero
	for _, c := range rows {
		total = total.Add(c.Monetary)
	}
	return total
}

// meanMonetary promedio exacto en decimal; cero si no hay filas.
func meanMonetary(rows []entity.Customer) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	return sumMonetary(rows).Div(decimal.NewFromInt(int64(len(rows))))
}

// share devuelve part/total en porcentaje; 0 si total es 0.
func share(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round(float64(part)*100/float64(total), 1)
}

func shareDecimal(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).Mul(hundred).Round(1).InexactFloat64()
}

func round(f float64, decimals int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(f*p) / p
}

// optional convierte NaN en nil para que la respuesta JSON lleve null.
func optional(f float64, decimals int) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	v := round(f, decimals)
	return &v
}

// groupBySegment agrupa las filas con etiqueta por nombre de segmento.
// Devuelve los nombres ordenados alfabéticamente, como un groupby.
func groupBySegment(rows []entity.Customer) ([]string, map[string][]entity.Customer) {
	groups := make(map[string][]entity.Customer)
	for _, c := range rows {
		if c.SegmentName == "" {
			continue
		}
		groups[c.SegmentName] = append(groups[c.SegmentName], c)
	}
	names := make([]string, 0, len(groups))
	for n := range groups {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, groups
}
