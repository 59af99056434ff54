// Package charts construye los gráficos interactivos de las vistas con go-echarts.
// Cada builder devuelve un Snippet (div + script) que las plantillas insertan tal cual;
// la librería echarts se carga una sola vez desde el layout.
package charts

import (
	"fmt"
	"html/template"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
)

// AssetsHost CDN de echarts usado por el layout.
const AssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

const (
	colorText      = "#31333f"
	colorHistogram = "#636efa"
	maxSymbolSize  = 20
	minSymbolSize  = 3
)

// Snippet fragmento HTML listo para la plantilla.
type Snippet struct {
	ID      string
	Element template.HTML
	Script  template.HTML
}

func snippet(id string, r interface{ RenderSnippet() render.ChartSnippet }) Snippet {
	s := r.RenderSnippet()
	return Snippet{
		ID:      id,
		Element: template.HTML(s.Element),
		Script:  template.HTML(s.Script),
	}
}

func initOpts(id, height string) opts.Initialization {
	return opts.Initialization{
		ChartID:    id,
		Width:      "100%",
		Height:     height,
		AssetsHost: AssetsHost,
	}
}

// ── Overview ──────────────────────────────────────────────────────────────────

// RevenueBar ingresos por segmento, una barra por segmento con su color.
func RevenueBar(id string, items []dto.SegmentValueDTO) Snippet {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(id, "400px")),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Segment"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Total Revenue ($)"}),
	)

	names := make([]string, 0, len(items))
	data := make([]opts.BarData, 0, len(items))
	for _, it := range items {
		names = append(names, it.Segment)
		data = append(data, opts.BarData{
			Name:      it.Segment,
			Value:     it.Value.Round(2).InexactFloat64(),
			ItemStyle: &opts.ItemStyle{Color: it.Color},
		})
	}
	bar.SetXAxis(names)
	bar.AddSeries("Revenue", data)
	return snippet(id, bar)
}

// DistributionPie clientes por segmento.
func DistributionPie(id string, items []dto.SegmentCountDTO) Snippet {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(id, "400px")),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: "{b}: {c} ({d}%)"}),
	)

	data := make([]opts.PieData, 0, len(items))
	for _, it := range items {
		data = append(data, opts.PieData{
			Name:      it.Segment,
			Value:     it.Count,
			ItemStyle: &opts.ItemStyle{Color: it.Color},
		})
	}
	pie.AddSeries("Customers", data).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{d}%"}))
	return snippet(id, pie)
}

// Histogram distribución de una métrica como barras contiguas.
func Histogram(id string, h dto.HistogramDTO) Snippet {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(id, "300px")),
		charts.WithTitleOpts(opts.Title{Title: h.Title, TitleStyle: &opts.TextStyle{Color: colorText, FontSize: 14}}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: h.XLabel, NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)

	labels := make([]string, 0, len(h.Bins))
	data := make([]opts.BarData, 0, len(h.Bins))
	for _, b := range h.Bins {
		labels = append(labels, BinLabel(b.Lower, b.Upper))
		data = append(data, opts.BarData{Value: b.Count})
	}
	bar.SetXAxis(labels)
	bar.AddSeries("count", data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorHistogram}),
		charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "1%"}),
	)
	return snippet(id, bar)
}

// BinLabel etiqueta del intervalo, con un decimal solo cuando hace falta.
func BinLabel(lo, hi float64) string {
	return trimFloat(lo) + "–" + trimFloat(hi)
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(math.Round(f*10)/10, 'f', -1, 64)
}

// ── Segment analysis ──────────────────────────────────────────────────────────

// Scatter dispersión con Monetary en Y, color continuo por la tercera métrica y
// tamaño proporcional al gasto.
func Scatter(id string, s dto.ScatterDTO) Snippet {
	sc := charts.NewScatter()

	minColor, maxColor := math.Inf(1), math.Inf(-1)
	maxSize := 0.0
	for _, p := range s.Points {
		minColor = math.Min(minColor, p.Color)
		maxColor = math.Max(maxColor, p.Color)
		maxSize = math.Max(maxSize, p.Size)
	}
	if len(s.Points) == 0 {
		minColor, maxColor = 0, 1
	}

	sc.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(id, "400px")),
		charts.WithTitleOpts(opts.Title{Title: s.Title, TitleStyle: &opts.TextStyle{Color: colorText, FontSize: 14}}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: opts.FuncOpts(scatterTooltip(s)),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: s.XLabel, Type: "value", NameLocation: "middle", NameGap: 30}),
		charts.WithYAxisOpts(opts.YAxis{Name: s.YLabel, Type: "value"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Type:       "continuous",
			Calculable: opts.Bool(true),
			Dimension:  "2",
			Min:        float32(minColor),
			Max:        float32(maxColor),
			Text:       []string{s.ColorLabel},
			InRange:    &opts.VisualMapInRange{Color: []string{"#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"}},
		}),
	)

	data := make([]opts.ScatterData, 0, len(s.Points))
	for _, p := range s.Points {
		data = append(data, opts.ScatterData{
			Name:       p.CustomerID,
			Value:      []interface{}{p.X, p.Y, p.Color},
			SymbolSize: SymbolSize(p.Size, maxSize),
		})
	}
	sc.AddSeries(s.Title, data)
	return snippet(id, sc)
}

// SymbolSize escala el área del símbolo con el valor, entre 3 y 20 px de diámetro.
func SymbolSize(v, max float64) int {
	if max <= 0 || v <= 0 {
		return minSymbolSize
	}
	size := maxSymbolSize * math.Sqrt(v/max)
	if size < minSymbolSize {
		return minSymbolSize
	}
	return int(math.Round(size))
}

func scatterTooltip(s dto.ScatterDTO) string {
	return fmt.Sprintf(`function (p) {
  return 'Customer ID: ' + p.name + '<br>%s: ' + p.value[0] + '<br>%s: $' + Math.round(p.value[1]).toLocaleString('en-US') + '<br>%s: ' + p.value[2];
}`, template.JSEscapeString(s.XLabel), template.JSEscapeString(s.YLabel), template.JSEscapeString(s.ColorLabel))
}

// ── Explorer 3D ───────────────────────────────────────────────────────────────

// Scatter3D nube de clientes, una serie por segmento.
func Scatter3D(id string, e dto.ExplorerDTO) Snippet {
	sc := charts.NewScatter3D()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(id, "700px")),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Formatter: opts.FuncOpts("function (p) { return p.name; }"),
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: e.XTitle, Show: opts.Bool(true)}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: e.YTitle, Show: opts.Bool(true)}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: e.ZTitle, Show: opts.Bool(true)}),
	)

	for _, s := range e.Series {
		data := make([]opts.Chart3DData, 0, len(s.Points))
		for _, p := range s.Points {
			data = append(data, opts.Chart3DData{
				Name:  p.Hover,
				Value: []interface{}{p.X, p.Y, p.Z},
			})
		}
		sc.AddSeries(s.Segment, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color, Opacity: opts.Float(0.7)}),
		)
	}
	return snippet(id, sc)
}
