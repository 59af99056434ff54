// Package plot genera gráficos estáticos (PNG) para los reportes descargables,
// donde no hay navegador que ejecute echarts.
package plot

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg" // registra el formato png

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
)

// Tamaño del PNG incrustado en el PDF.
const (
	chartWidth  = 16 * vg.Centimeter
	chartHeight = 9 * vg.Centimeter
)

// segmentColors colores de los segmentos en RGB (los nombres CSS no existen en image/color).
var segmentColors = map[string]color.RGBA{
	"red":   {R: 220, G: 38, B: 38, A: 255},
	"green": {R: 22, G: 163, B: 74, A: 255},
	"gold":  {R: 255, G: 215, B: 0, A: 255},
}

var fallbackColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// RevenueBarPNG barras de ingresos por segmento (en millones) a partir de la tabla comparativa.
// colorOf traduce el nombre del segmento a su color del catálogo.
func RevenueBarPNG(rows []dto.ComparisonRowDTO, colorOf func(string) string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("plot: sin segmentos para graficar")
	}

	p := plot.New()
	p.Title.Text = "Revenue by Segment"
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.Text = "Total Revenue ($M)"
	p.Y.Min = 0

	labels := make([]string, 0, len(rows))
	for i, r := range rows {
		bars, err := plotter.NewBarChart(plotter.Values{r.TotalRevenue.InexactFloat64() / 1e6}, vg.Points(40))
		if err != nil {
			return nil, fmt.Errorf("plot: barra %s: %w", r.Segment, err)
		}
		c, ok := segmentColors[colorOf(r.Segment)]
		if !ok {
			c = fallbackColor
		}
		bars.Color = c
		bars.LineStyle.Width = vg.Length(0)
		bars.XMin = float64(i)
		p.Add(bars)
		labels = append(labels, r.Segment)
	}
	p.NominalX(labels...)
	p.Add(plotter.NewGrid())

	w, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("plot: writer png: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("plot: render png: %w", err)
	}
	return buf.Bytes(), nil
}
