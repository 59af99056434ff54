// Package pdf genera el reporte descargable de comparación de segmentos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fuente del dataset │ Fecha + ID reporte   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Clientes │ Ingresos │ Concentración VIP │ Churn      │
//	│  GRÁFICO: ingresos por segmento (PNG)                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Segmento | Clientes | R | F | M | Ingresos | %       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PLAYBOOK: estrategia por segmento                           │
//	│  FOOTER: proyecto / método / dataset                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/application/report"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/plot"
	"github.com/jhoicas/rfm-dashboard/pkg/format"
)

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// segmentPDFColors colores de texto por segmento; gold se oscurece para que se lea sobre blanco.
var segmentPDFColors = map[string]*props.Color{
	"red":   {Red: 200, Green: 30, Blue: 30},
	"green": {Red: 20, Green: 130, Blue: 60},
	"gold":  {Red: 184, Green: 134, Blue: 11},
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateComparisonPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateComparisonPDF(_ context.Context, r *report.ComparisonReport) ([]byte, error) {
	if r == nil || r.Insights == nil {
		return nil, fmt.Errorf("pdf: reporte sin datos")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.Title, true).
		WithAuthor("RFM Dashboard", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(r.Insights))

	if len(r.Insights.Comparison) > 0 {
		png, err := plot.RevenueBarPNG(r.Insights.Comparison, entity.ColorFor)
		if err != nil {
			return nil, fmt.Errorf("pdf: gráfico de ingresos: %w", err)
		}
		m.AddRows(row.New(80).Add(
			col.New(12).Add(image.NewFromBytes(png, extension.Png, props.Rect{Percent: 95, Center: true})),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("SEGMENT COMPARISON"))
	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(r.Insights.Comparison)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("STRATEGY PLAYBOOK"))
	m.AddRows(playbookRows(r.Insights.Findings)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r.Footer))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fuente (izq) y fecha + id (der).
func headerRow(r *report.ComparisonReport) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dataset: %s (%s rows)", r.Dataset.Source, format.Int(r.Dataset.Rows)), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+r.GeneratedAt.Format("2006-01-02 15:04 UTC"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Report "+r.ID, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

// kpiRow: cuatro tarjetas con los indicadores globales.
func kpiRow(in *dto.InsightsDTO) core.Row {
	card := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 7, Align: align.Center, Color: colorPrimary}),
		)
	}
	c, ch := in.Concentration, in.ChurnRisk
	return row.New(18).Add(
		card("Total Customers", format.Int(in.TotalCustomers)),
		card("Total Revenue", format.Millions(in.TotalRevenue, 2)),
		card("VIP share of revenue", fmt.Sprintf("%s (%d VIPs)", format.Percent(c.VIPRevenuePct, 1), c.VIPCustomers)),
		card(fmt.Sprintf("Inactive %d+ days", ch.ThresholdDays), format.Percent(ch.DormantPct, 1)),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

// tableHeaderRow: cabecera de la tabla comparativa sobre fondo azul.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Segment", 3, align.Left),
		h("Customers", 1, align.Right),
		h("Avg Recency", 2, align.Right),
		h("Avg Freq.", 1, align.Right),
		h("Avg Monetary", 2, align.Right),
		h("Revenue", 2, align.Right),
		h("Rev. %", 1, align.Right),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por segmento, mismos formatos que la vista de insights.
func tableRows(rows []dto.ComparisonRowDTO) []core.Row {
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			cell(r.Segment, 3, align.Left),
			cell(format.Int(r.CustomerCount), 1, align.Right),
			cell(format.Fixed(r.AvgRecency, 0)+" days", 2, align.Right),
			cell(format.Fixed(r.AvgFrequency, 1), 1, align.Right),
			cell(format.MoneyFloat(r.AvgMonetary), 2, align.Right),
			cell(format.Money(r.TotalRevenue), 2, align.Right),
			cell(format.Percent(r.RevenuePct, 1), 1, align.Right),
		))
	}
	return result
}

// playbookRows: nombre del segmento, resumen y estrategia en una fila por segmento.
func playbookRows(findings []dto.SegmentFindingDTO) []core.Row {
	result := make([]core.Row, 0, len(findings))
	for _, f := range findings {
		color, ok := segmentPDFColors[f.Color]
		if !ok {
			color = colorGray
		}
		summary := fmt.Sprintf("%s customers (%s) · %s revenue (%s)",
			format.Int(f.Customers), format.Percent(f.CustomerPct, 1),
			format.Millions(f.Revenue, 1), format.Percent(f.RevenuePct, 1))
		strategy := "- " + strings.Join(f.Strategy, "\n- ")
		height := 10 + 4.5*float64(len(f.Strategy))

		result = append(result, row.New(height).Add(
			col.New(4).Add(
				text.New(f.Segment, props.Text{Style: fontstyle.Bold, Size: 10, Color: color, Top: 2}),
				text.New(summary, props.Text{Size: 7, Color: colorGray, Top: 8}),
			),
			col.New(8).Add(
				text.New(strategy, props.Text{Size: 8, Top: 2, Left: 2}),
			),
		))
	}
	return result
}

func footerRow(footer string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(footer, props.Text{Size: 7, Color: colorGray, Top: 2, Align: align.Center}),
	))
}
