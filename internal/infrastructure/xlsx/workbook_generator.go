// Package xlsx exporta los clientes filtrados y la tabla comparativa a Excel.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/application/report"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

var _ report.WorkbookGenerator = (*WorkbookGenerator)(nil)

// Nombres de las hojas.
const (
	SheetCustomers  = "Customers"
	SheetComparison = "Comparison"
)

var (
	customerHeaders   = []string{"CustomerID", "Recency", "Frequency", "Monetary", "Cluster", "Segment"}
	comparisonHeaders = []string{"Segment", "Customer Count", "Avg Recency (days)", "Avg Frequency", "Avg Monetary ($)", "Total Revenue ($)", "Revenue %"}
)

// WorkbookGenerator implementa report.WorkbookGenerator con excelize.
type WorkbookGenerator struct{}

// NewWorkbookGenerator construye el generador.
func NewWorkbookGenerator() *WorkbookGenerator { return &WorkbookGenerator{} }

// GenerateCustomersXLSX genera el libro y devuelve sus bytes.
func (g *WorkbookGenerator) GenerateCustomersXLSX(_ context.Context, customers []entity.Customer, comparison []dto.ComparisonRowDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetCustomers); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(SheetComparison); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"00467F"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	// ── Hoja Customers ────────────────────────────────────────────────────────
	if err := writeHeader(f, SheetCustomers, customerHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, c := range customers {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{c.CustomerID, c.Recency, c.Frequency, c.Monetary.InexactFloat64(), c.Cluster, c.SegmentName}
		if err := f.SetSheetRow(SheetCustomers, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if len(customers) > 0 {
		last := fmt.Sprintf("D%d", len(customers)+1)
		if err := f.SetCellStyle(SheetCustomers, "D2", last, moneyStyle); err != nil {
			return nil, fmt.Errorf("xlsx: estilo montos: %w", err)
		}
	}

	// ── Hoja Comparison ───────────────────────────────────────────────────────
	if err := writeHeader(f, SheetComparison, comparisonHeaders, headerStyle); err != nil {
		return nil, err
	}
	for i, r := range comparison {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			r.Segment, r.CustomerCount, r.AvgRecency, r.AvgFrequency, r.AvgMonetary,
			r.TotalRevenue.InexactFloat64(), r.RevenuePct,
		}
		if err := f.SetSheetRow(SheetComparison, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("xlsx: cabecera %s: %w", sheet, err)
		}
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheet, col, col, 18); err != nil {
			return fmt.Errorf("xlsx: ancho %s: %w", sheet, err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("xlsx: estilo cabecera %s: %w", sheet, err)
	}
	return nil
}
