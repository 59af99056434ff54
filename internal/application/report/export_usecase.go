package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
)

// ExportUseCase arma los archivos descargables a partir del snapshot vigente.
type ExportUseCase struct {
	data     segmentation.DatasetProvider
	insights *segmentation.InsightsUseCase
	pdf      PDFGenerator
	xlsx     WorkbookGenerator
	csv      CSVEncoder
	footer   string
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso. footer es la línea de proyecto del pie de página.
func NewExportUseCase(
	data segmentation.DatasetProvider,
	insights *segmentation.InsightsUseCase,
	pdf PDFGenerator,
	xlsx WorkbookGenerator,
	csv CSVEncoder,
	footer string,
) *ExportUseCase {
	return &ExportUseCase{
		data:     data,
		insights: insights,
		pdf:      pdf,
		xlsx:     xlsx,
		csv:      csv,
		footer:   footer,
		now:      time.Now,
	}
}

// ComparisonPDF reporte de la comparación de segmentos (dataset completo).
func (uc *ExportUseCase) ComparisonPDF(ctx context.Context) (*File, error) {
	ds, err := uc.data.Snapshot()
	if err != nil {
		return nil, err
	}
	ins, err := uc.insights.Insights(ctx)
	if err != nil {
		return nil, err
	}

	id, now := uc.reportID()
	doc, err := uc.pdf.GenerateComparisonPDF(ctx, &ComparisonReport{
		ID:          id,
		Title:       "Customer Segmentation Report",
		GeneratedAt: now,
		Dataset:     segmentation.DatasetInfo(ds),
		Insights:    ins,
		Footer:      uc.footer,
	})
	if err != nil {
		return nil, fmt.Errorf("report: pdf: %w", err)
	}
	return &File{Name: fileName("segment-comparison", now, id, "pdf"), ContentType: ContentTypePDF, Data: doc}, nil
}

// CustomersXLSX libro con los clientes filtrados y la tabla comparativa del mismo filtro.
func (uc *ExportUseCase) CustomersXLSX(ctx context.Context, segments []string) (*File, error) {
	ds, err := uc.data.Snapshot()
	if err != nil {
		return nil, err
	}
	rows := ds.Filter(segments)

	doc, err := uc.xlsx.GenerateCustomersXLSX(ctx, rows, segmentation.Comparison(rows))
	if err != nil {
		return nil, fmt.Errorf("report: xlsx: %w", err)
	}
	id, now := uc.reportID()
	return &File{Name: fileName("customers", now, id, "xlsx"), ContentType: ContentTypeXLSX, Data: doc}, nil
}

// CustomersCSV clientes filtrados en CSV con las columnas del archivo de entrada.
func (uc *ExportUseCase) CustomersCSV(_ context.Context, segments []string) (*File, error) {
	ds, err := uc.data.Snapshot()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := uc.csv.Encode(&buf, ds.Filter(segments)); err != nil {
		return nil, fmt.Errorf("report: csv: %w", err)
	}
	id, now := uc.reportID()
	return &File{Name: fileName("customers", now, id, "csv"), ContentType: ContentTypeCSV, Data: buf.Bytes()}, nil
}

func (uc *ExportUseCase) reportID() (string, time.Time) {
	return uuid.NewString()[:8], uc.now().UTC()
}

// fileName ej. customers-20240131-1a2b3c4d.xlsx
func fileName(prefix string, t time.Time, id, ext string) string {
	return fmt.Sprintf("%s-%s-%s.%s", prefix, t.Format("20060102"), id, ext)
}
