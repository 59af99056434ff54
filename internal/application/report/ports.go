// Package report genera las descargas del dashboard: reporte PDF de la comparación
// de segmentos, libro XLSX y CSV de los clientes filtrados.
package report

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

// ComparisonReport datos del reporte PDF.
type ComparisonReport struct {
	ID          string
	Title       string
	GeneratedAt time.Time
	Dataset     dto.DatasetInfoDTO
	Insights    *dto.InsightsDTO
	Footer      string
}

// PDFGenerator genera el reporte de comparación de segmentos.
type PDFGenerator interface {
	GenerateComparisonPDF(ctx context.Context, r *ComparisonReport) ([]byte, error)
}

// WorkbookGenerator genera el libro con las hojas Customers y Comparison.
type WorkbookGenerator interface {
	GenerateCustomersXLSX(ctx context.Context, customers []entity.Customer, comparison []dto.ComparisonRowDTO) ([]byte, error)
}

// CSVEncoder escribe las filas de clientes en CSV.
type CSVEncoder interface {
	Encode(w io.Writer, customers []entity.Customer) error
}

// File resultado de una exportación.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Tipos MIME de las descargas.
const (
	ContentTypePDF  = "application/pdf"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeCSV  = "text/csv; charset=utf-8"
)
