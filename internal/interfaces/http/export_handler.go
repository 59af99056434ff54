package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rfm-dashboard/internal/application/report"
)

// ExportHandler descargas PDF, XLSX y CSV.
type ExportHandler struct {
	uc *report.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *report.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// ComparisonPDF godoc
// @Summary      Reporte PDF de la comparación de segmentos
// @Description  KPIs, gráfico de ingresos por segmento, tabla comparativa y estrategias. Dataset completo.
// @Tags         exports
// @Security     Bearer
// @Produce      application/pdf
// @Param        access_token  query  string  false  "JWT para enlaces de descarga"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/exports/comparison.pdf [get]
func (h *ExportHandler) ComparisonPDF(c *fiber.Ctx) error {
	f, err := h.uc.ComparisonPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// CustomersXLSX godoc
// @Summary      Libro XLSX de clientes filtrados
// @Description  Hojas Customers (filas filtradas) y Comparison (tabla comparativa del mismo filtro).
// @Tags         exports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        segment       query  []string  false  "Segmentos seleccionados (repetible)"  collectionFormat(multi)
// @Param        sel           query  int       false  "1 = selección explícita"
// @Param        access_token  query  string    false  "JWT para enlaces de descarga"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/exports/customers.xlsx [get]
func (h *ExportHandler) CustomersXLSX(c *fiber.Ctx) error {
	_, segments, err := parseFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	f, err := h.uc.CustomersXLSX(c.Context(), segments)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

// CustomersCSV godoc
// @Summary      CSV de clientes filtrados
// @Description  Mismas columnas que el archivo de entrada más SegmentName.
// @Tags         exports
// @Security     Bearer
// @Produce      text/csv
// @Param        segment       query  []string  false  "Segmentos seleccionados (repetible)"  collectionFormat(multi)
// @Param        sel           query  int       false  "1 = selección explícita"
// @Param        access_token  query  string    false  "JWT para enlaces de descarga"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/exports/customers.csv [get]
func (h *ExportHandler) CustomersCSV(c *fiber.Ctx) error {
	_, segments, err := parseFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	f, err := h.uc.CustomersCSV(c.Context(), segments)
	if err != nil {
		return writeError(c, err)
	}
	return sendFile(c, f)
}

func sendFile(c *fiber.Ctx, f *report.File) error {
	c.Set(fiber.HeaderContentType, f.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+f.Name+`"`)
	return c.Send(f.Data)
}
