package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
)

// SegmentationHandler expone las vistas del dashboard como JSON.
type SegmentationHandler struct {
	sidebar   *segmentation.SidebarUseCase
	overview  *segmentation.OverviewUseCase
	segment   *segmentation.SegmentUseCase
	insights  *segmentation.InsightsUseCase
	explorer  *segmentation.ExplorerUseCase
	narrative *segmentation.NarrativeUseCase
}

// NewSegmentationHandler construye el handler.
func NewSegmentationHandler(
	sidebar *segmentation.SidebarUseCase,
	overview *segmentation.OverviewUseCase,
	segment *segmentation.SegmentUseCase,
	insights *segmentation.InsightsUseCase,
	explorer *segmentation.ExplorerUseCase,
	narrative *segmentation.NarrativeUseCase,
) *SegmentationHandler {
	return &SegmentationHandler{
		sidebar:   sidebar,
		overview:  overview,
		segment:   segment,
		insights:  insights,
		explorer:  explorer,
		narrative: narrative,
	}
}

// GetSidebar godoc
// @Summary      Totales globales y opciones del filtro
// @Description  Métricas sobre el dataset completo (no dependen del filtro) y el estado del multiselect.
// @Tags         segmentation
// @Security     Bearer
// @Produce      json
// @Param        segment  query  []string  false  "Segmentos seleccionados (repetible)"  collectionFormat(multi)
// @Param        sel      query  int       false  "1 = selección explícita (permite selección vacía)"
// @Success      200  {object}  dto.SidebarDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/sidebar [get]
func (h *SegmentationHandler) GetSidebar(c *fiber.Ctx) error {
	_, segments, err := parseFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.sidebar.Sidebar(c.Context(), segments)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetOverview godoc
// @Summary      Vista general de la segmentación
// @Description  KPIs, ingresos y clientes por segmento e histogramas RFM del subconjunto filtrado.
// @Tags         segmentation
// @Security     Bearer
// @Produce      json
// @Param        segment  query  []string  false  "Segmentos seleccionados (repetible)"  collectionFormat(multi)
// @Param        sel      query  int       false  "1 = selección explícita"
// @Success      200  {object}  dto.OverviewDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/overview [get]
func (h *SegmentationHandler) GetOverview(c *fiber.Ctx) error {
	_, segments, err := parseFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.overview.Overview(c.Context(), segments)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetSegment godoc
// @Summary      Análisis detallado de un segmento
// @Description  Promedios, estadística descriptiva, top 10 por gasto y dispersión RFM del segmento dentro del filtro.
// @Tags         segmentation
// @Security     Bearer
// @Produce      json
// @Param        name     path   string    true   "Nombre del segmento, ej. VIP Champions"
// @Param        segment  query  []string  false  "Segmentos seleccionados (repetible)"  collectionFormat(multi)
// @Param        sel      query  int       false  "1 = selección explícita"
// @Success      200  {object}  dto.SegmentAnalysisDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/segments/{name} [get]
func (h *SegmentationHandler) GetSegment(c *fiber.Ctx) error {
	_, segments, err := parseFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "nombre de segmento inválido"})
	}
	out, err := h.segment.Analyze(c.Context(), segments, name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetInsights godoc
// @Summary      Hallazgos y recomendaciones
// @Description  Tarjetas por segmento, concentración VIP, riesgo de abandono y tabla comparativa. Siempre sobre el dataset completo.
// @Tags         segmentation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InsightsDTO
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/insights [get]
func (h *SegmentationHandler) GetInsights(c *fiber.Ctx) error {
	out, err := h.insights.Insights(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetExplorer godoc
// @Summary      Nube 3D de clientes
// @Description  Una serie por segmento con (Recency, Frequency, log1p(Monetary)) y texto de hover.
// @Tags         segmentation
// @Security     Bearer
// @Produce      json
// @Param        segment  query  []string  false  "Segmentos seleccionados (repetible)"  collectionFormat(multi)
// @Param        sel      query  int       false  "1 = selección explícita"
// @Success      200  {object}  dto.ExplorerDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/explorer [get]
func (h *SegmentationHandler) GetExplorer(c *fiber.Ctx) error {
	_, segments, err := parseFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.explorer.Explore(c.Context(), segments)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PostNarrative godoc
// @Summary      Resumen ejecutivo de los insights (IA)
// @Description  Envía la tabla comparativa al proveedor configurado (AI_PROVIDER). 503 si no hay API key.
// @Tags         segmentation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.NarrativeDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /api/insights/narrative [post]
func (h *SegmentationHandler) PostNarrative(c *fiber.Ctx) error {
	out, err := h.narrative.Narrate(c.Context())
	if err != nil {
		if status, _ := statusFor(err); status == fiber.StatusInternalServerError {
			// Fallo del proveedor externo, no del servicio.
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_FAILED", Message: err.Error()})
		}
		return writeError(c, err)
	}
	return c.JSON(out)
}
