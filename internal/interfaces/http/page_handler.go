package http

import (
	"html/template"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/charts"
)

const layoutView = "layout"

// Pestañas del dashboard en orden de navegación.
var tabs = []pageTab{
	{Key: "overview", Label: "📈 Overview"},
	{Key: "segments", Label: "🔍 Segment Analysis"},
	{Key: "insights", Label: "💡 Business Insights"},
	{Key: "explorer", Label: "📊 Interactive 3D"},
}

type pageTab struct {
	Key   string
	Label string
}

// PageHandler renderiza las cuatro vistas HTML sobre el layout común.
type PageHandler struct {
	sidebar           *segmentation.SidebarUseCase
	overview          *segmentation.OverviewUseCase
	segment           *segmentation.SegmentUseCase
	insights          *segmentation.InsightsUseCase
	explorer          *segmentation.ExplorerUseCase
	narratorEnabled   bool
	apiAuth           bool
	transactionsLabel string
}

// NewPageHandler construye el handler. transactionsLabel es el texto del encabezado ("800k+").
// Con apiAuth las páginas no enlazan rutas de /api: el navegador no lleva token.
func NewPageHandler(
	sidebar *segmentation.SidebarUseCase,
	overview *segmentation.OverviewUseCase,
	segment *segmentation.SegmentUseCase,
	insights *segmentation.InsightsUseCase,
	explorer *segmentation.ExplorerUseCase,
	narratorEnabled bool,
	apiAuth bool,
	transactionsLabel string,
) *PageHandler {
	return &PageHandler{
		sidebar:           sidebar,
		overview:          overview,
		segment:           segment,
		insights:          insights,
		explorer:          explorer,
		narratorEnabled:   narratorEnabled,
		apiAuth:           apiAuth,
		transactionsLabel: transactionsLabel,
	}
}

// Index redirige a la primera pestaña conservando el filtro.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	target := "/overview"
	if q := string(c.Request().URI().QueryString()); q != "" {
		target += "?" + q
	}
	return c.Redirect(target, fiber.StatusFound)
}

// Overview pestaña 1.
func (h *PageHandler) Overview(c *fiber.Ctx) error {
	req, segments, err := parseFilter(c)
	if err != nil {
		return pageError(err)
	}
	data, err := h.base(c, "overview", req, segments)
	if err != nil {
		return pageError(err)
	}
	ov, err := h.overview.Overview(c.Context(), segments)
	if err != nil {
		return pageError(err)
	}
	data["View"] = ov
	data["Charts"] = []charts.Snippet{
		charts.RevenueBar("revenue-by-segment", ov.RevenueBySegment),
		charts.DistributionPie("customer-distribution", ov.Distribution),
		charts.Histogram("recency-hist", ov.RecencyHist),
		charts.Histogram("frequency-hist", ov.FrequencyHist),
		charts.Histogram("monetary-hist", ov.MonetaryHist),
	}
	return c.Render("overview", data, layoutView)
}

// Segments pestaña 2. El foco por defecto es el primer segmento seleccionado.
func (h *PageHandler) Segments(c *fiber.Ctx) error {
	req, segments, err := parseFilter(c)
	if err != nil {
		return pageError(err)
	}
	data, err := h.base(c, "segments", req, segments)
	if err != nil {
		return pageError(err)
	}

	focus := req.Focus
	if focus == "" && len(segments) > 0 {
		focus = segments[0]
	}
	an, err := h.segment.Analyze(c.Context(), segments, focus)
	if err != nil {
		return pageError(err)
	}
	data["View"] = an
	data["Charts"] = []charts.Snippet{
		charts.Scatter("recency-monetary", an.RecencyMonetary),
		charts.Scatter("frequency-monetary", an.FrequencyMonetary),
	}
	return c.Render("segments", data, layoutView)
}

// Insights pestaña 3 (dataset completo, el filtro solo afecta al sidebar).
func (h *PageHandler) Insights(c *fiber.Ctx) error {
	req, segments, err := parseFilter(c)
	if err != nil {
		return pageError(err)
	}
	data, err := h.base(c, "insights", req, segments)
	if err != nil {
		return pageError(err)
	}
	ins, err := h.insights.Insights(c.Context())
	if err != nil {
		return pageError(err)
	}
	data["View"] = ins
	data["NarratorEnabled"] = h.narratorEnabled && !h.apiAuth
	data["APIOpen"] = !h.apiAuth
	return c.Render("insights", data, layoutView)
}

// Explorer pestaña 4.
func (h *PageHandler) Explorer(c *fiber.Ctx) error {
	req, segments, err := parseFilter(c)
	if err != nil {
		return pageError(err)
	}
	data, err := h.base(c, "explorer", req, segments)
	if err != nil {
		return pageError(err)
	}
	ex, err := h.explorer.Explore(c.Context(), segments)
	if err != nil {
		return pageError(err)
	}
	data["View"] = ex
	data["Charts"] = []charts.Snippet{charts.Scatter3D("rfm-3d", *ex)}
	return c.Render("explorer", data, layoutView)
}

// base datos comunes del layout: sidebar, pestañas y query del filtro para los enlaces.
func (h *PageHandler) base(c *fiber.Ctx, tab string, req dto.FilterRequest, segments []string) (fiber.Map, error) {
	sb, err := h.sidebar.Sidebar(c.Context(), segments)
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"Tab":               tab,
		"Tabs":              tabs,
		"Sidebar":           sb,
		"Selected":          segments,
		"Focus":             req.Focus,
		"Query":             filterQuery(segments),
		"TransactionsLabel": h.transactionsLabel,
		"AssetsHost":        charts.AssetsHost,
	}, nil
}

// filterQuery serializa la selección para los enlaces entre pestañas y descargas.
func filterQuery(segments []string) template.URL {
	q := url.Values{}
	for _, s := range segments {
		q.Add("segment", s)
	}
	q.Set("sel", "1")
	return template.URL(q.Encode())
}
