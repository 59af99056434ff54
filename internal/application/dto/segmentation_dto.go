package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rfm-dashboard/internal/domain/stats"
)

// ── Filtro ────────────────────────────────────────────────────────────────────

// FilterRequest parámetros comunes de las vistas filtrables.
// Segment se repite (?segment=VIP%20Champions&segment=Core%20Customers);
// Sel=1 indica que la selección es explícita aunque venga vacía.
type FilterRequest struct {
	Segment []string `query:"segment"`
	Sel     int      `query:"sel"`
	Focus   string   `query:"focus"`
}

// ── Sidebar ───────────────────────────────────────────────────────────────────

// SegmentOptionDTO opción del multiselect del sidebar.
type SegmentOptionDTO struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Selected bool   `json:"selected"`
}

// SidebarDTO métricas globales (sin filtrar) y opciones del filtro.
type SidebarDTO struct {
	TotalCustomers   int                `json:"total_customers"`
	TotalRevenue     decimal.Decimal    `json:"total_revenue"`
	AvgCustomerValue decimal.Decimal    `json:"avg_customer_value"`
	Options          []SegmentOptionDTO `json:"options"`
	Dataset          DatasetInfoDTO     `json:"dataset"`
}

// DatasetInfoDTO metadatos del snapshot cargado.
type DatasetInfoDTO struct {
	Source   string    `json:"source"`
	Rows     int       `json:"rows"`
	LoadedAt time.Time `json:"loaded_at"`
}

// ── Overview (tab 1) ──────────────────────────────────────────────────────────

// SegmentValueDTO monto agregado por segmento.
type SegmentValueDTO struct {
	Segment string          `json:"segment"`
	Color   string          `json:"color"`
	Value   decimal.Decimal `json:"value"`
}

// SegmentCountDTO número de clientes por segmento.
type SegmentCountDTO struct {
	Segment string `json:"segment"`
	Color   string `json:"color"`
	Count   int    `json:"count"`
}

// HistogramDTO distribución de una métrica RFM.
type HistogramDTO struct {
	Title  string      `json:"title"`
	XLabel string      `json:"x_label"`
	Bins   []stats.Bin `json:"bins"`
}

// OverviewDTO respuesta de GET /api/overview.
type OverviewDTO struct {
	Selected         []string          `json:"selected"`
	CustomerCount    int               `json:"customer_count"`
	SegmentCount     int               `json:"segment_count"`
	TotalRevenue     decimal.Decimal   `json:"total_revenue"`
	AvgRecency       *float64          `json:"avg_recency"` // null sin filas
	RevenueBySegment []SegmentValueDTO `json:"revenue_by_segment"`
	Distribution     []SegmentCountDTO `json:"distribution"`
	RecencyHist      HistogramDTO      `json:"recency_histogram"`
	FrequencyHist    HistogramDTO      `json:"frequency_histogram"`
	MonetaryHist     HistogramDTO      `json:"monetary_histogram"`
}

// ── Segment analysis (tab 2) ──────────────────────────────────────────────────

// MetricStatsDTO fila de la tabla de estadística descriptiva.
type MetricStatsDTO struct {
	Metric string   `json:"metric"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	P25    *float64 `json:"p25"`
	P50    *float64 `json:"p50"`
	P75    *float64 `json:"p75"`
	Max    *float64 `json:"max"`
}

// CustomerDTO fila del top de clientes.
type CustomerDTO struct {
	CustomerID string          `json:"customer_id"`
	Recency    int             `json:"recency"`
	Frequency  int             `json:"frequency"`
	Monetary   decimal.Decimal `json:"monetary"`
}

// ScatterPointDTO punto de un gráfico de dispersión con color y tamaño por métrica.
type ScatterPointDTO struct {
	CustomerID string  `json:"customer_id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Color      float64 `json:"color"`
	Size       float64 `json:"size"`
}

// ScatterDTO gráfico de dispersión completo.
type ScatterDTO struct {
	Title      string            `json:"title"`
	XLabel     string            `json:"x_label"`
	YLabel     string            `json:"y_label"`
	ColorLabel string            `json:"color_label"`
	Points     []ScatterPointDTO `json:"points"`
}

// SegmentAnalysisDTO respuesta de GET /api/segments/:name.
type SegmentAnalysisDTO struct {
	Focus             string           `json:"focus"`
	Selected          []string         `json:"selected"`
	Customers         int              `json:"customers"`
	AvgRecency        *float64         `json:"avg_recency"`
	AvgFrequency      *float64         `json:"avg_frequency"`
	AvgMonetary       *float64         `json:"avg_monetary"`
	Stats             []MetricStatsDTO `json:"stats"`
	TopCustomers      []CustomerDTO    `json:"top_customers"`
	RecencyMonetary   ScatterDTO       `json:"recency_vs_monetary"`
	FrequencyMonetary ScatterDTO       `json:"frequency_vs_monetary"`
}

// ── Insights (tab 3) ──────────────────────────────────────────────────────────

// SegmentFindingDTO tarjeta de hallazgos por segmento.
type SegmentFindingDTO struct {
	Segment        string          `json:"segment"`
	Icon           string          `json:"icon"`
	Color          string          `json:"color"`
	Customers      int             `json:"customers"`
	CustomerPct    float64         `json:"customer_pct"`
	Revenue        decimal.Decimal `json:"revenue"`
	RevenuePct     float64         `json:"revenue_pct"`
	HeadlineMetric string          `json:"headline_metric"` // recency | frequency | monetary
	HeadlineValue  *float64        `json:"headline_value"`
	Strategy       []string        `json:"strategy"`
}

// ConcentrationDTO concentración de ingresos en el segmento VIP.
type ConcentrationDTO struct {
	VIPCustomers      int             `json:"vip_customers"`
	VIPCustomerPct    float64         `json:"vip_customer_pct"`
	VIPRevenue        decimal.Decimal `json:"vip_revenue"`
	VIPRevenuePct     float64         `json:"vip_revenue_pct"`
	RegularEquivalent int             `json:"regular_equivalent"` // clientes Core que equivalen a un VIP; 0 si no aplica
}

// ChurnRiskDTO clientes inactivos por encima del umbral.
type ChurnRiskDTO struct {
	ThresholdDays    int             `json:"threshold_days"`
	DormantCustomers int             `json:"dormant_customers"`
	DormantPct       float64         `json:"dormant_pct"`
	WinBackRevenue   decimal.Decimal `json:"win_back_revenue"` // ingresos del segmento Lost
}

// ComparisonRowDTO fila de la tabla comparativa de segmentos.
type ComparisonRowDTO struct {
	Segment       string          `json:"segment"`
	CustomerCount int             `json:"customer_count"`
	AvgRecency    float64         `json:"avg_recency"`
	AvgFrequency  float64         `json:"avg_frequency"`
	AvgMonetary   float64         `json:"avg_monetary"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	RevenuePct    float64         `json:"revenue_pct"`
}

// InsightsDTO respuesta de GET /api/insights (siempre sobre el dataset completo).
type InsightsDTO struct {
	TotalCustomers int                 `json:"total_customers"`
	TotalRevenue   decimal.Decimal     `json:"total_revenue"`
	Findings       []SegmentFindingDTO `json:"findings"`
	Concentration  ConcentrationDTO    `json:"concentration"`
	ChurnRisk      ChurnRiskDTO        `json:"churn_risk"`
	Comparison     []ComparisonRowDTO  `json:"comparison"`
}

// NarrativeDTO resumen ejecutivo generado por el narrador IA.
type NarrativeDTO struct {
	Summary     string    `json:"summary"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ── Explorer 3D (tab 4) ───────────────────────────────────────────────────────

// Point3DDTO cliente en el espacio (Recency, Frequency, log1p(Monetary)).
type Point3DDTO struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Hover string  `json:"hover"`
}

// Series3DDTO una serie por segmento.
type Series3DDTO struct {
	Segment string       `json:"segment"`
	Color   string       `json:"color"`
	Points  []Point3DDTO `json:"points"`
}

// ExplorerDTO respuesta de GET /api/explorer.
type ExplorerDTO struct {
	Selected []string      `json:"selected"`
	XTitle   string        `json:"x_title"`
	YTitle   string        `json:"y_title"`
	ZTitle   string        `json:"z_title"`
	Camera   [3]float64    `json:"camera_eye"`
	Series   []Series3DDTO `json:"series"`
}
