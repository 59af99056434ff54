package segmentation_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/internal/domain"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

var allSegments = []string{entity.SegmentLost, entity.SegmentCore, entity.SegmentVIP}

// ── Sidebar ───────────────────────────────────────────────────────────────────

func TestSidebar_TotalesSinFiltro(t *testing.T) {
	uc := segmentation.NewSidebarUseCase(loadedStore(t))

	got, err := uc.Sidebar(context.Background(), []string{entity.SegmentVIP})
	require.NoError(t, err)

	assert.Equal(t, 6, got.TotalCustomers)
	assertMoney(t, "5500", got.TotalRevenue)
	assert.InDelta(t, 916.67, got.AvgCustomerValue.InexactFloat64(), 0.01)
	require.Len(t, got.Options, 3)
	assert.False(t, got.Options[0].Selected)
	assert.True(t, got.Options[2].Selected)
	assert.Equal(t, "gold", got.Options[2].Color)
	assert.Equal(t, 6, got.Dataset.Rows)
}

func TestSidebar_SinDataset(t *testing.T) {
	uc := segmentation.NewSidebarUseCase(segmentation.NewStore(&fakeSource{}))

	_, err := uc.Sidebar(context.Background(), allSegments)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

// ── Overview ──────────────────────────────────────────────────────────────────

func TestOverview_TodosLosSegmentos(t *testing.T) {
	uc := segmentation.NewOverviewUseCase(loadedStore(t))

	got, err := uc.Overview(context.Background(), allSegments)
	require.NoError(t, err)

	assert.Equal(t, 5, got.CustomerCount, "el cluster sin etiqueta no entra en la selección")
	assert.Equal(t, 3, got.SegmentCount)
	assertMoney(t, "5450", got.TotalRevenue)
	require.NotNil(t, got.AvgRecency)
	assert.Equal(t, 197.0, *got.AvgRecency)

	require.Len(t, got.RevenueBySegment, 3)
	assert.Equal(t, entity.SegmentCore, got.RevenueBySegment[0].Segment)
	assertMoney(t, "400", got.RevenueBySegment[0].Value)
	assert.Equal(t, entity.SegmentLost, got.RevenueBySegment[1].Segment)
	assert.Equal(t, entity.SegmentVIP, got.RevenueBySegment[2].Segment)

	require.Len(t, got.Distribution, 3)
	assert.Equal(t, []string{entity.SegmentCore, entity.SegmentLost, entity.SegmentVIP},
		[]string{got.Distribution[0].Segment, got.Distribution[1].Segment, got.Distribution[2].Segment})
	assert.Equal(t, 2, got.Distribution[0].Count)
	assert.Equal(t, 1, got.Distribution[2].Count)

	assert.Len(t, got.RecencyHist.Bins, 50)
	assert.Len(t, got.FrequencyHist.Bins, 30)
	assert.Len(t, got.MonetaryHist.Bins, 50)
	total := 0
	for _, b := range got.MonetaryHist.Bins {
		total += b.Count
	}
	assert.Equal(t, 5, total)
}

func TestOverview_TopeFrequencyYMonetary(t *testing.T) {
	rows := []entity.Customer{
		entity.NewCustomer("A", 1, 10, money("500"), 1),
		entity.NewCustomer("B", 2, 200, money("25000"), 2),
	}
	store := segmentation.NewStore(&fakeSource{rows: rows})
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	got, err := segmentation.NewOverviewUseCase(store).Overview(context.Background(), allSegments)
	require.NoError(t, err)

	freq := got.FrequencyHist.Bins
	assert.Equal(t, 50.0, freq[len(freq)-1].Upper)
	mon := got.MonetaryHist.Bins
	assert.Equal(t, 10000.0, mon[len(mon)-1].Upper)
}

func TestOverview_SeleccionVacia(t *testing.T) {
	uc := segmentation.NewOverviewUseCase(loadedStore(t))

	got, err := uc.Overview(context.Background(), []string{})
	require.NoError(t, err)

	assert.Zero(t, got.CustomerCount)
	assert.Zero(t, got.SegmentCount)
	assert.True(t, got.TotalRevenue.IsZero())
	assert.Nil(t, got.AvgRecency)
	assert.Empty(t, got.RevenueBySegment)
	assert.Empty(t, got.RecencyHist.Bins)
}

// ── Segment analysis ──────────────────────────────────────────────────────────

func TestAnalyze_FocoPorDefecto(t *testing.T) {
	uc := segmentation.NewSegmentUseCase(loadedStore(t))

	got, err := uc.Analyze(context.Background(), allSegments, "")
	require.NoError(t, err)

	assert.Equal(t, entity.SegmentLost, got.Focus)
	assert.Equal(t, 2, got.Customers)
	assert.Equal(t, 475.0, *got.AvgRecency)
	assert.Equal(t, 1.5, *got.AvgFrequency)
	assert.Equal(t, 25.0, *got.AvgMonetary)

	require.Len(t, got.Stats, 3)
	assert.Equal(t, "Recency", got.Stats[0].Metric)
	assert.Equal(t, 2, got.Stats[0].Count)
	assert.Equal(t, 450.0, *got.Stats[0].Min)
	assert.Equal(t, 35.36, *got.Stats[0].Std)

	require.Len(t, got.TopCustomers, 2)
	assert.Equal(t, "C5", got.TopCustomers[0].CustomerID)
	assert.Equal(t, "C2", got.TopCustomers[1].CustomerID)

	require.Len(t, got.RecencyMonetary.Points, 2)
	p := got.RecencyMonetary.Points[0]
	assert.Equal(t, "C2", p.CustomerID)
	assert.Equal(t, 500.0, p.X)
	assert.Equal(t, 20.0, p.Y)
	assert.Equal(t, 1.0, p.Color)
	q := got.FrequencyMonetary.Points[0]
	assert.Equal(t, 1.0, q.X)
	assert.Equal(t, 500.0, q.Color)
}

func TestAnalyze_FocoExcluidoPorFiltro(t *testing.T) {
	uc := segmentation.NewSegmentUseCase(loadedStore(t))

	got, err := uc.Analyze(context.Background(), []string{entity.SegmentVIP}, entity.SegmentCore)
	require.NoError(t, err)

	assert.Zero(t, got.Customers)
	assert.Nil(t, got.AvgRecency)
	assert.Nil(t, got.Stats[2].Mean)
	assert.Zero(t, got.Stats[2].Count)
	assert.Empty(t, got.TopCustomers)
	assert.Empty(t, got.RecencyMonetary.Points)
}

func TestAnalyze_FocoDesconocido(t *testing.T) {
	uc := segmentation.NewSegmentUseCase(loadedStore(t))

	_, err := uc.Analyze(context.Background(), allSegments, "Whales")
	assert.ErrorIs(t, err, domain.ErrUnknownSegment)
}

func TestAnalyze_TopDiezEstableEnEmpates(t *testing.T) {
	rows := make([]entity.Customer, 0, 12)
	for i := 0; i < 12; i++ {
		rows = append(rows, entity.NewCustomer(string(rune('a'+i)), i, 1, money("10"), 2))
	}
	rows[11] = entity.NewCustomer("top", 1, 1, money("99"), 2)
	store := segmentation.NewStore(&fakeSource{rows: rows})
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	got, err := segmentation.NewSegmentUseCase(store).Analyze(context.Background(), allSegments, entity.SegmentVIP)
	require.NoError(t, err)

	require.Len(t, got.TopCustomers, 10)
	assert.Equal(t, "top", got.TopCustomers[0].CustomerID)
	assert.Equal(t, "a", got.TopCustomers[1].CustomerID)
	assert.Equal(t, "i", got.TopCustomers[9].CustomerID)
}

// ── Insights ──────────────────────────────────────────────────────────────────

func TestInsights_Hallazgos(t *testing.T) {
	uc := segmentation.NewInsightsUseCase(loadedStore(t), 0)

	got, err := uc.Insights(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, got.TotalCustomers)
	assertMoney(t, "5500", got.TotalRevenue)
	require.Len(t, got.Findings, 3)

	lost, core, vip := got.Findings[0], got.Findings[1], got.Findings[2]
	assert.Equal(t, entity.SegmentLost, lost.Segment)
	assert.Equal(t, 33.3, lost.CustomerPct)
	assert.Equal(t, 0.9, lost.RevenuePct)
	assert.Equal(t, "recency", lost.HeadlineMetric)
	assert.Equal(t, 475.0, *lost.HeadlineValue)

	assert.Equal(t, 7.3, core.RevenuePct)
	assert.Equal(t, 6.5, *core.HeadlineValue)
	assert.Contains(t, core.Strategy, "PROTECT THIS SEGMENT!")

	assert.Equal(t, 16.7, vip.CustomerPct)
	assert.Equal(t, 90.9, vip.RevenuePct)
	assert.Equal(t, 5000.0, *vip.HeadlineValue)
}

func TestInsights_InsightsCriticos(t *testing.T) {
	uc := segmentation.NewInsightsUseCase(loadedStore(t), 0)

	got, err := uc.Insights(context.Background())
	require.NoError(t, err)

	c := got.Concentration
	assert.Equal(t, 1, c.VIPCustomers)
	assert.Equal(t, 16.7, c.VIPCustomerPct)
	assertMoney(t, "5000", c.VIPRevenue)
	assert.Equal(t, 25, c.RegularEquivalent)

	r := got.ChurnRisk
	assert.Equal(t, segmentation.DefaultChurnDays, r.ThresholdDays)
	assert.Equal(t, 2, r.DormantCustomers)
	assert.Equal(t, 33.3, r.DormantPct)
	assertMoney(t, "50", r.WinBackRevenue)
}

func TestInsights_UmbralChurnConfigurable(t *testing.T) {
	uc := segmentation.NewInsightsUseCase(loadedStore(t), 480)

	got, err := uc.Insights(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.ChurnRisk.DormantCustomers)
	assert.Equal(t, 480, got.ChurnRisk.ThresholdDays)
}

func TestComparison(t *testing.T) {
	rows := segmentation.Comparison(sampleRows())

	require.Len(t, rows, 3)
	assert.Equal(t, entity.SegmentCore, rows[0].Segment)
	assert.Equal(t, 2, rows[0].CustomerCount)
	assert.Equal(t, 15.0, rows[0].AvgRecency)
	assert.Equal(t, 6.5, rows[0].AvgFrequency)
	assert.Equal(t, 200.0, rows[0].AvgMonetary)
	assertMoney(t, "400", rows[0].TotalRevenue)
	assert.Equal(t, 7.3, rows[0].RevenuePct)
	assert.Equal(t, 0.9, rows[1].RevenuePct)
	assert.Equal(t, 91.7, rows[2].RevenuePct)

	pct := 0.0
	for _, r := range rows {
		pct += r.RevenuePct
	}
	assert.InDelta(t, 100, pct, 0.2)
}

func TestInsights_SinVIPNiCore(t *testing.T) {
	rows := []entity.Customer{entity.NewCustomer("L", 600, 1, money("5"), 0)}
	store := segmentation.NewStore(&fakeSource{rows: rows})
	_, err := store.Reload(context.Background())
	require.NoError(t, err)

	got, err := segmentation.NewInsightsUseCase(store, 0).Insights(context.Background())
	require.NoError(t, err)
	assert.Zero(t, got.Concentration.RegularEquivalent)
	assert.Nil(t, got.Findings[2].HeadlineValue)
	assert.Equal(t, 100.0, got.ChurnRisk.DormantPct)
}

// ── Explorer ──────────────────────────────────────────────────────────────────

func TestExplore_SeriesEnOrdenDeAparicion(t *testing.T) {
	uc := segmentation.NewExplorerUseCase(loadedStore(t))

	got, err := uc.Explore(context.Background(), allSegments)
	require.NoError(t, err)

	require.Len(t, got.Series, 3)
	assert.Equal(t, entity.SegmentCore, got.Series[0].Segment)
	assert.Equal(t, entity.SegmentLost, got.Series[1].Segment)
	assert.Equal(t, entity.SegmentVIP, got.Series[2].Segment)
	assert.Equal(t, [3]float64{1.5, 1.5, 1.3}, got.Camera)
	assert.Equal(t, "Monetary (log scale)", got.ZTitle)

	p := got.Series[0].Points[0]
	assert.Equal(t, 10.0, p.X)
	assert.Equal(t, 5.0, p.Y)
	assert.InDelta(t, math.Log1p(100), p.Z, 1e-9)
	assert.Equal(t,
		"Customer ID: C1<br>Recency: 10 days<br>Frequency: 5 purchases<br>Monetary: $100<br>Segment: Core Customers",
		p.Hover)
}

func TestExplore_Filtrado(t *testing.T) {
	uc := segmentation.NewExplorerUseCase(loadedStore(t))

	got, err := uc.Explore(context.Background(), []string{entity.SegmentVIP})
	require.NoError(t, err)
	require.Len(t, got.Series, 1)
	assert.Equal(t, "gold", got.Series[0].Color)

	got, err = uc.Explore(context.Background(), []string{})
	require.NoError(t, err)
	assert.Empty(t, got.Series)
}
