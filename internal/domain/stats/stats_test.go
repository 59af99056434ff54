package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rfm-dashboard/internal/domain/stats"
)

func TestDescribe_ValoresConocidos(t *testing.T) {
	s := stats.Describe([]float64{4, 1, 3, 2})

	assert.Equal(t, 4, s.Count)
	assert.InDelta(t, 2.5, s.Mean, 1e-9)
	assert.InDelta(t, 1.2909944, s.Std, 1e-6, "desviación muestral (n-1)")
	assert.Equal(t, 1.0, s.Min)
	assert.InDelta(t, 1.75, s.P25, 1e-9)
	assert.InDelta(t, 2.5, s.P50, 1e-9)
	assert.InDelta(t, 3.25, s.P75, 1e-9)
	assert.Equal(t, 4.0, s.Max)
}

func TestDescribe_SinValores(t *testing.T) {
	s := stats.Describe(nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Max))
}

func TestDescribe_UnValor_StdNaN(t *testing.T) {
	s := stats.Describe([]float64{7})
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 7.0, s.Mean)
	assert.True(t, math.IsNaN(s.Std))
	assert.Equal(t, 7.0, s.P25)
	assert.Equal(t, 7.0, s.P75)
}

func TestPercentile_NoModificaEntrada(t *testing.T) {
	in := []float64{10, 0, 5}
	assert.InDelta(t, 5, stats.Percentile(in, 0.5), 1e-9)
	assert.Equal(t, []float64{10, 0, 5}, in)
}

func TestHistogram_BinsIgualAncho(t *testing.T) {
	bins := stats.Histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 5)
	require.Len(t, bins, 5)

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 11, total, "todos los valores deben caer en algún bin")
	assert.Equal(t, 0.0, bins[0].Lower)
	assert.Equal(t, 10.0, bins[4].Upper)
	assert.Equal(t, 3, bins[4].Count, "el último bin es cerrado por la derecha")
}

func TestHistogram_ValoresIguales(t *testing.T) {
	bins := stats.Histogram([]float64{3, 3, 3}, 10)
	require.Len(t, bins, 1)
	assert.Equal(t, 3, bins[0].Count)
}

func TestHistogram_Vacio(t *testing.T) {
	assert.Empty(t, stats.Histogram(nil, 10))
}

func TestClip(t *testing.T) {
	assert.Equal(t, []float64{1, 50, 50}, stats.Clip([]float64{1, 50, 120}, 50))
}

func TestLog1p(t *testing.T) {
	out := stats.Log1p([]float64{0, math.E - 1})
	assert.InDelta(t, 0, out[0], 1e-12)
	assert.InDelta(t, 1, out[1], 1e-12)
}
