// Package stats contiene la estadística descriptiva usada por las vistas del dashboard.
// Funciones puras sobre float64; la conversión desde decimal ocurre en la capa de aplicación.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary equivale a la tabla "describe" de una columna numérica.
type Summary struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	P25   float64 `json:"p25"`
	P50   float64 `json:"p50"`
	P75   float64 `json:"p75"`
	Max   float64 `json:"max"`
}

// Describe calcula count, media, desviación estándar muestral (n-1), mínimo,
// cuartiles y máximo. Sin valores todos los campos salvo Count son NaN.
func Describe(values []float64) Summary {
	n := len(values)
	if n == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, P25: nan, P50: nan, P75: nan, Max: nan}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	std := math.NaN()
	if n > 1 {
		std = stat.StdDev(sorted, nil)
	}

	return Summary{
		Count: n,
		Mean:  stat.Mean(sorted, nil),
		Std:   std,
		Min:   floats.Min(sorted),
		P25:   percentileSorted(sorted, 0.25),
		P50:   percentileSorted(sorted, 0.50),
		P75:   percentileSorted(sorted, 0.75),
		Max:   floats.Max(sorted),
	}
}

// Percentile calcula el percentil p (0..1) con interpolación lineal entre rangos.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return percentileSorted(sorted, p)
}

// percentileSorted: interpolación lineal (método por defecto de las librerías de dataframes).
// stat.Quantile de gonum solo ofrece Empirical y LinInterp, que no coinciden con este método.
func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Mean devuelve la media aritmética o NaN si no hay valores.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

// Bin es un intervalo del histograma. Upper es exclusivo salvo en el último bin.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Histogram reparte los valores en nbins intervalos de igual ancho entre el mínimo
// y el máximo. Si todos los valores son iguales devuelve un único bin.
func Histogram(values []float64, nbins int) []Bin {
	if len(values) == 0 || nbins <= 0 {
		return []Bin{}
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return []Bin{{Lower: lo, Upper: hi, Count: len(values)}}
	}

	width := (hi - lo) / float64(nbins)
	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i].Lower = lo + float64(i)*width
		bins[i].Upper = lo + float64(i+1)*width
	}
	bins[nbins-1].Upper = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= nbins {
			idx = nbins - 1
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx].Count++
	}
	return bins
}

// Clip limita cada valor a upper (no modifica el slice de entrada).
func Clip(values []float64, upper float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Min(v, upper)
	}
	return out
}

// Log1p aplica ln(1+x) a cada valor.
func Log1p(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Log1p(v)
	}
	return out
}
