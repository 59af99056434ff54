// Package csvsource implementa repository.CustomerSource sobre el CSV producido por el
// pipeline de segmentación (columnas CustomerID, Recency, Frequency, Monetary, Cluster).
package csvsource

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/rfm-dashboard/internal/domain"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/domain/repository"
)

var _ repository.CustomerSource = (*Source)(nil)

// Columnas obligatorias; el resto del archivo se ignora.
const (
	ColCustomerID = "CustomerID"
	ColRecency    = "Recency"
	ColFrequency  = "Frequency"
	ColMonetary   = "Monetary"
	ColCluster    = "Cluster"
)

var requiredColumns = []string{ColCustomerID, ColRecency, ColFrequency, ColMonetary, ColCluster}

// Source lee el dataset desde un archivo CSV.
type Source struct {
	path     string
	encoding string
}

// New construye la fuente. encoding: "utf-8" (por defecto) o "latin1".
func New(path, encoding string) *Source {
	return &Source{path: path, encoding: strings.ToLower(encoding)}
}

// Name devuelve la ruta del archivo.
func (s *Source) Name() string { return s.path }

// Path expone la ruta (la usa el watcher).
func (s *Source) Path() string { return s.path }

// Load abre el archivo y lo decodifica.
func (s *Source) Load(ctx context.Context) ([]entity.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir %s: %v", domain.ErrDataSource, s.path, err)
	}
	defer f.Close()

	r, err := decodingReader(f, s.encoding)
	if err != nil {
		return nil, err
	}
	return Decode(r)
}

func decodingReader(r io.Reader, encoding string) (io.Reader, error) {
	switch encoding {
	case "", "utf-8", "utf8":
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder()), nil
	case "latin1", "iso-8859-1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: codificación no soportada %q", domain.ErrDataSource, encoding)
	}
}

// Decode convierte el contenido CSV en registros de dominio.
// Las columnas numéricas se leen como float para aceptar enteros escritos como "12.0";
// una celda vacía o no numérica es un error.
func Decode(r io.Reader) ([]entity.Customer, error) {
	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(false),
		dataframe.WithTypes(map[string]series.Type{
			ColCustomerID: series.String,
			ColRecency:    series.Float,
			ColFrequency:  series.Float,
			ColMonetary:   series.String,
			ColCluster:    series.Float,
		}),
	)
	if err := df.Error(); err != nil {
		return nil, fmt.Errorf("%w: leer CSV: %v", domain.ErrDataSource, err)
	}

	present := make(map[string]bool, df.Ncol())
	for _, n := range df.Names() {
		present[n] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return nil, fmt.Errorf("%w: falta la columna %s", domain.ErrDataSource, col)
		}
	}

	ids := df.Col(ColCustomerID).Records()
	recency := df.Col(ColRecency).Float()
	frequency := df.Col(ColFrequency).Float()
	monetary := df.Col(ColMonetary).Records()
	cluster := df.Col(ColCluster).Float()

	customers := make([]entity.Customer, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		line := i + 2 // encabezado + base 1
		rec, err := asInt(recency[i], ColRecency, line)
		if err != nil {
			return nil, err
		}
		freq, err := asInt(frequency[i], ColFrequency, line)
		if err != nil {
			return nil, err
		}
		cl, err := asInt(cluster[i], ColCluster, line)
		if err != nil {
			return nil, err
		}
		money, err := decimal.NewFromString(strings.TrimSpace(monetary[i]))
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: %s inválido %q", domain.ErrDataSource, line, ColMonetary, monetary[i])
		}
		customers = append(customers, entity.NewCustomer(ids[i], rec, freq, money, cl))
	}
	return customers, nil
}

func asInt(v float64, col string, line int) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("%w: línea %d: %s no es un entero", domain.ErrDataSource, line, col)
	}
	return int(v), nil
}
