package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa una fila del dataset RFM ya segmentado.
// Los registros son de solo lectura: se producen upstream y nunca se modifican aquí.
type Customer struct {
	CustomerID  string
	Recency     int             // días desde la última compra
	Frequency   int             // número de compras
	Monetary    decimal.Decimal // gasto acumulado
	Cluster     int
	SegmentName string // derivado de Cluster; vacío si el cluster no está mapeado
}

// NewCustomer construye el registro y deriva SegmentName del catálogo.
func NewCustomer(id string, recency, frequency int, monetary decimal.Decimal, cluster int) Customer {
	name, _ := LabelFor(cluster)
	return Customer{
		CustomerID:  id,
		Recency:     recency,
		Frequency:   frequency,
		Monetary:    monetary,
		Cluster:     cluster,
		SegmentName: name,
	}
}

// Dataset es un snapshot inmutable del archivo cargado.
type Dataset struct {
	Customers []Customer
	Source    string
	LoadedAt  time.Time
}

// Len devuelve el número de registros (incluye clusters sin etiqueta).
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Customers)
}

// Filter conserva las filas cuyo segmento está en names, respetando el orden original.
// Una selección vacía devuelve un slice vacío.
func (d *Dataset) Filter(names []string) []Customer {
	if d == nil || len(names) == 0 {
		return []Customer{}
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	out := make([]Customer, 0, len(d.Customers))
	for _, c := range d.Customers {
		if _, ok := set[c.SegmentName]; ok {
			out = append(out, c)
		}
	}
	return out
}

// InSegment devuelve las filas de un único segmento.
func (d *Dataset) InSegment(name string) []Customer {
	return d.Filter([]string{name})
}

// OnlySegment filtra un slice ya filtrado por un segmento.
func OnlySegment(rows []Customer, name string) []Customer {
	out := make([]Customer, 0)
	for _, c := range rows {
		if c.SegmentName == name {
			out = append(out, c)
		}
	}
	return out
}
