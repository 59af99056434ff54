package csvsource

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/jhoicas/rfm-dashboard/internal/application/report"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

var _ report.CSVEncoder = Encoder{}

// ColSegment columna derivada que se agrega en las exportaciones.
const ColSegment = "SegmentName"

var exportColumns = []string{ColCustomerID, ColRecency, ColFrequency, ColMonetary, ColCluster, ColSegment}

// Encoder escribe clientes con las mismas columnas del archivo de entrada más el segmento.
type Encoder struct{}

// Encode construye un dataframe de texto y lo serializa con el writer de gota.
func (Encoder) Encode(w io.Writer, customers []entity.Customer) error {
	if len(customers) == 0 {
		_, err := io.WriteString(w, strings.Join(exportColumns, ",")+"\n")
		return err
	}

	records := make([][]string, 0, len(customers)+1)
	records = append(records, exportColumns)
	for _, c := range customers {
		records = append(records, []string{
			c.CustomerID,
			strconv.Itoa(c.Recency),
			strconv.Itoa(c.Frequency),
			c.Monetary.StringFixed(2),
			strconv.Itoa(c.Cluster),
			c.SegmentName,
		})
	}

	df := dataframe.LoadRecords(records, dataframe.DetectTypes(false))
	if df.Err != nil {
		return fmt.Errorf("csv: dataframe: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("csv: escribir: %w", err)
	}
	return nil
}
