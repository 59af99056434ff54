package segmentation

import (
	"context"
	"fmt"
	"math"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/pkg/format"
)

// Cámara inicial de la vista 3D.
var cameraEye = [3]float64{1.5, 1.5, 1.3}

// ExplorerUseCase nube 3D de clientes (tab 4).
type ExplorerUseCase struct {
	data DatasetProvider
}

// NewExplorerUseCase construye el caso de uso.
func NewExplorerUseCase(data DatasetProvider) *ExplorerUseCase {
	return &ExplorerUseCase{data: data}
}

// Explore arma una serie por segmento presente en la selección, en orden de aparición.
// El eje Z es log1p(Monetary).
func (uc *ExplorerUseCase) Explore(_ context.Context, segments []string) (*dto.ExplorerDTO, error) {
	ds, err := uc.data.Snapshot()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	series := make([]dto.Series3DDTO, 0, 3)
	for _, c := range ds.Filter(segments) {
		i, ok := index[c.SegmentName]
		if !ok {
			i = len(series)
			index[c.SegmentName] = i
			series = append(series, dto.Series3DDTO{
				Segment: c.SegmentName,
				Color:   entity.ColorFor(c.SegmentName),
				Points:  []dto.Point3DDTO{},
			})
		}
		series[i].Points = append(series[i].Points, dto.Point3DDTO{
			X:     float64(c.Recency),
			Y:     float64(c.Frequency),
			Z:     math.Log1p(c.Monetary.InexactFloat64()),
			Hover: hoverText(c),
		})
	}

	return &dto.ExplorerDTO{
		Selected: segments,
		XTitle:   "Recency (days)",
		YTitle:   "Frequency (purchases)",
		ZTitle:   "Monetary (log scale)",
		Camera:   cameraEye,
		Series:   series,
	}, nil
}

func hoverText(c entity.Customer) string {
	return fmt.Sprintf("Customer ID: %s<br>Recency: %d days<br>Frequency: %d purchases<br>Monetary: %s<br>Segment: %s",
		c.CustomerID, c.Recency, c.Frequency, format.Money(c.Monetary), c.SegmentName)
}
