package segmentation

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

// SidebarUseCase métricas globales del sidebar. No depende del filtro.
type SidebarUseCase struct {
	data DatasetProvider
}

// NewSidebarUseCase construye el caso de uso.
func NewSidebarUseCase(data DatasetProvider) *SidebarUseCase {
	return &SidebarUseCase{data: data}
}

// Sidebar calcula totales sobre el dataset completo y marca los segmentos seleccionados.
func (uc *SidebarUseCase) Sidebar(_ context.Context, selected []string) (*dto.SidebarDTO, error) {
	ds, err := uc.data.Snapshot()
	if err != nil {
		return nil, err
	}

	total := sumMonetary(ds.Customers)
	avg := decimal.Zero
	if n := ds.Len(); n > 0 {
		avg = total.Div(decimal.NewFromInt(int64(n)))
	}

	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}
	options := make([]dto.SegmentOptionDTO, 0, 3)
	for _, seg := range entity.Segments() {
		options = append(options, dto.SegmentOptionDTO{
			Name:     seg.Name,
			Color:    seg.Color,
			Selected: chosen[seg.Name],
		})
	}

	return &dto.SidebarDTO{
		TotalCustomers:   ds.Len(),
		TotalRevenue:     total,
		AvgCustomerValue: avg,
		Options:          options,
		Dataset:          DatasetInfo(ds),
	}, nil
}

// DatasetInfo resume el snapshot para /health y la recarga.
func DatasetInfo(ds *entity.Dataset) dto.DatasetInfoDTO {
	if ds == nil {
		return dto.DatasetInfoDTO{}
	}
	return dto.DatasetInfoDTO{
		Source:   ds.Source,
		Rows:     ds.Len(),
		LoadedAt: ds.LoadedAt,
	}
}
