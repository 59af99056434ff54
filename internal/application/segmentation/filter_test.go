package segmentation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/internal/domain"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

func TestParseSegments(t *testing.T) {
	all := []string{entity.SegmentLost, entity.SegmentCore, entity.SegmentVIP}

	tests := []struct {
		name     string
		values   []string
		explicit bool
		want     []string
	}{
		{"sin parámetros → todos", nil, false, all},
		{"selección explícita vacía", nil, true, []string{}},
		{"orden del catálogo", []string{entity.SegmentVIP, entity.SegmentLost}, true, []string{entity.SegmentLost, entity.SegmentVIP}},
		{"duplicados colapsados", []string{entity.SegmentCore, entity.SegmentCore}, false, []string{entity.SegmentCore}},
		{"valores vacíos ignorados", []string{"", entity.SegmentVIP}, true, []string{entity.SegmentVIP}},
		{"solo vacíos sin sel → todos", []string{""}, false, all},
		{"solo vacíos con sel → vacía", []string{"", ""}, true, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := segmentation.ParseSegments(tt.values, tt.explicit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSegments_Desconocido(t *testing.T) {
	_, err := segmentation.ParseSegments([]string{"Whales"}, true)
	assert.ErrorIs(t, err, domain.ErrUnknownSegment)
}

func TestResolveFocus(t *testing.T) {
	seg, err := segmentation.ResolveFocus("")
	require.NoError(t, err)
	assert.Equal(t, entity.SegmentLost, seg.Name)

	seg, err = segmentation.ResolveFocus(entity.SegmentVIP)
	require.NoError(t, err)
	assert.Equal(t, 2, seg.Cluster)

	_, err = segmentation.ResolveFocus("lost customers")
	assert.ErrorIs(t, err, domain.ErrUnknownSegment)
}
