package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

func sampleDataset() *entity.Dataset {
	return &entity.Dataset{Customers: []entity.Customer{
		entity.NewCustomer("a", 400, 1, decimal.NewFromInt(10), 0),
		entity.NewCustomer("b", 10, 5, decimal.NewFromInt(100), 1),
		entity.NewCustomer("c", 2, 90, decimal.NewFromInt(9000), 2),
		entity.NewCustomer("d", 30, 3, decimal.NewFromInt(50), 1),
		entity.NewCustomer("e", 5, 2, decimal.NewFromInt(20), 7),
	}}
}

func TestNewCustomer_DerivaSegmento(t *testing.T) {
	c := entity.NewCustomer("x", 1, 1, decimal.Zero, 2)
	assert.Equal(t, entity.SegmentVIP, c.SegmentName)
}

func TestNewCustomer_ClusterSinMapeo(t *testing.T) {
	c := entity.NewCustomer("x", 1, 1, decimal.Zero, 9)
	assert.Empty(t, c.SegmentName, "un cluster desconocido no recibe etiqueta")
}

func TestDataset_Filter_MantieneOrden(t *testing.T) {
	ds := sampleDataset()
	rows := ds.Filter([]string{entity.SegmentCore, entity.SegmentVIP})

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.CustomerID)
	}
	assert.Equal(t, []string{"b", "c", "d"}, ids)
}

func TestDataset_Filter_SeleccionVacia(t *testing.T) {
	assert.Empty(t, sampleDataset().Filter(nil))
}

func TestDataset_Len_IncluyeSinEtiqueta(t *testing.T) {
	assert.Equal(t, 5, sampleDataset().Len())
}

func TestSegmentCatalog(t *testing.T) {
	assert.Equal(t, []string{entity.SegmentLost, entity.SegmentCore, entity.SegmentVIP}, entity.SegmentNames())

	name, ok := entity.LabelFor(1)
	assert.True(t, ok)
	assert.Equal(t, entity.SegmentCore, name)

	assert.Equal(t, "gold", entity.ColorFor(entity.SegmentVIP))
	assert.Equal(t, "gray", entity.ColorFor("otro"))
}
