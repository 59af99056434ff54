package csvsource_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/csvsource"
)

func TestEncoder_Encode(t *testing.T) {
	rows := []entity.Customer{
		entity.NewCustomer("12346", 326, 2, decimal.RequireFromString("77183.6"), 2),
		entity.NewCustomer("12347", 2, 7, decimal.RequireFromString("4310"), 1),
	}

	var buf bytes.Buffer
	require.NoError(t, csvsource.Encoder{}.Encode(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "CustomerID,Recency,Frequency,Monetary,Cluster,SegmentName", lines[0])
	assert.Equal(t, "12346,326,2,77183.60,2,VIP Champions", lines[1])
	assert.Equal(t, "12347,2,7,4310.00,1,Core Customers", lines[2])
}

func TestEncoder_IdaYVueltaConDecode(t *testing.T) {
	rows := []entity.Customer{entity.NewCustomer("A1", 10, 3, decimal.RequireFromString("99.90"), 0)}

	var buf bytes.Buffer
	require.NoError(t, csvsource.Encoder{}.Encode(&buf, rows))

	got, err := csvsource.Decode(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "A1", got[0].CustomerID)
	assert.Equal(t, entity.SegmentLost, got[0].SegmentName)
	assert.True(t, got[0].Monetary.Equal(decimal.RequireFromString("99.9")))
}

func TestEncoder_Vacio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, csvsource.Encoder{}.Encode(&buf, nil))
	assert.Equal(t, "CustomerID,Recency,Frequency,Monetary,Cluster,SegmentName\n", buf.String())
}
