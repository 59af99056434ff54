package xlsx_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/xlsx"
)

func TestGenerateCustomersXLSX(t *testing.T) {
	customers := []entity.Customer{
		entity.NewCustomer("12346", 326, 2, decimal.RequireFromString("77183.60"), 2),
		entity.NewCustomer("12347", 2, 7, decimal.RequireFromString("4310.00"), 1),
	}
	comparison := []dto.ComparisonRowDTO{
		{Segment: entity.SegmentCore, CustomerCount: 1, AvgRecency: 2, AvgFrequency: 7, AvgMonetary: 4310, TotalRevenue: decimal.NewFromInt(4310), RevenuePct: 5.3},
	}

	data, err := xlsx.NewWorkbookGenerator().GenerateCustomersXLSX(context.Background(), customers, comparison)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{xlsx.SheetCustomers, xlsx.SheetComparison}, f.GetSheetList())

	rows, err := f.GetRows(xlsx.SheetCustomers)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "CustomerID", rows[0][0])
	assert.Equal(t, "12346", rows[1][0])
	assert.Equal(t, "VIP Champions", rows[1][5])

	segment, err := f.GetCellValue(xlsx.SheetComparison, "A2")
	require.NoError(t, err)
	assert.Equal(t, entity.SegmentCore, segment)
	count, err := f.GetCellValue(xlsx.SheetComparison, "B2")
	require.NoError(t, err)
	assert.Equal(t, "1", count)
}

func TestGenerateCustomersXLSX_Vacio(t *testing.T) {
	data, err := xlsx.NewWorkbookGenerator().GenerateCustomersXLSX(context.Background(), nil, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(xlsx.SheetCustomers)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
