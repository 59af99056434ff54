package report_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/application/report"
	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/internal/domain"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

type memorySource struct{ rows []entity.Customer }

func (m memorySource) Name() string { return "memory" }

func (m memorySource) Load(context.Context) ([]entity.Customer, error) { return m.rows, nil }

type fakePDF struct {
	got *report.ComparisonReport
	err error
}

func (f *fakePDF) GenerateComparisonPDF(_ context.Context, r *report.ComparisonReport) ([]byte, error) {
	f.got = r
	return []byte("%PDF-fake"), f.err
}

type fakeXLSX struct {
	customers  []entity.Customer
	comparison []dto.ComparisonRowDTO
}

func (f *fakeXLSX) GenerateCustomersXLSX(_ context.Context, c []entity.Customer, cmp []dto.ComparisonRowDTO) ([]byte, error) {
	f.customers, f.comparison = c, cmp
	return []byte("PK"), nil
}

type fakeCSV struct{ n int }

func (f *fakeCSV) Encode(w io.Writer, customers []entity.Customer) error {
	f.n = len(customers)
	_, err := fmt.Fprintf(w, "rows=%d\n", len(customers))
	return err
}

func newExport(t *testing.T, loaded bool) (*report.ExportUseCase, *fakePDF, *fakeXLSX, *fakeCSV) {
	t.Helper()
	d := decimal.RequireFromString
	store := segmentation.NewStore(memorySource{rows: []entity.Customer{
		entity.NewCustomer("C1", 10, 5, d("100"), 1),
		entity.NewCustomer("C2", 500, 1, d("20"), 0),
		entity.NewCustomer("C3", 5, 40, d("5000"), 2),
	}})
	if loaded {
		_, err := store.Reload(context.Background())
		require.NoError(t, err)
	}
	pdf, xlsx, csv := &fakePDF{}, &fakeXLSX{}, &fakeCSV{}
	uc := report.NewExportUseCase(store, segmentation.NewInsightsUseCase(store, segmentation.DefaultChurnDays), pdf, xlsx, csv, "Retail RFM")
	return uc, pdf, xlsx, csv
}

func assertName(t *testing.T, prefix, ext, got string) {
	t.Helper()
	re := regexp.MustCompile(fmt.Sprintf(`^%s-\d{8}-[0-9a-f]{8}\.%s$`, prefix, ext))
	assert.Regexp(t, re, got)
}

func TestExport_ComparisonPDF(t *testing.T) {
	uc, pdf, _, _ := newExport(t, true)

	f, err := uc.ComparisonPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, report.ContentTypePDF, f.ContentType)
	assertName(t, "segment-comparison", "pdf", f.Name)
	require.NotNil(t, pdf.got)
	assert.Equal(t, "Retail RFM", pdf.got.Footer)
	assert.Equal(t, 3, pdf.got.Dataset.Rows)
	assert.Len(t, pdf.got.Insights.Comparison, 3)
}

func TestExport_ComparisonPDF_ErrorDelGenerador(t *testing.T) {
	uc, pdf, _, _ := newExport(t, true)
	pdf.err = errors.New("fuente no encontrada")

	_, err := uc.ComparisonPDF(context.Background())
	assert.ErrorContains(t, err, "report: pdf")
}

func TestExport_CustomersXLSX_RespetaFiltro(t *testing.T) {
	uc, _, xlsx, _ := newExport(t, true)

	f, err := uc.CustomersXLSX(context.Background(), []string{entity.SegmentVIP})
	require.NoError(t, err)

	assertName(t, "customers", "xlsx", f.Name)
	assert.Equal(t, report.ContentTypeXLSX, f.ContentType)
	require.Len(t, xlsx.customers, 1)
	assert.Equal(t, "C3", xlsx.customers[0].CustomerID)
	require.Len(t, xlsx.comparison, 1)
	assert.Equal(t, entity.SegmentVIP, xlsx.comparison[0].Segment)
}

func TestExport_CustomersCSV(t *testing.T) {
	uc, _, _, csv := newExport(t, true)

	f, err := uc.CustomersCSV(context.Background(), []string{})
	require.NoError(t, err)

	assertName(t, "customers", "csv", f.Name)
	assert.Equal(t, 0, csv.n)
	assert.Equal(t, "rows=0\n", string(f.Data))
}

func TestExport_SinDataset(t *testing.T) {
	uc, _, _, _ := newExport(t, false)

	_, err := uc.CustomersCSV(context.Background(), entity.SegmentNames())
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
	_, err = uc.ComparisonPDF(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}
