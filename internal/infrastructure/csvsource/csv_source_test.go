package csvsource_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/rfm-dashboard/internal/domain"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/csvsource"
)

const sampleCSV = `CustomerID,Recency,Frequency,Monetary,Cluster,R_Score
12346.0,325,2,77556.46,1,1
12347.0,2,7,4310.00,2,5
12348.0,75,4,1797.24,0,2
12349.0,18,1,1757.55,5,4
`

func TestDecode_ArchivoValido(t *testing.T) {
	customers, err := csvsource.Decode(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, customers, 4)

	first := customers[0]
	assert.Equal(t, "12346.0", first.CustomerID)
	assert.Equal(t, 325, first.Recency)
	assert.Equal(t, 2, first.Frequency)
	assert.Equal(t, "77556.46", first.Monetary.StringFixed(2))
	assert.Equal(t, entity.SegmentCore, first.SegmentName)

	assert.Equal(t, entity.SegmentVIP, customers[1].SegmentName)
	assert.Equal(t, entity.SegmentLost, customers[2].SegmentName)
	assert.Empty(t, customers[3].SegmentName, "cluster 5 no tiene etiqueta")
}

func TestDecode_EnterosConDecimalCero(t *testing.T) {
	in := "CustomerID,Recency,Frequency,Monetary,Cluster\nA,10.0,3.0,12.5,2.0\n"
	customers, err := csvsource.Decode(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, 10, customers[0].Recency)
	assert.Equal(t, 2, customers[0].Cluster)
}

func TestDecode_FaltaColumna(t *testing.T) {
	in := "CustomerID,Recency,Frequency,Cluster\nA,1,1,0\n"
	_, err := csvsource.Decode(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataSource)
	assert.Contains(t, err.Error(), "Monetary")
}

func TestDecode_CeldaNoNumerica(t *testing.T) {
	in := "CustomerID,Recency,Frequency,Monetary,Cluster\nA,abc,1,10,0\n"
	_, err := csvsource.Decode(strings.NewReader(in))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDataSource)
	assert.Contains(t, err.Error(), "línea 2")
}

func TestDecode_MonetaryInvalido(t *testing.T) {
	in := "CustomerID,Recency,Frequency,Monetary,Cluster\nA,1,1,diez,0\n"
	_, err := csvsource.Decode(strings.NewReader(in))
	assert.ErrorIs(t, err, domain.ErrDataSource)
}

func TestLoad_ArchivoInexistente(t *testing.T) {
	src := csvsource.New(filepath.Join(t.TempDir(), "no-existe.csv"), "utf-8")
	_, err := src.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataSource)
}

func TestLoad_Latin1(t *testing.T) {
	content := "CustomerID,Recency,Frequency,Monetary,Cluster\nJosé,1,2,30.5,1\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(content)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rfm.csv")
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))

	customers, err := csvsource.New(path, "latin1").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "José", customers[0].CustomerID)
}

func TestLoad_UTF8ConBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfm.csv")
	require.NoError(t, os.WriteFile(path, append([]byte("\xEF\xBB\xBF"), sampleCSV...), 0o644))

	customers, err := csvsource.New(path, "").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, customers, 4)
}

func TestLoad_CodificacionNoSoportada(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rfm.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	_, err := csvsource.New(path, "ebcdic").Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataSource)
}
