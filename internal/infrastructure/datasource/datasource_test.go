package datasource_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/datasource"
	"github.com/jhoicas/rfm-dashboard/pkg/config"
)

func TestOpen_CSV(t *testing.T) {
	cfg := &config.Config{Data: config.DataConfig{Source: "csv", Path: "testdata/rfm.csv", Encoding: "utf-8"}}

	opened, err := datasource.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer opened.Close()

	assert.Equal(t, "testdata/rfm.csv", opened.Source.Name())
	assert.Equal(t, "testdata/rfm.csv", opened.WatchPath)
}

func TestOpen_PostgresInalcanzable(t *testing.T) {
	cfg := &config.Config{
		Data: config.DataConfig{Source: "postgres"},
		DB:   config.DBConfig{DatabaseURL: "postgres://u:p@127.0.0.1:1/rfm?sslmode=disable&connect_timeout=1"},
	}

	_, err := datasource.Open(context.Background(), cfg)
	assert.ErrorContains(t, err, "datasource: postgres")
}
