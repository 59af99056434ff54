package watch_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/watch"
)

func TestFileWatcher_UnaRecargaPorRafaga(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rfm.csv")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	var calls atomic.Int32
	reloaded := make(chan struct{}, 4)
	w := watch.New(path, 50*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		reloaded <- struct{}{}
		return nil
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond) // dar tiempo a registrar el directorio

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	}
	// Un archivo vecino no dispara recarga.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0o644))

	select {
	case <-reloaded:
	case <-time.After(3 * time.Second):
		t.Fatal("no hubo recarga tras modificar el archivo")
	}
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestFileWatcher_ErrorDeRecargaNoDetiene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rfm.csv")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	var calls atomic.Int32
	w := watch.New(path, 20*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("csv inválido")
	}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 3*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("v3"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() == 2 }, 3*time.Second, 10*time.Millisecond)
}

func TestFileWatcher_DirectorioInexistente(t *testing.T) {
	w := watch.New(filepath.Join(t.TempDir(), "nope", "rfm.csv"), 0, func(context.Context) error { return nil }, nil)

	err := w.Run(context.Background())
	assert.Error(t, err)
}
