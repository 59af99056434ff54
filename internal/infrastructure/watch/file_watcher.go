// Package watch recarga el dataset cuando cambia el CSV en disco.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jhoicas/rfm-dashboard/pkg/logger"
)

// DefaultDebounce agrupa las ráfagas de eventos que produce una sola escritura.
const DefaultDebounce = 500 * time.Millisecond

// ReloadFunc se invoca una vez por ráfaga de cambios.
type ReloadFunc func(ctx context.Context) error

// FileWatcher observa el directorio del archivo (los editores y `mv` reemplazan el
// inodo, así que observar el archivo directamente pierde eventos).
type FileWatcher struct {
	path     string
	debounce time.Duration
	reload   ReloadFunc
	log      *logger.Logger
}

// New construye el watcher. debounce <= 0 usa DefaultDebounce.
func New(path string, debounce time.Duration, reload ReloadFunc, log *logger.Logger) *FileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logger.Nop()
	}
	return &FileWatcher{path: filepath.Clean(path), debounce: debounce, reload: reload, log: log}
}

// Run bloquea hasta que ctx se cancela. Un fallo de recarga se registra y no detiene el watcher.
func (w *FileWatcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: crear watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch: observar %s: %w", dir, err)
	}
	w.log.Info().Str("path", w.path).Msg("observando dataset")

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(evt) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn().Err(err).Msg("watch: error de fsnotify")

		case <-timer.C:
			if err := w.reload(ctx); err != nil {
				w.log.Error().Err(err).Str("path", w.path).Msg("recarga fallida; se mantiene el snapshot anterior")
				continue
			}
			w.log.Info().Str("path", w.path).Msg("dataset recargado")
		}
	}
}

func (w *FileWatcher) relevant(evt fsnotify.Event) bool {
	if filepath.Clean(evt.Name) != w.path {
		return false
	}
	return evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) || evt.Has(fsnotify.Rename)
}
