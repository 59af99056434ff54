// Package segmentation contiene los casos de uso de las vistas del dashboard RFM:
// sidebar, overview, análisis por segmento, insights y explorador 3D.
//
// Todas las vistas leen el mismo snapshot inmutable del dataset, que Store
// reemplaza de forma atómica al recargar.
package segmentation

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jhoicas/rfm-dashboard/internal/domain"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
	"github.com/jhoicas/rfm-dashboard/internal/domain/repository"
)

// DatasetProvider entrega el snapshot vigente. Lo implementa Store; los tests usan stubs.
type DatasetProvider interface {
	Snapshot() (*entity.Dataset, error)
}

// Store mantiene el dataset cargado en memoria.
// Las lecturas no bloquean; las recargas se serializan entre sí.
type Store struct {
	source  repository.CustomerSource
	current atomic.Pointer[entity.Dataset]
	mu      sync.Mutex
	now     func() time.Time
}

// NewStore construye el store sin cargar datos; llamar Reload antes de servir.
func NewStore(source repository.CustomerSource) *Store {
	return &Store{source: source, now: time.Now}
}

// Reload lee de nuevo la fuente y publica el snapshot.
// Si la lectura falla, el snapshot anterior sigue vigente.
func (s *Store) Reload(ctx context.Context) (*entity.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("segmentation: reload %s: %w", s.source.Name(), err)
	}
	if len(customers) == 0 {
		return nil, fmt.Errorf("segmentation: reload %s: %w: sin filas", s.source.Name(), domain.ErrDataSource)
	}

	ds := &entity.Dataset{
		Customers: customers,
		Source:    s.source.Name(),
		LoadedAt:  s.now().UTC(),
	}
	s.current.Store(ds)
	return ds, nil
}

// Snapshot devuelve el dataset vigente o ErrEmptyDataset si aún no se cargó.
func (s *Store) Snapshot() (*entity.Dataset, error) {
	ds := s.current.Load()
	if ds == nil {
		return nil, domain.ErrEmptyDataset
	}
	return ds, nil
}

// Source nombre de la fuente configurada.
func (s *Store) Source() string { return s.source.Name() }
