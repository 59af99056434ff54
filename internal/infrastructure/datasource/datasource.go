// Package datasource elige la fuente del dataset según DATA_SOURCE.
package datasource

import (
	"context"
	"fmt"

	"github.com/jhoicas/rfm-dashboard/internal/domain/repository"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/csvsource"
	"github.com/jhoicas/rfm-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/rfm-dashboard/pkg/config"
)

// Opened fuente lista para usar. Close libera el pool cuando la fuente es PostgreSQL.
type Opened struct {
	Source repository.CustomerSource
	// WatchPath ruta a observar para la recarga automática; vacío si la fuente no es un archivo.
	WatchPath string
	Close     func()
}

// Open construye la fuente configurada.
func Open(ctx context.Context, cfg *config.Config) (*Opened, error) {
	switch cfg.Data.Source {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("datasource: postgres: %w", err)
		}
		return &Opened{
			Source: postgres.NewCustomerRepository(pool),
			Close:  pool.Close,
		}, nil
	default:
		src := csvsource.New(cfg.Data.Path, cfg.Data.Encoding)
		return &Opened{
			Source:    src,
			WatchPath: src.Path(),
			Close:     func() {},
		}, nil
	}
}
