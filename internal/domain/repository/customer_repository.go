package repository

import (
	"context"

	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

// CustomerSource define el puerto de lectura del dataset segmentado.
// Las implementaciones son read-only: devuelven las filas en el orden de origen.
type CustomerSource interface {
	// Load lee el dataset completo. Un archivo ausente o una celda numérica inválida
	// deben devolverse envueltos en domain.ErrDataSource.
	Load(ctx context.Context) ([]entity.Customer, error)

	// Name identifica la fuente en logs y en /health (ruta del archivo o tabla).
	Name() string
}

// CustomerImporter carga un snapshot completo en un almacenamiento persistente.
// Solo lo usa la CLI; el dashboard nunca escribe.
type CustomerImporter interface {
	Import(ctx context.Context, customers []entity.Customer) (int64, error)
}
