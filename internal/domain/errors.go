package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnknownSegment   = errors.New("segmento desconocido")
	ErrEmptyDataset     = errors.New("dataset no cargado")
	ErrDataSource       = errors.New("fuente de datos inválida")
	ErrNarratorDisabled = errors.New("narrador IA no configurado")
)
