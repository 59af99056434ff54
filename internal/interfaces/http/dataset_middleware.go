package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/domain/entity"
)

// datasetChecker es el contrato mínimo que necesita el middleware.
// Lo implementa *segmentation.Store; la interfaz evita acoplar el router al store.
type datasetChecker interface {
	Snapshot() (*entity.Dataset, error)
}

// RequireDataset corta con 503 DATASET_UNAVAILABLE mientras no haya snapshot cargado,
// antes de parsear filtros o invocar casos de uso.
func RequireDataset(checker datasetChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := checker.Snapshot(); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "DATASET_UNAVAILABLE",
				Message: "el dataset no está cargado, intente más tarde",
			})
		}
		return c.Next()
	}
}
