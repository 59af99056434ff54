package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
	"github.com/jhoicas/rfm-dashboard/pkg/logger"
)

// DatasetHandler estado y recarga del snapshot.
type DatasetHandler struct {
	store   *segmentation.Store
	service string
	log     *logger.Logger
}

// NewDatasetHandler construye el handler. service es el nombre que reporta /health.
func NewDatasetHandler(store *segmentation.Store, service string, log *logger.Logger) *DatasetHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DatasetHandler{store: store, service: service, log: log.Component("dataset")}
}

// Health godoc
// @Summary      Estado del servicio
// @Description  status=ok con el dataset cargado; status=degraded (503) si aún no hay snapshot.
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *DatasetHandler) Health(c *fiber.Ctx) error {
	ds, err := h.store.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Service: h.service})
	}
	return c.JSON(dto.HealthResponse{
		Status:  "ok",
		Service: h.service,
		Dataset: segmentation.DatasetInfo(ds),
	})
}

// Reload godoc
// @Summary      Recarga el dataset desde la fuente
// @Description  Si la lectura falla se conserva el snapshot anterior. Requiere rol analyst.
// @Tags         system
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DatasetInfoDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/dataset/reload [post]
func (h *DatasetHandler) Reload(c *fiber.Ctx) error {
	ds, err := h.store.Reload(c.Context())
	if err != nil {
		h.log.Warn().Err(err).Str("source", h.store.Source()).Msg("recarga rechazada, se conserva el snapshot anterior")
		return writeError(c, err)
	}
	h.log.Info().Int("rows", ds.Len()).Str("subject", GetSubject(c)).Msg("dataset recargado")
	return c.JSON(segmentation.DatasetInfo(ds))
}
