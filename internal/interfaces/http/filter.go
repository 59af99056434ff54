package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/application/segmentation"
)

// parseFilter lee ?segment=...&segment=...&sel=1&focus=... y normaliza la selección.
// Los segmentos se leen con PeekMulti: QueryParser partiría los valores por comas.
func parseFilter(c *fiber.Ctx) (dto.FilterRequest, []string, error) {
	var req dto.FilterRequest
	if err := c.QueryParser(&req); err != nil {
		return req, nil, fiber.NewError(fiber.StatusBadRequest, "parámetros de consulta inválidos")
	}

	raw := c.Context().QueryArgs().PeekMulti("segment")
	req.Segment = make([]string, 0, len(raw))
	for _, v := range raw {
		req.Segment = append(req.Segment, string(v))
	}

	segments, err := segmentation.ParseSegments(req.Segment, req.Sel == 1)
	if err != nil {
		return req, nil, err
	}
	return req, segments, nil
}
