package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/rfm-dashboard/internal/application/dto"
	"github.com/jhoicas/rfm-dashboard/internal/domain"
)

// statusFor traduce errores de dominio a código HTTP y código de error de la API.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrUnknownSegment):
		return fiber.StatusBadRequest, "UNKNOWN_SEGMENT"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrEmptyDataset):
		return fiber.StatusServiceUnavailable, "DATASET_UNAVAILABLE"
	case errors.Is(err, domain.ErrDataSource):
		return fiber.StatusUnprocessableEntity, "DATA_SOURCE_INVALID"
	case errors.Is(err, domain.ErrNarratorDisabled):
		return fiber.StatusServiceUnavailable, "AI_UNAVAILABLE"
	case errors.Is(err, context.DeadlineExceeded):
		return fiber.StatusGatewayTimeout, "TIMEOUT"
	default:
		return fiber.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// writeError responde dto.ErrorResponse. Los 500 no exponen el detalle interno.
func writeError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: fe.Message})
	}
	status, code := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// pageError convierte el error en *fiber.Error para el manejador por defecto de Fiber.
func pageError(err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe
	}
	status, _ := statusFor(err)
	if status == fiber.StatusInternalServerError {
		return err
	}
	return fiber.NewError(status, err.Error())
}
