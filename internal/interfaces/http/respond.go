package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/toystore-api/internal/application/dto"
)

// internalError responde 500. En modo production el mensaje se redacta para no
// filtrar detalles del colaborador que falló.
func internalError(c *fiber.Ctx, redact bool, err error) error {
	msg := err.Error()
	if redact {
		msg = "error interno del servidor"
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: msg})
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: code, Message: msg})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "NOT_FOUND", Message: msg})
}
