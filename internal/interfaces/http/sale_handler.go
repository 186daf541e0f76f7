package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/internal/application/usecase"
	"github.com/jhoicas/toystore-api/internal/domain"
)

// SaleHandler maneja las peticiones HTTP de ventas (protegido).
type SaleHandler struct {
	uc     *usecase.SaleUseCase
	redact bool
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase, redact bool) *SaleHandler {
	return &SaleHandler{uc: uc, redact: redact}
}

// Create POST /sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			return notFound(c, "cliente con este ID no existe")
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "VALIDATION", "datos inválidos")
		}
		return internalError(c, h.redact, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /sales?clienteId=&dataInicio=&dataFim=&page=&limit=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.ListSalesQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	out, err := h.uc.List(q)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "VALIDATION", "rango de fechas inválido")
		}
		return internalError(c, h.redact, err)
	}
	return c.JSON(out)
}
