package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/internal/application/usecase"
	"github.com/jhoicas/toystore-api/internal/domain"
)

// ClienteHandler maneja las peticiones HTTP de clientes (protegido).
type ClienteHandler struct {
	uc     *usecase.ClienteUseCase
	redact bool
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase, redact bool) *ClienteHandler {
	return &ClienteHandler{uc: uc, redact: redact}
}

// Create POST /customers
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	doc, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "EMAIL_EXISTS", Message: "este email ya está registrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "VALIDATION", "datos inválidos")
		}
		return internalError(c, h.redact, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// List GET /customers?name=&email=&page=&limit=
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var q dto.ListClientesQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "INVALID_QUERY", "parámetros inválidos")
	}
	doc, err := h.uc.List(q)
	if err != nil {
		return internalError(c, h.redact, err)
	}
	return c.JSON(doc)
}

// GetByID GET /customers/:id
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	doc, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			return notFound(c, "cliente con este ID no existe")
		}
		return internalError(c, h.redact, err)
	}
	return c.JSON(doc)
}

// Update PUT /customers/:id
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	doc, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			return notFound(c, "cliente con este ID no existe")
		}
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "EMAIL_EXISTS", Message: "este email ya está registrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "VALIDATION", "datos inválidos")
		}
		return internalError(c, h.redact, err)
	}
	return c.JSON(doc)
}

// Delete DELETE /customers/:id
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrClienteNotFound) {
			return notFound(c, "cliente con este ID no existe")
		}
		return internalError(c, h.redact, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cliente eliminado con éxito"})
}
