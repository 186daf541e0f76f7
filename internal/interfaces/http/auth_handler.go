package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/toystore-api/internal/application/auth"
	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/internal/domain"
)

// AuthHandler maneja registro, login y perfil del usuario autenticado.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	redact bool
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, redact bool) *AuthHandler {
	return &AuthHandler{uc: uc, redact: redact}
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return badRequest(c, "VALIDATION", err.Error())
	}
	user, err := h.uc.Register(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return internalError(c, h.redact, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "VALIDATION", "email y password son requeridos")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return internalError(c, h.redact, err)
	}
	return c.JSON(out)
}

// Me GET /auth/me (protegido)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Me(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "INVALID_TOKEN", Message: "usuario no encontrado"})
		}
		return internalError(c, h.redact, err)
	}
	return c.JSON(user)
}
