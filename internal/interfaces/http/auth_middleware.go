package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/pkg/jwt"
)

// Local key para el UserID en Fiber.
const LocalUserID = "user_id"

// AuthMiddleware valida el Bearer Token JWT y deja el UserID en c.Locals.
// Token ausente o expirado -> 401; token malformado o con firma inválida -> 403.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "EXPIRED_TOKEN", Message: "token expirado, inicie sesión de nuevo"})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "INVALID_TOKEN", Message: "token malformado o inválido"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
