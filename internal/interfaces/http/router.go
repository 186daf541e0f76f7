package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/toystore-api/internal/application/auth"
	"github.com/jhoicas/toystore-api/internal/application/dto"
	"github.com/jhoicas/toystore-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC *usecase.ClienteUseCase
	SaleUC    *usecase.SaleUseCase
	StatsUC   *usecase.StatsUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
	// RedactErrors oculta detalles de errores internos (modo production).
	RedactErrors bool
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Auth (register/login públicos, me protegido)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.RedactErrors)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token). El middleware va por grupo y no
	// en un Group("/") global para que las rutas desconocidas lleguen al 404.
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Customers (protegido)
	customers := app.Group("/customers", requireAuth)
	clienteHandler := NewClienteHandler(deps.ClienteUC, deps.RedactErrors)
	customers.Post("/", clienteHandler.Create)
	customers.Get("/", clienteHandler.List)
	customers.Get("/:id", clienteHandler.GetByID)
	customers.Put("/:id", clienteHandler.Update)
	customers.Delete("/:id", clienteHandler.Delete)

	// Sales (protegido; las ventas no se modifican ni eliminan)
	sales := app.Group("/sales", requireAuth)
	saleHandler := NewSaleHandler(deps.SaleUC, deps.RedactErrors)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)

	// Stats (protegido)
	stats := app.Group("/stats", requireAuth)
	statsHandler := NewStatsHandler(deps.StatsUC, deps.RedactErrors)
	stats.Get("/sales-by-day", statsHandler.SalesByDay)
	stats.Get("/customers", statsHandler.Customers)

	// Rutas desconocidas: envelope 404 uniforme
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error:   "ROUTE_NOT_FOUND",
			Message: fmt.Sprintf("la ruta %s no existe", c.OriginalURL()),
		})
	})
}
