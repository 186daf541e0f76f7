package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/toystore-api/internal/application/auth"
	"github.com/jhoicas/toystore-api/internal/application/usecase"
	"github.com/jhoicas/toystore-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/toystore-api/internal/interfaces/http"
	"github.com/jhoicas/toystore-api/pkg/config"
	"github.com/jhoicas/toystore-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	clienteUC := usecase.NewClienteUseCase(clienteRepo, txRunner)
	saleUC := usecase.NewSaleUseCase(saleRepo, clienteRepo)
	statsUC := usecase.NewStatsUseCase(statsRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.Limiter.Max,
		Expiration: time.Duration(cfg.Limiter.WindowMinutes) * time.Minute,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Toy Store API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClienteUC:    clienteUC,
		SaleUC:       saleUC,
		StatsUC:      statsUC,
		AuthUC:       authUC,
		JWTSecret:    cfg.JWT.Secret,
		RedactErrors: cfg.App.IsProduction(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
