package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/dcherreria/taller-api/internal/application/usecase"
	infrapdf "github.com/dcherreria/taller-api/internal/infrastructure/pdf"
	"github.com/dcherreria/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/dcherreria/taller-api/internal/interfaces/http"
	"github.com/dcherreria/taller-api/pkg/config"
	"github.com/dcherreria/taller-api/pkg/logger"
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

	if cfg.Auth.APIKey == "" {
		log.Warn().Msg("API_KEY vacía: la API queda abierta (solo para desarrollo)")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	presupuestoRepo := postgres.NewPresupuestoRepository(pool)

	presupuestoUC := usecase.NewPresupuestoUseCase(presupuestoRepo)
	dashboardUC := usecase.NewDashboardUseCase(presupuestoRepo)

	// PDF: documento imprimible del presupuesto con el membrete del taller
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := usecase.NewPDFUseCase(presupuestoRepo, pdfGenerator, usecase.TallerInfo{
		Nombre:   cfg.Taller.Nombre,
		Telefono: cfg.Taller.Telefono,
		Ciudad:   cfg.Taller.Ciudad,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PresupuestoUC: presupuestoUC,
		DashboardUC:   dashboardUC,
		PDFUC:         pdfUC,
		APIKey:        cfg.Auth.APIKey,
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
