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

	_ "github.com/staffboard/attestation-dashboard/docs"
	appattest "github.com/staffboard/attestation-dashboard/internal/application/attestation"
	"github.com/staffboard/attestation-dashboard/internal/application/auth"
	"github.com/staffboard/attestation-dashboard/internal/infrastructure/csvstore"
	infrapdf "github.com/staffboard/attestation-dashboard/internal/infrastructure/pdf"
	httpRouter "github.com/staffboard/attestation-dashboard/internal/interfaces/http"
	"github.com/staffboard/attestation-dashboard/internal/interfaces/web"
	"github.com/staffboard/attestation-dashboard/pkg/config"
	"github.com/staffboard/attestation-dashboard/pkg/logger"
)

// @title        Attestation Dashboard API
// @version      1.0
// @description  Single-user employee attestation dashboard over CSV data.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_dir", cfg.Data.Dir).
		Msg("starting application")

	// CSV store: loader + modtime cache + data directory layout
	loader := csvstore.NewLoader(cfg.Data.Encoding)
	cache := csvstore.NewCache(loader)
	store := csvstore.NewStore(cfg.Data.Dir, cfg.Data.RosterFile, cache)

	rosterUC := appattest.NewRosterUseCase(store)
	detailUC := appattest.NewDetailUseCase(rosterUC, store)
	reportUC := appattest.NewReportUseCase(rosterUC, detailUC, infrapdf.NewMarotoReportGenerator())

	authUC := auth.NewAuthUseCase(
		auth.Credentials{Username: cfg.Auth.Username, Password: cfg.Auth.Password},
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Attestation Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		RosterUC:  rosterUC,
		DetailUC:  detailUC,
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
	})

	// Embedded dashboard page last, so API routes win the match
	web.Register(app)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
