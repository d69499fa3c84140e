package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/emart-api/internal/application/analytics"
	"github.com/jhoicas/emart-api/internal/application/auth"
	"github.com/jhoicas/emart-api/internal/application/inventory"
	"github.com/jhoicas/emart-api/internal/infrastructure/localstore"
	"github.com/jhoicas/emart-api/internal/infrastructure/seed"
	httpRouter "github.com/jhoicas/emart-api/internal/interfaces/http"
	"github.com/jhoicas/emart-api/pkg/config"
	"github.com/jhoicas/emart-api/pkg/logger"
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

	// Sesión: verificador demo + "local storage" en archivo. Si hay una
	// sesión persistida, se adopta tal cual sin revalidar credenciales.
	sessionStorage := localstore.New(cfg.Session.Path)
	session, err := auth.NewSessionStore(auth.NewDemoVerifier(), sessionStorage, cfg.Auth.LoginDelay)
	if err != nil {
		log.Fatal().Err(err).Msg("restaurar sesión persistida")
	}
	if u := session.Current(); u != nil {
		log.Info().Str("username", u.Username).Msg("sesión restaurada desde disco")
	}

	store := inventory.NewStore(seed.Products(), inventory.Options{
		ExpiryWindowDays: cfg.Alerts.ExpiryWindowDays,
		KeepAcknowledged: cfg.Alerts.KeepAcknowledged,
	})
	store.Subscribe(func() {
		log.Debug().Int("alerts", len(store.Alerts())).Msg("alertas recalculadas")
	})

	dashboardUC := analytics.NewDashboardUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:     session,
		Inventory:   store,
		DashboardUC: dashboardUC,
		JWT: httpRouter.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
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
