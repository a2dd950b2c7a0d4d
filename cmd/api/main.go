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

	_ "github.com/jhoicas/multistore-api/docs"
	"github.com/jhoicas/multistore-api/internal/application/usecase"
	"github.com/jhoicas/multistore-api/internal/infrastructure/datastore"
	"github.com/jhoicas/multistore-api/internal/infrastructure/metrics"
	"github.com/jhoicas/multistore-api/internal/infrastructure/persistence"
	httpRouter "github.com/jhoicas/multistore-api/internal/interfaces/http"
	"github.com/jhoicas/multistore-api/pkg/config"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// @title        Multistore API
// @version      1.0
// @description  CRUD de usuarios, empresas y marcas; cada grupo persiste en su propio store.
// @BasePath     /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Registro de stores: cada grupo abre su pool y aplica su ddlAuto antes de servir.
	ctx := context.Background()
	registry := datastore.NewRegistry(log)
	if err := registry.RegisterAll(ctx, cfg.Datasources, persistence.Schemas()); err != nil {
		log.Fatal().Err(err).Bool("configuration", datastore.IsConfiguration(err)).Msg("registro de stores")
	}

	userRepo, err := persistence.NewUserRepository(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de usuarios")
	}
	companyRepo, err := persistence.NewCompanyRepository(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de empresas")
	}
	brandRepo, err := persistence.NewBrandRepository(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("repositorio de marcas")
	}

	metricsHandler, err := metrics.Register(metrics.Config{PoolStats: registry.Stats})
	if err != nil {
		log.Fatal().Err(err).Msg("registro de métricas")
	}

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
		Title:    "Multistore API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		UserUC:    usecase.NewUserUseCase(userRepo),
		CompanyUC: usecase.NewCompanyUseCase(companyRepo),
		BrandUC:   usecase.NewBrandUseCase(brandRepo),
		Stores:    registry,
		Metrics:   metricsHandler,
		Log:       log,
		JWTSecret: cfg.JWT.Secret,
		JWTIssuer: cfg.JWT.Issuer,
	})
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: /api sin autenticación")
	}

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
	// Después del servidor: ningún request en vuelo usa ya los stores. create-drop elimina su esquema aquí.
	if err := registry.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("cierre de stores")
	}

	log.Info().Msg("aplicación detenida")
}
