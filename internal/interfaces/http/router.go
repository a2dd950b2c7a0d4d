package http

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/multistore-api/internal/application/usecase"
	"github.com/jhoicas/multistore-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UserUC    *usecase.UserUseCase
	CompanyUC *usecase.CompanyUseCase
	BrandUC   *usecase.BrandUseCase
	Stores    StorePinger
	Metrics   http.Handler // nil: sin /metrics
	Log       *logger.Logger
	JWTSecret string // vacío: /api sin autenticación
	JWTIssuer string
}

// Router registra middlewares y rutas de la API. Cada versión de la API
// corresponde a un grupo de entidades y, por tanto, a un store distinto.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	app.Use(RequestID(), RequestLogger(log))

	if deps.Stores != nil {
		app.Get("/health", NewHealthHandler(deps.Stores).Check)
	}
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	api := app.Group("/api")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	}

	// Users → store "user"
	users := api.Group("/v1/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Save)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Companies → store "company"
	companies := api.Group("/v2/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Save)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Brands → store "brand"
	brands := api.Group("/v3/brands")
	brandHandler := NewBrandHandler(deps.BrandUC)
	brands.Post("/", brandHandler.Save)
	brands.Get("/", brandHandler.List)
	brands.Get("/:id", brandHandler.GetByID)
}
