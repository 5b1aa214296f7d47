package http

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/materials-ledger/internal/application/dto"
	"github.com/jhoicas/materials-ledger/internal/interfaces/graphql"
	"github.com/jhoicas/materials-ledger/pkg/jwt"
	"github.com/jhoicas/materials-ledger/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	Logger      *logger.Logger
	GraphQL     *graphql.Handler
	Statement   *StatementHandler
	Metrics     nethttp.Handler             // nil: sin /metrics
	HealthCheck func(context.Context) error // nil: siempre ok
	SwaggerFile string                      // vacío o inexistente: sin /docs
	CORSOrigins string
	JWTSecret   string // vacío: API sin autenticación
}

// NewApp crea la app Fiber con middlewares globales y registra las rutas.
func NewApp(deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	origins := deps.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + HeaderRequestID,
		ExposeHeaders: HeaderRequestID,
	}))

	// Swagger UI: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    "Materials Ledger API",
			}))
		}
	}

	Router(app, deps)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", healthHandler(deps.AppName, deps.HealthCheck))
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	// Lectura para reader y writer; las mutaciones exigen writer dentro del resolver.
	var protect []fiber.Handler
	if deps.JWTSecret != "" {
		protect = []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleReader, jwt.RoleWriter)}
	}

	if deps.GraphQL != nil {
		app.Get("/graphql", deps.GraphQL.Playground)
		app.Post("/graphql", append(protect, deps.GraphQL.Query)...)
	}

	api := app.Group("/api", protect...)
	if deps.Statement != nil {
		api.Get("/invoices/:id/statement.pdf", deps.Statement.Download)
	}
}

func healthHandler(service string, check func(context.Context) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": service})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}

// errorHandler responde con dto.ErrorResponse también para errores de Fiber (404, 405...).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "error interno del servidor"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	} else {
		logger.FromContext(c.UserContext()).Error().Err(err).Msg("error no controlado")
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: nethttp.StatusText(code), Message: msg})
}
