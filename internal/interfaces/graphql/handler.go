package graphql

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	gql "github.com/graph-gophers/graphql-go"

	"github.com/jhoicas/materials-ledger/internal/application/dto"
)

// RequestObserver recibe la duración de cada petición (métricas Prometheus).
type RequestObserver interface {
	ObserveGraphQL(operation string, failed bool, d time.Duration)
}

// Handler atiende POST /graphql y, si está habilitado, el playground en GET /graphql.
type Handler struct {
	schema     *gql.Schema
	playground bool
	observer   RequestObserver
}

// NewHandler construye el handler. observer puede ser nil.
func NewHandler(schema *gql.Schema, playground bool, observer RequestObserver) *Handler {
	return &Handler{schema: schema, playground: playground, observer: observer}
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// Query ejecuta la operación con el contexto de la petición (logger, identidad).
// Los errores de resolución viajan en "errors" con status 200, como indica GraphQL sobre HTTP.
//
// @Summary      Ejecutar una operación GraphQL
// @Tags         graphql
// @Accept       json
// @Produce      json
// @Param        body  body      request  true  "query, operationName, variables"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /graphql [post]
func (h *Handler) Query(c *fiber.Ctx) error {
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "JSON inválido"})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_QUERY", Message: "query requerido"})
	}

	start := time.Now()
	resp := h.schema.Exec(c.UserContext(), req.Query, req.OperationName, req.Variables)
	if h.observer != nil {
		h.observer.ObserveGraphQL(operationKind(req.Query), len(resp.Errors) > 0, time.Since(start))
	}
	return c.JSON(resp)
}

// Playground sirve GraphiQL; 404 si está deshabilitado.
func (h *Handler) Playground(c *fiber.Ctx) error {
	if !h.playground {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "playground deshabilitado"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(playgroundHTML)
}

// operationKind distingue query de mutation para la etiqueta de métricas.
func operationKind(query string) string {
	q := strings.TrimSpace(query)
	for strings.HasPrefix(q, "#") {
		if i := strings.IndexByte(q, '\n'); i >= 0 {
			q = strings.TrimSpace(q[i+1:])
		} else {
			q = ""
		}
	}
	if strings.HasPrefix(q, "mutation") {
		return "mutation"
	}
	return "query"
}

const playgroundHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Materials Ledger - GraphiQL</title>
  <link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
</head>
<body style="margin:0">
  <div id="graphiql" style="height:100vh"></div>
  <script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
  <script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
  <script crossorigin src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
  <script>
    const fetcher = GraphiQL.createFetcher({ url: window.location.pathname });
    ReactDOM.createRoot(document.getElementById('graphiql'))
      .render(React.createElement(GraphiQL, { fetcher }));
  </script>
</body>
</html>`
