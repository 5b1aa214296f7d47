package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/materials-ledger/pkg/logger"
)

// HeaderRequestID se respeta si el cliente envía un UUID válido; si no, se genera uno.
const HeaderRequestID = "X-Request-ID"

// RequestLogger asigna un request_id, deja un sublogger en el contexto de usuario
// y registra una línea de acceso al terminar la petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := c.Get(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		c.Set(HeaderRequestID, requestID)

		reqLog := log.With().Str("request_id", requestID).Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		err := c.Next()
		if err != nil {
			// Deja que el ErrorHandler fije el status antes de registrar.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := reqLog.Info()
		if status >= fiber.StatusInternalServerError {
			ev = reqLog.Error()
		} else if status >= fiber.StatusBadRequest {
			ev = reqLog.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("petición HTTP")
		return nil
	}
}
