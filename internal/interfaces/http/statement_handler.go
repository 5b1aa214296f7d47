package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/materials-ledger/internal/application/dto"
	"github.com/jhoicas/materials-ledger/internal/application/ledger"
	"github.com/jhoicas/materials-ledger/internal/domain"
	"github.com/jhoicas/materials-ledger/pkg/logger"
	"github.com/jhoicas/materials-ledger/pkg/relay"
)

// StatementHandler expone el estado de cuenta de una factura en PDF.
type StatementHandler struct {
	uc *ledger.StatementUseCase
}

// NewStatementHandler construye el handler.
func NewStatementHandler(uc *ledger.StatementUseCase) *StatementHandler {
	return &StatementHandler{uc: uc}
}

// Download godoc
// @Summary      Estado de cuenta de una factura en PDF
// @Description  :id acepta el ID global de MaterialsInvoice o el ID numérico.
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path      string  true  "ID de la factura"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/invoices/{id}/statement.pdf [get]
func (h *StatementHandler) Download(c *fiber.Ctx) error {
	id, err := relay.ResolveID(ledger.TypeInvoice, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de factura inválido"})
	}

	pdf, filename, err := h.uc.DownloadStatementPDF(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
		}
		logger.FromContext(c.UserContext()).Error().Err(err).Int64("invoice_id", id).Msg("generar estado de cuenta")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: "no se pudo generar el estado de cuenta"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}
