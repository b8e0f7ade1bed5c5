package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/application/ledger"
	"github.com/tu-usuario/punto-venta/pkg/logger"
)

// SaleHandler maneja el registro y consulta de ventas.
type SaleHandler struct {
	uc       *ledger.UseCase
	receipts ledger.ReceiptGenerator
	log      *logger.Logger
}

// NewSaleHandler construye el handler. receipts puede ser nil si el despliegue
// no monta el generador de recibos.
func NewSaleHandler(uc *ledger.UseCase, receipts ledger.ReceiptGenerator, log *logger.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, receipts: receipts, log: log}
}

// Record godoc
// @Summary      Registrar venta
// @Description  Descuenta stock, registra la venta con el precio vigente y anota la auditoría en una sola transacción.
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "product_id, quantity, idempotency_key opcional"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RecordSale(c.Context(), actorFromCtx(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Description  Un CASHIER solo ve sus ventas; el OWNER ve todas. from/to (RFC 3339) acotan el rango.
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "desde (RFC 3339)"
// @Param        to    query  string  false  "hasta (RFC 3339)"
// @Success      200   {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	from, err := parseTimeQuery(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "from inválido, se espera RFC 3339"})
	}
	to, err := parseTimeQuery(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "to inválido, se espera RFC 3339"})
	}
	out, err := h.uc.ListSales(c.Context(), actorFromCtx(c), from, to)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Recibo PDF de una venta
// @Description  Un CASHIER solo puede descargar recibos de sus propias ventas.
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  int  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	if h.receipts == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_AVAILABLE", Message: "generación de recibos no habilitada"})
	}
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	sale, err := h.uc.GetSaleForActor(c.Context(), actorFromCtx(c), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	pdf, err := h.receipts.GenerateReceipt(c.Context(), sale)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="recibo-%06d.pdf"`, sale.ID))
	return c.Send(pdf)
}

// parseTimeQuery interpreta un parámetro de fecha opcional en RFC 3339.
func parseTimeQuery(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
