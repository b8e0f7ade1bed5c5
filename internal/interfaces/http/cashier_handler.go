package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/punto-venta/internal/application/auth"
	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/pkg/logger"
)

// CashierHandler gestión de cuentas de cajero (solo OWNER).
type CashierHandler struct {
	uc  *auth.UseCase
	log *logger.Logger
}

// NewCashierHandler construye el handler.
func NewCashierHandler(uc *auth.UseCase, log *logger.Logger) *CashierHandler {
	return &CashierHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear cajero (OWNER)
// @Tags         cashiers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashierRequest  true  "email, password, name opcional"
// @Success      201   {object}  dto.UserResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cashiers [post]
func (h *CashierHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCashierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateCashier(c.Context(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar cajeros (OWNER)
// @Tags         cashiers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Router       /api/cashiers [get]
func (h *CashierHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListCashiers(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
