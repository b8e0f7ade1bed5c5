package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/punto-venta/internal/application/audit"
	"github.com/tu-usuario/punto-venta/pkg/logger"
)

// ActivityHandler expone la lectura del registro de auditoría (solo OWNER).
type ActivityHandler struct {
	uc  *audit.UseCase
	log *logger.Logger
}

// NewActivityHandler construye el handler.
func NewActivityHandler(uc *audit.UseCase, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Registro de actividad (OWNER)
// @Description  Entradas de auditoría más recientes primero. limit se acota al tope configurado.
// @Tags         activity
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "cantidad de entradas"
// @Success      200    {array}  dto.ActivityEntryResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.QueryInt("limit"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
