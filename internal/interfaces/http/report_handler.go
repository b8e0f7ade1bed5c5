package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/punto-venta/internal/application/reports"
	"github.com/tu-usuario/punto-venta/pkg/logger"
)

// ReportHandler expone los reportes del dueño (solo OWNER).
type ReportHandler struct {
	uc  *reports.UseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Summary godoc
// @Summary      Resumen de ventas (OWNER)
// @Description  Con ?period=week|month|year devuelve el resumen del período en curso; sin period devuelve los totales históricos.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "week, month o year"
// @Success      200     {object}  dto.TotalsResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	if period := c.Query("period"); period != "" {
		out, err := h.uc.PeriodSummary(c.Context(), period)
		if err != nil {
			return writeError(c, h.log, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.Totals(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Heatmap godoc
// @Summary      Ventas por día (OWNER)
// @Description  Un punto por día con ventas en los últimos N días.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        days  query  int  false  "ventana en días"
// @Success      200   {array}  dto.HeatmapPointResponse
// @Router       /api/reports/heatmap [get]
func (h *ReportHandler) Heatmap(c *fiber.Ctx) error {
	out, err := h.uc.Heatmap(c.Context(), c.QueryInt("days"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
