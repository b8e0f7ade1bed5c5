package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/punto-venta/internal/application/audit"
	"github.com/tu-usuario/punto-venta/internal/application/auth"
	"github.com/tu-usuario/punto-venta/internal/application/ledger"
	"github.com/tu-usuario/punto-venta/internal/application/reports"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC   *ledger.UseCase
	AuthUC     *auth.UseCase
	AuditUC    *audit.UseCase
	ReportsUC  *reports.UseCase
	ReceiptGen ledger.ReceiptGenerator
	JWTSecret  string
	Log        *logger.Logger
}

// Router registra las rutas de la API.
//
// Dos niveles de acceso detrás del gate: OWNER para mutaciones de catálogo,
// cajeros, reportes y auditoría; OWNER o CASHIER para ventas y lectura del
// catálogo.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	productHandler := NewProductHandler(deps.LedgerUC, deps.Log)
	saleHandler := NewSaleHandler(deps.LedgerUC, deps.ReceiptGen, deps.Log)
	cashierHandler := NewCashierHandler(deps.AuthUC, deps.Log)
	activityHandler := NewActivityHandler(deps.AuditUC, deps.Log)
	reportHandler := NewReportHandler(deps.ReportsUC, deps.Log)

	// Auth (público)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	ownerOnly := RequireRole(entity.RoleOwner)
	anyStaff := RequireRole(entity.RoleOwner, entity.RoleCashier)

	// Products: lectura para todo el personal, mutación solo OWNER
	products := api.Group("/products")
	products.Get("/", anyStaff, productHandler.List)
	products.Post("/", ownerOnly, productHandler.Create)
	products.Put("/:id", ownerOnly, productHandler.Update)
	products.Delete("/:id", ownerOnly, productHandler.Delete)

	// Sales: todo el personal (un CASHIER solo ve las suyas)
	sales := api.Group("/sales", anyStaff)
	sales.Post("/", saleHandler.Record)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Cashiers (solo OWNER)
	cashiers := api.Group("/cashiers", ownerOnly)
	cashiers.Post("/", cashierHandler.Create)
	cashiers.Get("/", cashierHandler.List)

	// Activity log (solo OWNER)
	api.Get("/activity", ownerOnly, activityHandler.List)

	// Reports (solo OWNER)
	reportsGroup := api.Group("/reports", ownerOnly)
	reportsGroup.Get("/summary", reportHandler.Summary)
	reportsGroup.Get("/heatmap", reportHandler.Heatmap)
}
