package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/punto-venta/internal/application/audit"
	"github.com/tu-usuario/punto-venta/internal/application/auth"
	"github.com/tu-usuario/punto-venta/internal/application/ledger"
	"github.com/tu-usuario/punto-venta/internal/application/reports"
	infrapdf "github.com/tu-usuario/punto-venta/internal/infrastructure/pdf"
	"github.com/tu-usuario/punto-venta/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/punto-venta/internal/interfaces/http"
	"github.com/tu-usuario/punto-venta/pkg/config"
	"github.com/tu-usuario/punto-venta/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("preparación del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := ledger.New(txRunner, productRepo, saleRepo, ledger.Config{
		OpTimeout:     time.Duration(cfg.Ledger.OpTimeoutSeconds) * time.Second,
		SalesMaxLimit: cfg.Ledger.SalesMaxLimit,
	})
	auditUC := audit.New(activityRepo, audit.Config{
		DefaultLimit: cfg.Ledger.ActivityLimit,
		MaxLimit:     cfg.Ledger.ActivityMaxLimit,
	})
	reportsUC := reports.New(reportRepo, reports.Config{
		HeatmapDays:    cfg.Ledger.HeatmapDays,
		HeatmapMaxDays: cfg.Ledger.HeatmapMaxDays,
	})
	authUC := auth.New(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// PDF: recibo imprimible de cada venta
	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	mountSwagger(app, log, "./docs/swagger.json", "Punto de Venta API")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:   ledgerUC,
		AuthUC:     authUC,
		AuditUC:    auditUC,
		ReportsUC:  reportsUC,
		ReceiptGen: receiptGen,
		JWTSecret:  cfg.JWT.Secret,
		Log:        log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// mountSwagger monta la UI de documentación solo si el archivo existe: el
// middleware entra en pánico durante la construcción con un archivo ausente,
// y la API debe poder arrancar sin la UI.
func mountSwagger(app *fiber.App, log *logger.Logger, filePath, title string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado, UI de documentación deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
}
