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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stokpro-api/internal/application/analytics"
	"github.com/jhoicas/stokpro-api/internal/application/inventory"
	"github.com/jhoicas/stokpro-api/internal/application/usecase"
	infraai "github.com/jhoicas/stokpro-api/internal/infrastructure/ai"
	"github.com/jhoicas/stokpro-api/internal/infrastructure/badgerstore"
	infrapdf "github.com/jhoicas/stokpro-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/stokpro-api/internal/interfaces/http"
	"github.com/jhoicas/stokpro-api/pkg/config"
	"github.com/jhoicas/stokpro-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// El layout persistido exige números JSON planos para los montos.
	decimal.MarshalJSONWithoutQuotes = true

	store, err := badgerstore.Open(badgerstore.Config{Path: cfg.Store.Path})
	if err != nil {
		log.Fatal().Err(err).Msg("abrir base de datos local")
	}
	defer store.Close()

	manager, err := inventory.NewManager(store, log)
	if err != nil {
		// Fatal termina el proceso sin correr los defer: liberar el lock de
		// Badger antes de salir.
		_ = store.Close()
		log.Fatal().Err(err).Msg("cargar estado del inventario")
	}

	ctx := context.Background()
	geminiSvc, err := infraai.NewGeminiService(ctx, cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	if err != nil {
		_ = store.Close()
		log.Fatal().Err(err).Msg("inicializar servicio Gemini")
	}

	dashboardUC := analytics.NewDashboardUseCase(manager)
	insightUC := usecase.NewInsightUseCase(geminiSvc, manager, log)
	reportGen := infrapdf.NewMarotoReportGenerator()

	// Primer insight al arranque; si falla queda el respaldo en el slot.
	go insightUC.Refresh(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	registerSwagger(app, "./docs/swagger.json", log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Manager:     manager,
		DashboardUC: dashboardUC,
		InsightUC:   insightUC,
		Report:      reportGen,
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

// registerSwagger monta la UI de Swagger solo si el spec generado existe.
// El middleware hace panic cuando el archivo falta, así que sin spec la
// aplicación arranca igual, solo que sin la ruta /docs.
func registerSwagger(app *fiber.App, filePath string, log *logger.Logger) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("spec de swagger no encontrado, /docs deshabilitado")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "StokPro API",
	}))
}
