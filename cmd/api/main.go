package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/almacen-pos/internal/application/usecase"
	"github.com/tu-usuario/almacen-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-pos/internal/interfaces/http"
	"github.com/tu-usuario/almacen-pos/pkg/config"
	"github.com/tu-usuario/almacen-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración de esquema")
	}

	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryCountRepository(pool)
	cashCountRepo := postgres.NewCashCountRepository(pool)
	cashCountLogRepo := postgres.NewCashCountLogRepository(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)
	cashCountUC := usecase.NewCashCountUseCase(cashCountRepo, cashCountLogRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén POS API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		InventoryUC: inventoryUC,
		CashCountUC: cashCountUC,
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
