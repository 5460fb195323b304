package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pos/internal/application/dto"
	"github.com/tu-usuario/almacen-pos/internal/application/usecase"
)

// RouterDeps dependencias para el router. Auth es el punto de enganche para un
// proveedor de identidad externo: si es nil las rutas quedan abiertas (variante
// sin autenticación del sistema original).
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	CashCountUC *usecase.CashCountUseCase
	Auth        fiber.Handler
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	if deps.Auth != nil {
		api.Use(deps.Auth)
	}

	// Health: objetivo del sondeo de conectividad del cliente.
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok"})
	})

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Patch("/:eanCode", productHandler.Update)

	// Inventory counts (append-only)
	counts := api.Group("/inventory-counts")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	counts.Get("/", inventoryHandler.List)
	counts.Post("/", inventoryHandler.Add)
	counts.Get("/latest/:eanCode", inventoryHandler.Latest)

	// Cash counts y su bitácora
	cashHandler := NewCashCountHandler(deps.CashCountUC)
	cash := api.Group("/cash-counts")
	cash.Get("/", cashHandler.List)
	cash.Post("/", cashHandler.Create)
	cash.Get("/history", cashHandler.History)
	cash.Get("/date/:date", cashHandler.GetByDate)
	cash.Patch("/:id", cashHandler.Update)

	logs := api.Group("/cash-count-logs")
	logs.Get("/:cashCountId", cashHandler.Logs)
	logs.Post("/", cashHandler.AddLog)
}
