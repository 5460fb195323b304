// seed puebla la base de datos con el catálogo de demostración (los mismos
// productos OFFLINE que el cliente usa como fallback sin conexión), un conteo
// de inventario por producto y un arqueo de caja de ejemplo.
//
// Uso: go run ./cmd/seed
// Es idempotente sobre productos: un EAN ya existente se reporta y se omite.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pos/internal/domain"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
	"github.com/tu-usuario/almacen-pos/internal/infrastructure/postgres"
	"github.com/tu-usuario/almacen-pos/pkg/config"
	"github.com/tu-usuario/almacen-pos/pkg/logger"
)

func strPtr(s string) *string { return &s }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

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

	now := time.Now().UTC()
	demo := []*entity.Product{
		{
			EANCode:         "OFFLINE001",
			Name:            "Vaso desechable 200 ml (modo demostración)",
			Category:        "Vasos",
			InitialQuantity: 100,
			ImageURL:        strPtr("https://images.unsplash.com/photo-1577563908411-5077b6dc7624?w=200"),
			PackageQuantity: 100,
			PackageType:     strPtr("Paquete"),
			PurchasePrice:   decimal.RequireFromString("5.00"),
			SalePrice:       decimal.RequireFromString("10.00"),
			Supplier:        strPtr("Proveedor Demo"),
			Active:          true,
			CreatedAt:       now,
		},
		{
			EANCode:         "OFFLINE002",
			Name:            "Vaso térmico 300 ml (modo demostración)",
			Category:        "Vasos",
			InitialQuantity: 50,
			ImageURL:        strPtr("https://images.unsplash.com/photo-1572119865084-43c285814d63?w=200"),
			PackageQuantity: 10,
			PackageType:     strPtr("Caja"),
			PurchasePrice:   decimal.RequireFromString("15.00"),
			SalePrice:       decimal.RequireFromString("30.00"),
			Supplier:        strPtr("Proveedor Demo"),
			Active:          true,
			CreatedAt:       now,
		},
		{
			EANCode:         "OFFLINE003",
			Name:            "Servilletas (modo demostración)",
			Category:        "Desechables",
			InitialQuantity: 200,
			ImageURL:        strPtr("https://images.unsplash.com/photo-1584556812952-905ffd0c611a?w=200"),
			PackageQuantity: 50,
			PackageType:     strPtr("Paquete"),
			PurchasePrice:   decimal.RequireFromString("2.50"),
			SalePrice:       decimal.RequireFromString("5.00"),
			Supplier:        strPtr("Proveedor Demo"),
			Active:          true,
			CreatedAt:       now,
		},
	}

	created := 0
	for _, p := range demo {
		if err := productRepo.Create(p); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Info().Str("ean", p.EANCode).Msg("producto ya existe, se omite")
				continue
			}
			log.Fatal().Err(err).Str("ean", p.EANCode).Msg("insertar producto")
		}
		created++

		count := &entity.InventoryCount{
			ID:        uuid.New().String(),
			EANCode:   p.EANCode,
			Quantity:  p.InitialQuantity,
			CountedAt: now,
		}
		if err := inventoryRepo.Create(count); err != nil {
			log.Fatal().Err(err).Str("ean", p.EANCode).Msg("insertar conteo inicial")
		}
	}

	cash := &entity.CashCount{
		ID:        uuid.New().String(),
		Date:      now,
		Notes:     map[string]int{"2": 5, "5": 10, "10": 5, "20": 3, "50": 1, "100": 0},
		Coins:     map[string]int{"0.05": 10, "0.10": 20, "0.25": 15, "0.50": 10, "1.00": 5},
		Comments:  "Arqueo de demostración",
		CreatedAt: now,
		UpdatedAt: now,
	}
	cash.Total = cash.ComputedTotal()
	if existing, err := cashCountRepo.GetByDay(now); err != nil {
		log.Fatal().Err(err).Msg("consultar arqueo del día")
	} else if existing == nil {
		if err := cashCountRepo.Create(cash); err != nil {
			log.Fatal().Err(err).Msg("insertar arqueo")
		}
		log.Info().Str("total", cash.Total.String()).Msg("arqueo de demostración creado")
	} else {
		log.Info().Msg("ya existe arqueo para hoy, se omite")
	}

	log.Info().Int("productos_nuevos", created).Msg("seed completado")
}
