package client

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-pos/internal/application/dto"
)

// Datos de demostración para el modo sin conexión. Cada función devuelve
// copias frescas: el llamador puede mutar el resultado sin contaminar las
// lecturas siguientes.

func strPtr(s string) *string { return &s }

// DemoProducts devuelve el catálogo de demostración. Los EAN llevan el prefijo
// OFFLINE para que sea evidente en pantalla que no son datos reales.
func DemoProducts() []dto.ProductResponse {
	created := time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)
	return []dto.ProductResponse{
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
			CreatedAt:       created,
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
			CreatedAt:       created,
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
			CreatedAt:       created,
		},
	}
}

// DemoInventoryCounts devuelve un conteo por producto de demostración, con la
// cantidad igual a la cantidad inicial del catálogo.
func DemoInventoryCounts() []dto.InventoryCountResponse {
	counted := time.Date(2024, 1, 20, 18, 30, 0, 0, time.UTC)
	products := DemoProducts()
	out := make([]dto.InventoryCountResponse, 0, len(products))
	for i, p := range products {
		out = append(out, dto.InventoryCountResponse{
			ID:        "demo-" + p.EANCode,
			EANCode:   p.EANCode,
			Quantity:  p.InitialQuantity,
			CountedAt: counted.Add(time.Duration(i) * time.Minute),
		})
	}
	return out
}

// DemoCashCounts devuelve un único arqueo de demostración. El total 236.25
// coincide exactamente con la suma de denominaciones por cantidad.
func DemoCashCounts() []dto.CashCountResponse {
	day := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	return []dto.CashCountResponse{
		{
			ID:   "demo-arqueo-001",
			Date: day,
			Notes: map[string]int{
				"2": 5, "5": 10, "10": 5, "20": 3, "50": 1, "100": 0,
			},
			Coins: map[string]int{
				"0.05": 10, "0.10": 20, "0.25": 15, "0.50": 10, "1.00": 5,
			},
			Total:     decimal.RequireFromString("236.25"),
			CreatedAt: day.Add(20 * time.Hour),
			UpdatedAt: day.Add(20 * time.Hour),
			Comments:  "Arqueo de demostración",
		},
	}
}
