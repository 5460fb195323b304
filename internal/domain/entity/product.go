package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del catálogo, identificado por su código EAN.
// Nunca se borra físicamente: la baja marca Active=false y estampa DeletedAt,
// de modo que los conteos históricos que lo referencian siguen resolviendo.
type Product struct {
	EANCode         string // código de barras, inmutable una vez creado
	Name            string
	Category        string
	InitialQuantity int
	ImageURL        *string
	PackageQuantity int
	PackageType     *string
	PurchasePrice   decimal.Decimal
	SalePrice       decimal.Decimal
	Supplier        *string
	Active          bool
	CreatedAt       time.Time
	DeletedAt       *time.Time

	// Auditoría: valor anterior y fecha del último cambio de precio y proveedor.
	PreviousSalePrice       *decimal.Decimal
	PreviousPurchasePrice   *decimal.Decimal
	PreviousSupplier        *string
	LastPriceChange         *time.Time
	LastPurchasePriceChange *time.Time
	LastSupplierChange      *time.Time
}
