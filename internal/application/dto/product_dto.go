package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto (sin created_at: lo
// estampa el servidor).
type CreateProductRequest struct {
	EANCode         string          `json:"ean_code" validate:"required,min=1,max=64"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Category        string          `json:"category" validate:"required,min=1,max=100"`
	InitialQuantity int             `json:"initial_quantity" validate:"min=0"`
	ImageURL        *string         `json:"image_url"`
	PackageQuantity int             `json:"package_quantity" validate:"min=0"`
	PackageType     *string         `json:"package_type"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	Supplier        *string         `json:"supplier"`
	Active          *bool           `json:"active"` // nil = true
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	EANCode         string          `json:"ean_code"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	InitialQuantity int             `json:"initial_quantity"`
	ImageURL        *string         `json:"image_url"`
	PackageQuantity int             `json:"package_quantity"`
	PackageType     *string         `json:"package_type"`
	PurchasePrice   decimal.Decimal `json:"purchase_price"`
	SalePrice       decimal.Decimal `json:"sale_price"`
	Supplier        *string         `json:"supplier"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	DeletedAt       *time.Time      `json:"deleted_at"`

	PreviousSalePrice       *decimal.Decimal `json:"previous_sale_price"`
	PreviousPurchasePrice   *decimal.Decimal `json:"previous_purchase_price"`
	PreviousSupplier        *string          `json:"previous_supplier"`
	LastPriceChange         *time.Time       `json:"last_price_change"`
	LastPurchasePriceChange *time.Time       `json:"last_purchase_price_change"`
	LastSupplierChange      *time.Time       `json:"last_supplier_change"`
}
