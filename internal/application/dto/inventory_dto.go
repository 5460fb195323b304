package dto

import "time"

// CreateInventoryCountRequest body para POST /api/inventory-counts.
type CreateInventoryCountRequest struct {
	EANCode  string `json:"ean_code" validate:"required,min=1,max=64"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

// InventoryCountResponse salida de un conteo de inventario.
type InventoryCountResponse struct {
	ID        string    `json:"id"`
	EANCode   string    `json:"ean_code"`
	Quantity  int       `json:"quantity"`
	CountedAt time.Time `json:"counted_at"`
}
