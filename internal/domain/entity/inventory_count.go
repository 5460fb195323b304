package entity

import "time"

// InventoryCount es una observación puntual de stock para un producto.
// Es append-only: nunca se actualiza ni se elimina; la "cantidad actual" de un
// producto es su conteo más reciente por CountedAt. La referencia EANCode no se
// valida contra el catálogo (se acepta cualquier cadena).
type InventoryCount struct {
	ID        string
	EANCode   string
	Quantity  int
	CountedAt time.Time
}
