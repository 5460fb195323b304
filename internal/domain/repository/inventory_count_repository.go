package repository

import (
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
)

// InventoryCountRepository define el puerto de persistencia para los conteos
// de inventario. No hay Update ni Delete: los conteos son append-only.
type InventoryCountRepository interface {
	Create(count *entity.InventoryCount) error
	// List devuelve todos los conteos, del más reciente al más antiguo.
	List() ([]*entity.InventoryCount, error)
	// LatestByEAN devuelve el conteo más reciente del producto, o nil, nil si
	// el producto no tiene conteos registrados.
	LatestByEAN(eanCode string) (*entity.InventoryCount, error)
}
