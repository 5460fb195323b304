package repository

import (
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByEAN(eanCode string) (*entity.Product, error)
	// List devuelve el catálogo completo ordenado por categoría y nombre.
	List() ([]*entity.Product, error)
	// UpdateFields aplica una actualización parcial. Las claves del mapa son
	// campos JSON (camelCase o snake_case); claves fuera de la lista permitida
	// devuelven domain.ErrInvalidInput. Si el EAN no existe devuelve nil, nil.
	UpdateFields(eanCode string, fields map[string]any) (*entity.Product, error)
}
