package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/almacen-pos/internal/application/dto"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
	"github.com/tu-usuario/almacen-pos/internal/domain/repository"
)

// InventoryUseCase casos de uso de los conteos de inventario. Los conteos son
// observaciones append-only: la cantidad vigente de un producto es la del
// conteo más reciente.
type InventoryUseCase struct {
	repo repository.InventoryCountRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryCountRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Add registra un conteo nuevo con id generado y fecha del servidor. El EAN no
// se valida contra el catálogo a propósito (contrato histórico del sistema).
func (uc *InventoryUseCase) Add(in dto.CreateInventoryCountRequest) (*dto.InventoryCountResponse, error) {
	count := &entity.InventoryCount{
		ID:        uuid.New().String(),
		EANCode:   in.EANCode,
		Quantity:  in.Quantity,
		CountedAt: time.Now().UTC(),
	}
	if err := uc.repo.Create(count); err != nil {
		return nil, err
	}
	return toInventoryCountResponse(count), nil
}

// List devuelve todos los conteos, del más reciente al más antiguo.
func (uc *InventoryUseCase) List() ([]dto.InventoryCountResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryCountResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toInventoryCountResponse(c))
	}
	return items, nil
}

// Latest devuelve el conteo más reciente de un producto, o nil, nil si no hay
// conteos registrados (el handler lo traduce a 404).
func (uc *InventoryUseCase) Latest(eanCode string) (*dto.InventoryCountResponse, error) {
	count, err := uc.repo.LatestByEAN(eanCode)
	if err != nil {
		return nil, err
	}
	if count == nil {
		return nil, nil
	}
	return toInventoryCountResponse(count), nil
}

func toInventoryCountResponse(c *entity.InventoryCount) *dto.InventoryCountResponse {
	return &dto.InventoryCountResponse{
		ID:        c.ID,
		EANCode:   c.EANCode,
		Quantity:  c.Quantity,
		CountedAt: c.CountedAt,
	}
}
