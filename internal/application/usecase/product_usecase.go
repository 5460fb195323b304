package usecase

import (
	"time"

	"github.com/tu-usuario/almacen-pos/internal/application/dto"
	"github.com/tu-usuario/almacen-pos/internal/domain"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
	"github.com/tu-usuario/almacen-pos/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. La baja de productos no pasa por
// aquí como operación propia: el cliente la expresa como PATCH de active y
// deleted_at, que entra por Update.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create registra un producto nuevo. El EAN es la clave: si ya existe devuelve
// domain.ErrDuplicate.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	product := &entity.Product{
		EANCode:         in.EANCode,
		Name:            in.Name,
		Category:        in.Category,
		InitialQuantity: in.InitialQuantity,
		ImageURL:        in.ImageURL,
		PackageQuantity: in.PackageQuantity,
		PackageType:     in.PackageType,
		PurchasePrice:   in.PurchasePrice,
		SalePrice:       in.SalePrice,
		Supplier:        in.Supplier,
		Active:          active,
		CreatedAt:       time.Now().UTC(),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo ordenado por categoría y nombre.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update aplica una actualización parcial al producto. Las claves no
// permitidas producen domain.ErrInvalidInput; un EAN inexistente, nil, nil.
func (uc *ProductUseCase) Update(eanCode string, fields map[string]any) (*dto.ProductResponse, error) {
	if len(fields) == 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.UpdateFields(eanCode, fields)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		EANCode:         p.EANCode,
		Name:            p.Name,
		Category:        p.Category,
		InitialQuantity: p.InitialQuantity,
		ImageURL:        p.ImageURL,
		PackageQuantity: p.PackageQuantity,
		PackageType:     p.PackageType,
		PurchasePrice:   p.PurchasePrice,
		SalePrice:       p.SalePrice,
		Supplier:        p.Supplier,
		Active:          p.Active,
		CreatedAt:       p.CreatedAt,
		DeletedAt:       p.DeletedAt,

		PreviousSalePrice:       p.PreviousSalePrice,
		PreviousPurchasePrice:   p.PreviousPurchasePrice,
		PreviousSupplier:        p.PreviousSupplier,
		LastPriceChange:         p.LastPriceChange,
		LastPurchasePriceChange: p.LastPurchasePriceChange,
		LastSupplierChange:      p.LastSupplierChange,
	}
}
