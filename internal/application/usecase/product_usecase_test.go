package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pos/internal/application/dto"
	"github.com/tu-usuario/almacen-pos/internal/application/usecase"
	"github.com/tu-usuario/almacen-pos/internal/domain"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria para los tests del caso de uso.
type fakeProductRepo struct {
	byEAN      map[string]*entity.Product
	lastFields map[string]any
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byEAN: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	if _, ok := r.byEAN[p.EANCode]; ok {
		return domain.ErrDuplicate
	}
	r.byEAN[p.EANCode] = p
	return nil
}

func (r *fakeProductRepo) GetByEAN(eanCode string) (*entity.Product, error) {
	return r.byEAN[eanCode], nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byEAN))
	for _, p := range r.byEAN {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) UpdateFields(eanCode string, fields map[string]any) (*entity.Product, error) {
	r.lastFields = fields
	p, ok := r.byEAN[eanCode]
	if !ok {
		return nil, nil
	}
	if name, ok := fields["name"].(string); ok {
		p.Name = name
	}
	if active, ok := fields["active"].(bool); ok {
		p.Active = active
	}
	return p, nil
}

func TestProductCreate_ActivoPorDefecto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(dto.CreateProductRequest{
		EANCode:   "7501000111111",
		Name:      "Café molido 500 g",
		Category:  "Abarrotes",
		SalePrice: decimal.RequireFromString("95.00"),
	})
	require.NoError(t, err)
	assert.True(t, out.Active, "sin active explícito el producto nace activo")
	assert.False(t, out.CreatedAt.IsZero(), "created_at lo estampa el servidor")
	assert.WithinDuration(t, time.Now().UTC(), out.CreatedAt, 5*time.Second)
}

func TestProductCreate_RespetaActivoExplicito(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	inactive := false
	out, err := uc.Create(dto.CreateProductRequest{
		EANCode:  "7501000111111",
		Name:     "Descontinuado",
		Category: "Abarrotes",
		Active:   &inactive,
	})
	require.NoError(t, err)
	assert.False(t, out.Active)
}

func TestProductCreate_EANDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	in := dto.CreateProductRequest{EANCode: "7501000111111", Name: "Café", Category: "Abarrotes"}
	_, err := uc.Create(in)
	require.NoError(t, err)

	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_SinCampos_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Update("7501000111111", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update("7501000111111", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_EANInexistente_NilNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	out, err := uc.Update("NOEXISTE", map[string]any{"name": "X"})
	require.NoError(t, err, "un EAN inexistente no es un error, es ausencia de dato")
	assert.Nil(t, out)
}

func TestProductUpdate_BajaLogica(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)
	_, err := uc.Create(dto.CreateProductRequest{EANCode: "7501000111111", Name: "Café", Category: "Abarrotes"})
	require.NoError(t, err)

	out, err := uc.Update("7501000111111", map[string]any{"active": false, "deleted_at": time.Now().UTC()})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.False(t, out.Active)
	assert.Contains(t, repo.lastFields, "deleted_at",
		"la baja viaja como PATCH, nunca como DELETE físico")
}
