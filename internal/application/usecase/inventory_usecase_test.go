package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pos/internal/application/dto"
	"github.com/tu-usuario/almacen-pos/internal/application/usecase"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
)

type fakeInventoryRepo struct {
	counts []*entity.InventoryCount
}

func (r *fakeInventoryRepo) Create(c *entity.InventoryCount) error {
	r.counts = append(r.counts, c)
	return nil
}

func (r *fakeInventoryRepo) List() ([]*entity.InventoryCount, error) {
	return r.counts, nil
}

func (r *fakeInventoryRepo) LatestByEAN(eanCode string) (*entity.InventoryCount, error) {
	var latest *entity.InventoryCount
	for _, c := range r.counts {
		if c.EANCode != eanCode {
			continue
		}
		if latest == nil || c.CountedAt.After(latest.CountedAt) {
			latest = c
		}
	}
	return latest, nil
}

func TestInventoryAdd_EstampaIDyFecha(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)

	out, err := uc.Add(dto.CreateInventoryCountRequest{EANCode: "7501000111111", Quantity: 42})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, 42, out.Quantity)
	assert.WithinDuration(t, time.Now().UTC(), out.CountedAt, 5*time.Second)
}

func TestInventoryAdd_NoValidaEANContraCatalogo(t *testing.T) {
	// Contrato histórico: un conteo con EAN desconocido se acepta igual.
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{})

	out, err := uc.Add(dto.CreateInventoryCountRequest{EANCode: "SIN-PRODUCTO", Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, "SIN-PRODUCTO", out.EANCode)
}

func TestInventoryLatest_SinConteos_NilNil(t *testing.T) {
	uc := usecase.NewInventoryUseCase(&fakeInventoryRepo{})

	out, err := uc.Latest("7501000111111")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestInventoryLatest_DevuelveElMasReciente(t *testing.T) {
	repo := &fakeInventoryRepo{}
	uc := usecase.NewInventoryUseCase(repo)

	old := &entity.InventoryCount{ID: "1", EANCode: "E", Quantity: 10, CountedAt: time.Now().Add(-time.Hour)}
	recent := &entity.InventoryCount{ID: "2", EANCode: "E", Quantity: 7, CountedAt: time.Now()}
	require.NoError(t, repo.Create(old))
	require.NoError(t, repo.Create(recent))

	out, err := uc.Latest("E")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, 7, out.Quantity, "la cantidad vigente es la del conteo más reciente")
}
