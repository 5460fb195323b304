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

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeCashCountRepo struct {
	byID       map[string]*entity.CashCount
	lastFields map[string]any
}

func newFakeCashCountRepo() *fakeCashCountRepo {
	return &fakeCashCountRepo{byID: make(map[string]*entity.CashCount)}
}

func (r *fakeCashCountRepo) Create(c *entity.CashCount) error {
	r.byID[c.ID] = c
	return nil
}

func (r *fakeCashCountRepo) List() ([]*entity.CashCount, error) {
	out := make([]*entity.CashCount, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCashCountRepo) GetByDay(day time.Time) (*entity.CashCount, error) {
	y, m, d := day.UTC().Date()
	for _, c := range r.byID {
		cy, cm, cd := c.Date.UTC().Date()
		if cy == y && cm == m && cd == d {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCashCountRepo) ListByRange(start, end time.Time) ([]*entity.CashCount, error) {
	var out []*entity.CashCount
	for _, c := range r.byID {
		if !c.Date.Before(start) && !c.Date.After(end) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCashCountRepo) UpdateFields(id string, fields map[string]any) (*entity.CashCount, error) {
	r.lastFields = fields
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	if comments, ok := fields["comments"].(string); ok {
		c.Comments = comments
	}
	if updated, ok := fields["updated_at"].(time.Time); ok {
		c.UpdatedAt = updated
	}
	return c, nil
}

type fakeCashCountLogRepo struct {
	logs []*entity.CashCountLog
}

func (r *fakeCashCountLogRepo) Create(l *entity.CashCountLog) error {
	r.logs = append(r.logs, l)
	return nil
}

func (r *fakeCashCountLogRepo) ListByCashCount(cashCountID string) ([]*entity.CashCountLog, error) {
	var out []*entity.CashCountLog
	for _, l := range r.logs {
		if l.CashCountID == cashCountID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ── tests ─────────────────────────────────────────────────────────────────────

func demoCashCountRequest() dto.CreateCashCountRequest {
	return dto.CreateCashCountRequest{
		Date:  time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Notes: map[string]int{"20": 3, "50": 1},
		Coins: map[string]int{"0.50": 10},
		Total: decimal.RequireFromString("115.00"),
	}
}

func TestCashCountCreate_EstampaIDyTimestamps(t *testing.T) {
	counts := newFakeCashCountRepo()
	uc := usecase.NewCashCountUseCase(counts, &fakeCashCountLogRepo{})

	out, err := uc.Create(demoCashCountRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "el id lo genera el servidor")
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, out.CreatedAt, out.UpdatedAt, "al crear, updated_at coincide con created_at")
}

func TestCashCountGetByDay_SinArqueo_NilNil(t *testing.T) {
	uc := usecase.NewCashCountUseCase(newFakeCashCountRepo(), &fakeCashCountLogRepo{})

	out, err := uc.GetByDay(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestCashCountUpdate_EstampaUpdatedAtDelServidor(t *testing.T) {
	counts := newFakeCashCountRepo()
	uc := usecase.NewCashCountUseCase(counts, &fakeCashCountLogRepo{})
	created, err := uc.Create(demoCashCountRequest())
	require.NoError(t, err)

	before := time.Now().UTC()
	out, err := uc.Update(created.ID, map[string]any{"comments": "corrección de conteo"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Contains(t, counts.lastFields, "updated_at",
		"updated_at lo estampa el servidor aunque el cliente no lo envíe")
	assert.False(t, out.UpdatedAt.Before(before))
	assert.Equal(t, "corrección de conteo", out.Comments)
}

func TestCashCountUpdate_NoMutaElMapaDelLlamador(t *testing.T) {
	counts := newFakeCashCountRepo()
	uc := usecase.NewCashCountUseCase(counts, &fakeCashCountLogRepo{})
	created, err := uc.Create(demoCashCountRequest())
	require.NoError(t, err)

	fields := map[string]any{"comments": "x"}
	_, err = uc.Update(created.ID, fields)
	require.NoError(t, err)
	assert.Len(t, fields, 1, "el mapa del llamador no debe ganar claves nuevas")
}

func TestCashCountAddLog_FechaPorDefectoAhora(t *testing.T) {
	logs := &fakeCashCountLogRepo{}
	uc := usecase.NewCashCountUseCase(newFakeCashCountRepo(), logs)

	out, err := uc.AddLog(dto.CreateCashCountLogRequest{
		CashCountID: "arqueo-1",
		Type:        "update",
		Comments:    "ajuste de total",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.WithinDuration(t, time.Now().UTC(), out.Date, 5*time.Second,
		"sin fecha explícita la bitácora se estampa con la hora del servidor")
	require.Len(t, logs.logs, 1)
}

func TestCashCountLogs_FiltraPorArqueo(t *testing.T) {
	logs := &fakeCashCountLogRepo{}
	uc := usecase.NewCashCountUseCase(newFakeCashCountRepo(), logs)

	_, err := uc.AddLog(dto.CreateCashCountLogRequest{CashCountID: "a", Type: "update"})
	require.NoError(t, err)
	_, err = uc.AddLog(dto.CreateCashCountLogRequest{CashCountID: "b", Type: "update"})
	require.NoError(t, err)

	out, err := uc.Logs("a")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "a", out[0].CashCountID)
}

func TestCashCountUpdate_SinCampos_Rechazado(t *testing.T) {
	uc := usecase.NewCashCountUseCase(newFakeCashCountRepo(), &fakeCashCountLogRepo{})
	_, err := uc.Update("arqueo-1", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
