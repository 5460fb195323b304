package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pos/internal/application/usecase"
	"github.com/tu-usuario/almacen-pos/internal/domain"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
	apphttp "github.com/tu-usuario/almacen-pos/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria con el mismo contrato que los repositorios de PostgreSQL:
// lista permitida en los PATCH, nil, nil cuando la clave no existe.
// ──────────────────────────────────────────────────────────────────────────────

var productPatchAllowed = map[string]bool{
	"name": true, "category": true, "sale_price": true, "purchase_price": true,
	"supplier": true, "active": true, "deleted_at": true,
}

type memProductRepo struct {
	byEAN map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error {
	if _, ok := r.byEAN[p.EANCode]; ok {
		return domain.ErrDuplicate
	}
	r.byEAN[p.EANCode] = p
	return nil
}

func (r *memProductRepo) GetByEAN(eanCode string) (*entity.Product, error) {
	return r.byEAN[eanCode], nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byEAN))
	for _, p := range r.byEAN {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) UpdateFields(eanCode string, fields map[string]any) (*entity.Product, error) {
	for key := range fields {
		if !productPatchAllowed[key] {
			return nil, domain.ErrInvalidInput
		}
	}
	p, ok := r.byEAN[eanCode]
	if !ok {
		return nil, nil
	}
	if active, ok := fields["active"].(bool); ok {
		p.Active = active
	}
	return p, nil
}

type memInventoryRepo struct {
	counts []*entity.InventoryCount
}

func (r *memInventoryRepo) Create(c *entity.InventoryCount) error {
	r.counts = append(r.counts, c)
	return nil
}

func (r *memInventoryRepo) List() ([]*entity.InventoryCount, error) { return r.counts, nil }

func (r *memInventoryRepo) LatestByEAN(eanCode string) (*entity.InventoryCount, error) {
	var latest *entity.InventoryCount
	for _, c := range r.counts {
		if c.EANCode == eanCode && (latest == nil || c.CountedAt.After(latest.CountedAt)) {
			latest = c
		}
	}
	return latest, nil
}

type memCashCountRepo struct {
	byID map[string]*entity.CashCount
}

func (r *memCashCountRepo) Create(c *entity.CashCount) error {
	r.byID[c.ID] = c
	return nil
}

func (r *memCashCountRepo) List() ([]*entity.CashCount, error) {
	out := make([]*entity.CashCount, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCashCountRepo) GetByDay(day time.Time) (*entity.CashCount, error) {
	y, m, d := day.UTC().Date()
	for _, c := range r.byID {
		cy, cm, cd := c.Date.UTC().Date()
		if cy == y && cm == m && cd == d {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCashCountRepo) ListByRange(start, end time.Time) ([]*entity.CashCount, error) {
	var out []*entity.CashCount
	for _, c := range r.byID {
		if !c.Date.Before(start) && !c.Date.After(end) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCashCountRepo) UpdateFields(id string, fields map[string]any) (*entity.CashCount, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

type memCashCountLogRepo struct {
	logs []*entity.CashCountLog
}

func (r *memCashCountLogRepo) Create(l *entity.CashCountLog) error {
	r.logs = append(r.logs, l)
	return nil
}

func (r *memCashCountLogRepo) ListByCashCount(cashCountID string) ([]*entity.CashCountLog, error) {
	var out []*entity.CashCountLog
	for _, l := range r.logs {
		if l.CashCountID == cashCountID {
			out = append(out, l)
		}
	}
	return out, nil
}

// buildTestApp arma la aplicación Fiber completa con repositorios en memoria.
func buildTestApp(auth fiber.Handler) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(&memProductRepo{byEAN: map[string]*entity.Product{}}),
		InventoryUC: usecase.NewInventoryUseCase(&memInventoryRepo{}),
		CashCountUC: usecase.NewCashCountUseCase(&memCashCountRepo{byID: map[string]*entity.CashCount{}}, &memCashCountLogRepo{}),
		Auth:        auth,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func bodyContains(t *testing.T, resp *http.Response, want string) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), want)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth_SiempreOK(t *testing.T) {
	app := buildTestApp(nil)
	resp := doJSON(t, app, http.MethodGet, "/api/health", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	bodyContains(t, resp, `"status":"ok"`)
}

func TestCrearProducto_FlujoCompleto(t *testing.T) {
	app := buildTestApp(nil)

	in := map[string]any{
		"ean_code": "7501000111111",
		"name":     "Café molido 500 g",
		"category": "Abarrotes",
	}
	resp := doJSON(t, app, http.MethodPost, "/api/products", in)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// El mismo EAN otra vez debe chocar con 409.
	resp2 := doJSON(t, app, http.MethodPost, "/api/products", in)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusConflict, resp2.StatusCode)
	bodyContains(t, resp2, "DUPLICATE")
}

func TestCrearProducto_SinNombre_400(t *testing.T) {
	app := buildTestApp(nil)

	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"ean_code": "7501000111111",
		"category": "Abarrotes",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	bodyContains(t, resp, "VALIDATION")
}

func TestPatchProducto_CampoNoPermitido_400(t *testing.T) {
	app := buildTestApp(nil)

	resp := doJSON(t, app, http.MethodPatch, "/api/products/7501000111111", map[string]any{
		"ean_code": "OTRO",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"un PATCH con clave fuera de la lista permitida debe rechazarse")
	bodyContains(t, resp, "VALIDATION")
}

func TestPatchProducto_EANInexistente_404(t *testing.T) {
	app := buildTestApp(nil)

	resp := doJSON(t, app, http.MethodPatch, "/api/products/NOEXISTE", map[string]any{
		"active": false,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	bodyContains(t, resp, "NOT_FOUND")
}

func TestUltimoConteo_SinConteos_404(t *testing.T) {
	app := buildTestApp(nil)

	resp := doJSON(t, app, http.MethodGet, "/api/inventory-counts/latest/7501000111111", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"404 aquí significa sin conteos, el cliente lo trata como vacío")
}

func TestConteo_AltaYUltimo(t *testing.T) {
	app := buildTestApp(nil)

	resp := doJSON(t, app, http.MethodPost, "/api/inventory-counts", map[string]any{
		"ean_code": "7501000111111",
		"quantity": 42,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp2 := doJSON(t, app, http.MethodGet, "/api/inventory-counts/latest/7501000111111", nil)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusOK, resp2.StatusCode)
	bodyContains(t, resp2, `"quantity":42`)
}

func TestArqueoPorFecha_FechaInvalida_400(t *testing.T) {
	app := buildTestApp(nil)

	resp := doJSON(t, app, http.MethodGet, "/api/cash-counts/date/10-03-2024", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	bodyContains(t, resp, "INVALID_DATE")
}

func TestHistorial_SinRango_400(t *testing.T) {
	app := buildTestApp(nil)

	resp := doJSON(t, app, http.MethodGet, "/api/cash-counts/history", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthHook_RechazaSinCredenciales(t *testing.T) {
	// Con un middleware de identidad enchufado, toda la API queda detrás.
	authDenied := func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).SendString(`{"code":"UNAUTHORIZED"}`)
	}
	app := buildTestApp(authDenied)

	resp := doJSON(t, app, http.MethodGet, "/api/products", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
