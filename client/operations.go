package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tu-usuario/almacen-pos/internal/application/dto"
)

// Wrappers por entidad y acción. Cada uno construye exactamente una petición
// por intento; la política de reintentos vive en executeWithRetry. Las
// lecturas llevan fallback de demostración, las escrituras no.

// ── Productos ─────────────────────────────────────────────────────────────────

// GetProducts lista el catálogo. Sin backend devuelve los productos de
// demostración.
func (c *Client) GetProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	return executeWithRetry(ctx, c, "getProducts", func(ctx context.Context) ([]dto.ProductResponse, error) {
		var out []dto.ProductResponse
		if _, err := c.do(ctx, http.MethodGet, "/products", nil, &out, false); err != nil {
			return nil, err
		}
		return out, nil
	}, DemoProducts)
}

// AddProduct crea un producto. Es una escritura: sin fallback.
func (c *Client) AddProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	return executeWithRetry(ctx, c, "addProduct", func(ctx context.Context) (*dto.ProductResponse, error) {
		var out dto.ProductResponse
		if _, err := c.do(ctx, http.MethodPost, "/products", in, &out, false); err != nil {
			return nil, err
		}
		return &out, nil
	}, nil)
}

// UpdateProduct aplica una actualización parcial. Las claves del mapa son
// campos JSON (camelCase o snake_case); el servidor rechaza claves no
// permitidas con 400.
func (c *Client) UpdateProduct(ctx context.Context, eanCode string, fields map[string]any) (*dto.ProductResponse, error) {
	path := "/products/" + url.PathEscape(eanCode)
	return executeWithRetry(ctx, c, "updateProduct", func(ctx context.Context) (*dto.ProductResponse, error) {
		var out dto.ProductResponse
		if _, err := c.do(ctx, http.MethodPatch, path, fields, &out, false); err != nil {
			return nil, err
		}
		return &out, nil
	}, nil)
}

// DeleteProduct da de baja un producto: marca active=false y estampa
// deleted_at. Nunca borra la fila; los conteos históricos siguen resolviendo.
func (c *Client) DeleteProduct(ctx context.Context, eanCode string) error {
	_, err := c.UpdateProduct(ctx, eanCode, map[string]any{
		"active":     false,
		"deleted_at": time.Now().UTC().Format(time.RFC3339),
	})
	return err
}

// ── Conteos de inventario ─────────────────────────────────────────────────────

// GetInventoryCounts lista todos los conteos. Sin backend devuelve los conteos
// de demostración.
func (c *Client) GetInventoryCounts(ctx context.Context) ([]dto.InventoryCountResponse, error) {
	return executeWithRetry(ctx, c, "getInventoryCounts", func(ctx context.Context) ([]dto.InventoryCountResponse, error) {
		var out []dto.InventoryCountResponse
		if _, err := c.do(ctx, http.MethodGet, "/inventory-counts", nil, &out, false); err != nil {
			return nil, err
		}
		return out, nil
	}, DemoInventoryCounts)
}

// AddInventoryCount registra un conteo. Es una escritura: sin fallback, un
// conteo offline jamás se "acepta" en silencio.
func (c *Client) AddInventoryCount(ctx context.Context, eanCode string, quantity int) (*dto.InventoryCountResponse, error) {
	in := dto.CreateInventoryCountRequest{EANCode: eanCode, Quantity: quantity}
	return executeWithRetry(ctx, c, "addInventoryCount", func(ctx context.Context) (*dto.InventoryCountResponse, error) {
		var out dto.InventoryCountResponse
		if _, err := c.do(ctx, http.MethodPost, "/inventory-counts", in, &out, false); err != nil {
			return nil, err
		}
		return &out, nil
	}, nil)
}

// GetLatestCount devuelve el conteo más reciente de un producto, o nil, nil si
// no hay conteos (404 del backend). Offline, el fallback sintetiza un conteo
// con la cantidad inicial del producto de demostración; un EAN desconocido
// también resuelve a nil, nil.
func (c *Client) GetLatestCount(ctx context.Context, eanCode string) (*dto.InventoryCountResponse, error) {
	path := "/inventory-counts/latest/" + url.PathEscape(eanCode)
	return executeWithRetry(ctx, c, "getLatestCount", func(ctx context.Context) (*dto.InventoryCountResponse, error) {
		var out dto.InventoryCountResponse
		found, err := c.do(ctx, http.MethodGet, path, nil, &out, true)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return &out, nil
	}, func() *dto.InventoryCountResponse {
		for _, p := range DemoProducts() {
			if p.EANCode == eanCode {
				return &dto.InventoryCountResponse{
					ID:        "demo-" + eanCode,
					EANCode:   eanCode,
					Quantity:  p.InitialQuantity,
					CountedAt: time.Now().UTC(),
				}
			}
		}
		return nil
	})
}

// ── Arqueos de caja ───────────────────────────────────────────────────────────

// GetCashCounts lista todos los arqueos. Sin backend devuelve el arqueo de
// demostración.
func (c *Client) GetCashCounts(ctx context.Context) ([]dto.CashCountResponse, error) {
	return executeWithRetry(ctx, c, "getCashCounts", func(ctx context.Context) ([]dto.CashCountResponse, error) {
		var out []dto.CashCountResponse
		if _, err := c.do(ctx, http.MethodGet, "/cash-counts", nil, &out, false); err != nil {
			return nil, err
		}
		return out, nil
	}, DemoCashCounts)
}

// AddCashCount registra un arqueo. Escritura: sin fallback.
func (c *Client) AddCashCount(ctx context.Context, in dto.CreateCashCountRequest) (*dto.CashCountResponse, error) {
	return executeWithRetry(ctx, c, "addCashCount", func(ctx context.Context) (*dto.CashCountResponse, error) {
		var out dto.CashCountResponse
		if _, err := c.do(ctx, http.MethodPost, "/cash-counts", in, &out, false); err != nil {
			return nil, err
		}
		return &out, nil
	}, nil)
}

// GetCashCountByDate devuelve el arqueo del día indicado, o nil, nil si ese
// día no se hizo arqueo. Offline devuelve el arqueo de demostración con la
// fecha ajustada al día pedido.
func (c *Client) GetCashCountByDate(ctx context.Context, date time.Time) (*dto.CashCountResponse, error) {
	path := "/cash-counts/date/" + date.UTC().Format("2006-01-02")
	return executeWithRetry(ctx, c, "getCashCountByDate", func(ctx context.Context) (*dto.CashCountResponse, error) {
		var out dto.CashCountResponse
		found, err := c.do(ctx, http.MethodGet, path, nil, &out, true)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return &out, nil
	}, func() *dto.CashCountResponse {
		demo := DemoCashCounts()[0]
		demo.Date = date.UTC()
		return &demo
	})
}

// GetCashCountHistory devuelve los arqueos del rango [start, end].
func (c *Client) GetCashCountHistory(ctx context.Context, start, end time.Time) ([]dto.CashCountResponse, error) {
	path := fmt.Sprintf("/cash-counts/history?startDate=%s&endDate=%s",
		start.UTC().Format("2006-01-02"), end.UTC().Format("2006-01-02"))
	return executeWithRetry(ctx, c, "getCashCountHistory", func(ctx context.Context) ([]dto.CashCountResponse, error) {
		var out []dto.CashCountResponse
		if _, err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
			return nil, err
		}
		return out, nil
	}, DemoCashCounts)
}

// UpdateCashCount aplica una actualización parcial a un arqueo. Escritura:
// sin fallback.
func (c *Client) UpdateCashCount(ctx context.Context, id string, fields map[string]any) (*dto.CashCountResponse, error) {
	path := "/cash-counts/" + url.PathEscape(id)
	return executeWithRetry(ctx, c, "updateCashCount", func(ctx context.Context) (*dto.CashCountResponse, error) {
		var out dto.CashCountResponse
		if _, err := c.do(ctx, http.MethodPatch, path, fields, &out, false); err != nil {
			return nil, err
		}
		return &out, nil
	}, nil)
}

// AddCashCountLog registra un asiento de bitácora. Escritura: sin fallback.
func (c *Client) AddCashCountLog(ctx context.Context, in dto.CreateCashCountLogRequest) (*dto.CashCountLogResponse, error) {
	return executeWithRetry(ctx, c, "addCashCountLog", func(ctx context.Context) (*dto.CashCountLogResponse, error) {
		var out dto.CashCountLogResponse
		if _, err := c.do(ctx, http.MethodPost, "/cash-count-logs", in, &out, false); err != nil {
			return nil, err
		}
		return &out, nil
	}, nil)
}

// GetCashCountLogs devuelve la bitácora de un arqueo. Offline resuelve a una
// lista vacía: la demo no tiene historial de correcciones.
func (c *Client) GetCashCountLogs(ctx context.Context, cashCountID string) ([]dto.CashCountLogResponse, error) {
	path := "/cash-count-logs/" + url.PathEscape(cashCountID)
	return executeWithRetry(ctx, c, "getCashCountLogs", func(ctx context.Context) ([]dto.CashCountLogResponse, error) {
		var out []dto.CashCountLogResponse
		if _, err := c.do(ctx, http.MethodGet, path, nil, &out, false); err != nil {
			return nil, err
		}
		return out, nil
	}, func() []dto.CashCountLogResponse {
		return []dto.CashCountLogResponse{}
	})
}
