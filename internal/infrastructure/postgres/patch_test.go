package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pos/internal/domain"
)

// Test en caja blanca: buildSetClause y normalizeFieldKey no se exportan, pero
// son la barrera que impide que un PATCH escriba columnas no previstas.

func TestNormalizeFieldKey(t *testing.T) {
	cases := map[string]string{
		"salePrice":     "sale_price",
		"sale_price":    "sale_price",
		"name":          "name",
		"imageUrl":      "image_url",
		"lastPriceChange": "last_price_change",
		"Active":        "active", // mayúscula inicial no genera guion bajo
	}
	for in, want := range cases {
		assert.Equal(t, want, normalizeFieldKey(in), "clave %q", in)
	}
}

func TestBuildSetClause_CamelCaseNormalizado(t *testing.T) {
	set, args, err := buildSetClause(productUpdatableColumns, map[string]any{"salePrice": 12.5}, 2)
	require.NoError(t, err)
	assert.Equal(t, "sale_price = $2", set)
	assert.Equal(t, []any{12.5}, args)
}

func TestBuildSetClause_OrdenAlfabeticoDeterminista(t *testing.T) {
	fields := map[string]any{
		"supplier": "Nuevo Proveedor",
		"active":   false,
		"name":     "Renombrado",
	}
	set, args, err := buildSetClause(productUpdatableColumns, fields, 2)
	require.NoError(t, err)
	assert.Equal(t, "active = $2, name = $3, supplier = $4", set,
		"el mismo conjunto de campos debe producir siempre el mismo SQL")
	assert.Equal(t, []any{false, "Renombrado", "Nuevo Proveedor"}, args)
}

func TestBuildSetClause_RechazaClaveDesconocida(t *testing.T) {
	_, _, err := buildSetClause(productUpdatableColumns, map[string]any{"eanCode": "X"}, 2)
	require.Error(t, err, "la clave primaria no es actualizable")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = buildSetClause(productUpdatableColumns, map[string]any{"dropTable": 1}, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildSetClause_RechazaVacio(t *testing.T) {
	_, _, err := buildSetClause(productUpdatableColumns, map[string]any{}, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildSetClause_ArqueoPermiteUpdatedAt(t *testing.T) {
	set, _, err := buildSetClause(cashCountUpdatableColumns, map[string]any{
		"comments":   "corrección",
		"updated_at": "2024-03-10T12:00:00Z",
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, "comments = $2, updated_at = $3", set)
}
