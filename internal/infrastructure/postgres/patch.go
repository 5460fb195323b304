package postgres

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/tu-usuario/almacen-pos/internal/domain"
)

// Columnas actualizables por PATCH, por entidad. Cualquier clave del body que
// no normalice a una columna de esta lista se rechaza con ErrInvalidInput
// antes de tocar la base: un PATCH jamás escribe columnas no previstas.
var (
	productUpdatableColumns = map[string]bool{
		"name":                       true,
		"category":                   true,
		"initial_quantity":           true,
		"image_url":                  true,
		"package_quantity":           true,
		"package_type":               true,
		"purchase_price":             true,
		"sale_price":                 true,
		"supplier":                   true,
		"active":                     true,
		"deleted_at":                 true,
		"previous_sale_price":        true,
		"previous_purchase_price":    true,
		"previous_supplier":          true,
		"last_price_change":          true,
		"last_purchase_price_change": true,
		"last_supplier_change":       true,
	}

	cashCountUpdatableColumns = map[string]bool{
		"date":       true,
		"notes":      true,
		"coins":      true,
		"total":      true,
		"comments":   true,
		"updated_at": true,
	}
)

// normalizeFieldKey convierte una clave JSON camelCase al nombre de columna
// snake_case ("salePrice" -> "sale_price"). Las claves ya en snake_case pasan
// sin cambios.
func normalizeFieldKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// buildSetClause arma la cláusula SET parametrizada de un UPDATE parcial.
// startIndex es el primer placeholder libre ($1 suele ser la clave del WHERE).
// Las columnas se emiten en orden alfabético para que el mismo conjunto de
// campos produzca siempre el mismo SQL.
func buildSetClause(allowed map[string]bool, fields map[string]any, startIndex int) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: sin campos para actualizar", domain.ErrInvalidInput)
	}

	byColumn := make(map[string]any, len(fields))
	for key, value := range fields {
		col := normalizeFieldKey(key)
		if !allowed[col] {
			return "", nil, fmt.Errorf("%w: campo no actualizable %q", domain.ErrInvalidInput, key)
		}
		byColumn[col] = value
	}

	columns := make([]string, 0, len(byColumn))
	for col := range byColumn {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for i, col := range columns {
		parts = append(parts, fmt.Sprintf("%s = $%d", col, startIndex+i))
		args = append(args, byColumn[col])
	}
	return strings.Join(parts, ", "), args, nil
}
