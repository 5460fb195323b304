package entity

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CashCount es el arqueo de caja de una fecha: cuántos billetes y monedas de
// cada denominación había en el cajón. Notes y Coins mapean denominación
// (como texto, ej. "20" o "0.25") a cantidad de piezas. Es mutable; cada
// corrección debería documentarse con un CashCountLog.
type CashCount struct {
	ID        string
	Date      time.Time
	Notes     map[string]int // billetes: denominación -> cantidad
	Coins     map[string]int // monedas: denominación -> cantidad
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
	Comments  string
}

// CashCountLog documenta una modificación sobre un arqueo. Es append-only:
// una vez escrito no se toca.
type CashCountLog struct {
	ID            string
	CashCountID   string
	Date          time.Time
	Type          string // ej. "update"
	PreviousTotal *decimal.Decimal
	NewTotal      *decimal.Decimal
	PreviousDate  *time.Time
	NewDate       *time.Time
	Notes         map[string]int
	Coins         map[string]int
	Comments      string
}

// ComputedTotal suma denominación × cantidad sobre billetes y monedas usando
// aritmética decimal exacta. Denominaciones no numéricas se ignoran.
func (c *CashCount) ComputedTotal() decimal.Decimal {
	total := decimal.Zero
	total = total.Add(sumDenominations(c.Notes))
	total = total.Add(sumDenominations(c.Coins))
	return total
}

func sumDenominations(m map[string]int) decimal.Decimal {
	// Orden estable solo para que el redondeo acumulado sea determinista.
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	total := decimal.Zero
	for _, k := range keys {
		denom, err := decimal.NewFromString(k)
		if err != nil {
			continue
		}
		total = total.Add(denom.Mul(decimal.NewFromInt(int64(m[k]))))
	}
	return total
}
