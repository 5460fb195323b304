package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCashCountRequest body para POST /api/cash-counts. Notes y Coins mapean
// denominación (texto) a cantidad de piezas.
type CreateCashCountRequest struct {
	Date     time.Time       `json:"date" validate:"required"`
	Notes    map[string]int  `json:"notes" validate:"required"`
	Coins    map[string]int  `json:"coins" validate:"required"`
	Total    decimal.Decimal `json:"total"`
	Comments string          `json:"comments"`
}

// CashCountResponse salida de un arqueo de caja.
type CashCountResponse struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Notes     map[string]int  `json:"notes"`
	Coins     map[string]int  `json:"coins"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	Comments  string          `json:"comments"`
}

// CreateCashCountLogRequest body para POST /api/cash-count-logs.
type CreateCashCountLogRequest struct {
	CashCountID   string           `json:"cash_count_id" validate:"required"`
	Date          *time.Time       `json:"date"` // nil = ahora
	Type          string           `json:"type" validate:"required"`
	PreviousTotal *decimal.Decimal `json:"previous_total"`
	NewTotal      *decimal.Decimal `json:"new_total"`
	PreviousDate  *time.Time       `json:"previous_date"`
	NewDate       *time.Time       `json:"new_date"`
	Notes         map[string]int   `json:"notes"`
	Coins         map[string]int   `json:"coins"`
	Comments      string           `json:"comments"`
}

// CashCountLogResponse salida de un registro de bitácora de arqueo.
type CashCountLogResponse struct {
	ID            string           `json:"id"`
	CashCountID   string           `json:"cash_count_id"`
	Date          time.Time        `json:"date"`
	Type          string           `json:"type"`
	PreviousTotal *decimal.Decimal `json:"previous_total"`
	NewTotal      *decimal.Decimal `json:"new_total"`
	PreviousDate  *time.Time       `json:"previous_date"`
	NewDate       *time.Time       `json:"new_date"`
	Notes         map[string]int   `json:"notes"`
	Coins         map[string]int   `json:"coins"`
	Comments      string           `json:"comments"`
}
