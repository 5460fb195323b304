package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
	"github.com/tu-usuario/almacen-pos/internal/domain/repository"
)

var _ repository.CashCountRepository = (*CashCountRepo)(nil)

const cashCountColumns = `id, date, notes, coins, total, created_at, updated_at, comments`

// CashCountRepo adaptador PostgreSQL para los arqueos de caja. Notes y Coins
// se guardan como JSONB (denominación -> cantidad).
type CashCountRepo struct {
	q Querier
}

// NewCashCountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashCountRepository(q Querier) *CashCountRepo {
	return &CashCountRepo{q: q}
}

// Create persiste un arqueo nuevo.
func (r *CashCountRepo) Create(count *entity.CashCount) error {
	query := `
		INSERT INTO cash_counts (id, date, notes, coins, total, created_at, updated_at, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		count.ID, count.Date, count.Notes, count.Coins, count.Total,
		count.CreatedAt, count.UpdatedAt, count.Comments,
	)
	if err != nil {
		return fmt.Errorf("insert cash count: %w", err)
	}
	return nil
}

// List devuelve todos los arqueos ordenados por fecha descendente.
func (r *CashCountRepo) List() ([]*entity.CashCount, error) {
	query := `SELECT ` + cashCountColumns + ` FROM cash_counts ORDER BY date DESC`
	return r.queryMany(query)
}

// GetByDay devuelve el arqueo cuya fecha cae dentro del día civil (UTC)
// indicado, o nil, nil si ese día no se hizo arqueo.
func (r *CashCountRepo) GetByDay(day time.Time) (*entity.CashCount, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)

	query := `SELECT ` + cashCountColumns + ` FROM cash_counts WHERE date >= $1 AND date <= $2 LIMIT 1`
	c, err := scanCashCount(r.q.QueryRow(context.Background(), query, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash count by day: %w", err)
	}
	return c, nil
}

// ListByRange devuelve los arqueos con fecha dentro de [start, end], del más
// reciente al más antiguo.
func (r *CashCountRepo) ListByRange(start, end time.Time) ([]*entity.CashCount, error) {
	query := `SELECT ` + cashCountColumns + ` FROM cash_counts WHERE date >= $1 AND date <= $2 ORDER BY date DESC`
	return r.queryMany(query, start, end)
}

// UpdateFields aplica una actualización parcial sobre las columnas permitidas.
// Devuelve nil, nil si el id no existe.
func (r *CashCountRepo) UpdateFields(id string, fields map[string]any) (*entity.CashCount, error) {
	setClause, args, err := buildSetClause(cashCountUpdatableColumns, fields, 2)
	if err != nil {
		return nil, err
	}
	query := `UPDATE cash_counts SET ` + setClause + ` WHERE id = $1 RETURNING ` + cashCountColumns
	allArgs := append([]any{id}, args...)
	c, err := scanCashCount(r.q.QueryRow(context.Background(), query, allArgs...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update cash count: %w", err)
	}
	return c, nil
}

func (r *CashCountRepo) queryMany(query string, args ...any) ([]*entity.CashCount, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cash counts: %w", err)
	}
	defer rows.Close()

	var list []*entity.CashCount
	for rows.Next() {
		c, err := scanCashCount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash count: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCashCount(row pgx.Row) (*entity.CashCount, error) {
	var c entity.CashCount
	err := row.Scan(&c.ID, &c.Date, &c.Notes, &c.Coins, &c.Total,
		&c.CreatedAt, &c.UpdatedAt, &c.Comments)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
