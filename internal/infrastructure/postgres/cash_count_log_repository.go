package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
	"github.com/tu-usuario/almacen-pos/internal/domain/repository"
)

var _ repository.CashCountLogRepository = (*CashCountLogRepo)(nil)

// CashCountLogRepo adaptador PostgreSQL para la bitácora de arqueos.
// Solo inserta y lista: los registros son inmutables.
type CashCountLogRepo struct {
	q Querier
}

// NewCashCountLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashCountLogRepository(q Querier) *CashCountLogRepo {
	return &CashCountLogRepo{q: q}
}

// Create persiste un registro de bitácora.
func (r *CashCountLogRepo) Create(log *entity.CashCountLog) error {
	query := `
		INSERT INTO cash_count_logs (id, cash_count_id, date, type,
			previous_total, new_total, previous_date, new_date, notes, coins, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.CashCountID, log.Date, log.Type,
		log.PreviousTotal, log.NewTotal, log.PreviousDate, log.NewDate,
		log.Notes, log.Coins, log.Comments,
	)
	if err != nil {
		return fmt.Errorf("insert cash count log: %w", err)
	}
	return nil
}

// ListByCashCount devuelve la bitácora de un arqueo, por fecha descendente.
func (r *CashCountLogRepo) ListByCashCount(cashCountID string) ([]*entity.CashCountLog, error) {
	query := `
		SELECT id, cash_count_id, date, type, previous_total, new_total,
			previous_date, new_date, notes, coins, comments
		FROM cash_count_logs WHERE cash_count_id = $1 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, cashCountID)
	if err != nil {
		return nil, fmt.Errorf("list cash count logs: %w", err)
	}
	defer rows.Close()

	var list []*entity.CashCountLog
	for rows.Next() {
		var l entity.CashCountLog
		if err := rows.Scan(&l.ID, &l.CashCountID, &l.Date, &l.Type,
			&l.PreviousTotal, &l.NewTotal, &l.PreviousDate, &l.NewDate,
			&l.Notes, &l.Coins, &l.Comments); err != nil {
			return nil, fmt.Errorf("scan cash count log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
