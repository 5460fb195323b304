package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
	"github.com/tu-usuario/almacen-pos/internal/domain/repository"
)

var _ repository.InventoryCountRepository = (*InventoryCountRepo)(nil)

// InventoryCountRepo adaptador PostgreSQL para los conteos de inventario.
// Solo inserta y consulta: la tabla es append-only.
type InventoryCountRepo struct {
	q Querier
}

// NewInventoryCountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryCountRepository(q Querier) *InventoryCountRepo {
	return &InventoryCountRepo{q: q}
}

// Create persiste un conteo nuevo.
func (r *InventoryCountRepo) Create(count *entity.InventoryCount) error {
	query := `
		INSERT INTO inventory_counts (id, ean_code, quantity, counted_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		count.ID, count.EANCode, count.Quantity, count.CountedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory count: %w", err)
	}
	return nil
}

// List devuelve todos los conteos, del más reciente al más antiguo.
func (r *InventoryCountRepo) List() ([]*entity.InventoryCount, error) {
	query := `
		SELECT id, ean_code, quantity, counted_at
		FROM inventory_counts ORDER BY counted_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory counts: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryCount
	for rows.Next() {
		var c entity.InventoryCount
		if err := rows.Scan(&c.ID, &c.EANCode, &c.Quantity, &c.CountedAt); err != nil {
			return nil, fmt.Errorf("scan inventory count: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// LatestByEAN devuelve el conteo más reciente del producto, o nil, nil si el
// producto nunca fue contado.
func (r *InventoryCountRepo) LatestByEAN(eanCode string) (*entity.InventoryCount, error) {
	query := `
		SELECT id, ean_code, quantity, counted_at
		FROM inventory_counts WHERE ean_code = $1
		ORDER BY counted_at DESC LIMIT 1`
	var c entity.InventoryCount
	err := r.q.QueryRow(context.Background(), query, eanCode).
		Scan(&c.ID, &c.EANCode, &c.Quantity, &c.CountedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest inventory count: %w", err)
	}
	return &c, nil
}
