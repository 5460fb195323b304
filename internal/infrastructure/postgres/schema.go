package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/001_init.sql
var schemaSQL string

// Migrate aplica el esquema embebido al arrancar. Las sentencias son
// CREATE TABLE IF NOT EXISTS, así que es seguro ejecutarlo en cada inicio.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
