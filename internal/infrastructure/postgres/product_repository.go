package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/almacen-pos/internal/domain"
	"github.com/tu-usuario/almacen-pos/internal/domain/entity"
	"github.com/tu-usuario/almacen-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `ean_code, name, category, initial_quantity, image_url,
	package_quantity, package_type, purchase_price, sale_price, supplier,
	active, created_at, deleted_at, previous_sale_price,
	previous_purchase_price, previous_supplier, last_price_change,
	last_purchase_price_change, last_supplier_change`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. EAN duplicado devuelve domain.ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (ean_code, name, category, initial_quantity, image_url,
			package_quantity, package_type, purchase_price, sale_price, supplier,
			active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.EANCode, product.Name, product.Category, product.InitialQuantity,
		product.ImageURL, product.PackageQuantity, product.PackageType,
		product.PurchasePrice, product.SalePrice, product.Supplier,
		product.Active, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByEAN obtiene un producto por código EAN. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByEAN(eanCode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ean_code = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, eanCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List devuelve el catálogo completo, ordenado por categoría y nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY category, name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// UpdateFields aplica una actualización parcial sobre las columnas permitidas.
// Devuelve nil, nil si el EAN no existe.
func (r *ProductRepo) UpdateFields(eanCode string, fields map[string]any) (*entity.Product, error) {
	setClause, args, err := buildSetClause(productUpdatableColumns, fields, 2)
	if err != nil {
		return nil, err
	}
	query := `UPDATE products SET ` + setClause + ` WHERE ean_code = $1 RETURNING ` + productColumns
	allArgs := append([]any{eanCode}, args...)
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, allArgs...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.EANCode, &p.Name, &p.Category, &p.InitialQuantity, &p.ImageURL,
		&p.PackageQuantity, &p.PackageType, &p.PurchasePrice, &p.SalePrice,
		&p.Supplier, &p.Active, &p.CreatedAt, &p.DeletedAt,
		&p.PreviousSalePrice, &p.PreviousPurchasePrice, &p.PreviousSupplier,
		&p.LastPriceChange, &p.LastPurchasePriceChange, &p.LastSupplierChange,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
