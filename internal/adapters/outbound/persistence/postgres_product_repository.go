package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ftorres/marketplace-insights/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresProductRepository implements catalog.ProductRepository using PostgreSQL
type PostgresProductRepository struct {
	db *pgxpool.Pool
}

// NewPostgresProductRepository creates a new PostgreSQL product repository
func NewPostgresProductRepository(db *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

func (r *PostgresProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO products (id, name, description, category, price, marketplace, external_id, url, created_at, updated_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		product.ID, product.Name, product.Description, product.Category, product.Price,
		product.Marketplace, product.ExternalID, product.URL, product.CreatedAt, product.UpdatedAt,
	)
	return err
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, name, description, category, price, marketplace, external_id, url, created_at, updated_at
         FROM products WHERE id = $1`, id)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (r *PostgresProductRepository) List(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, error) {
	query := `SELECT id, name, description, category, price, marketplace, external_id, url, created_at, updated_at
              FROM products WHERE 1=1`
	args := []any{}

	if filter.Marketplace != "" {
		args = append(args, filter.Marketplace)
		query += fmt.Sprintf(" AND marketplace = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*catalog.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE products
         SET name = $2, description = $3, category = $4, price = $5, marketplace = $6,
             external_id = $7, url = $8, updated_at = $9
         WHERE id = $1`,
		product.ID, product.Name, product.Description, product.Category, product.Price,
		product.Marketplace, product.ExternalID, product.URL, product.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrProductNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*catalog.Product, error) {
	product := &catalog.Product{}
	err := row.Scan(
		&product.ID, &product.Name, &product.Description, &product.Category, &product.Price,
		&product.Marketplace, &product.ExternalID, &product.URL, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}
