package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	Create(ctx context.Context, product *Product) (int64, error)
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id int64) error
}

type sqliteRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, product *Product) (int64, error) {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO products (name, description, price) VALUES (:name, :description, :price)`,
		product)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("repository: failed to read inserted product id: %w", err)
	}
	return id, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]Product, error) {
	products := make([]Product, 0)
	err := r.db.SelectContext(ctx, &products,
		`SELECT id, name, description, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to select products: %w", err)
	}
	return products, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*Product, error) {
	var product Product
	err := r.db.GetContext(ctx, &product,
		`SELECT id, name, description, price FROM products WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select product %d: %w", id, err)
	}
	return &product, nil
}

func (r *sqliteRepository) Update(ctx context.Context, product *Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, description = ?, price = ? WHERE id = ?`,
		product.Name, product.Description, product.Price, product.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to update product %d: %w", product.ID, err)
	}

	// RowsAffected distinguishes "not found" from a store failure.
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete product %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
