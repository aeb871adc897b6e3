package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	Create(ctx context.Context, order *Order) (int64, error)
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	Update(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id int64) error
}

type sqliteRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, order *Order) (int64, error) {
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO orders (user_id, product_id, quantity, status)
		 VALUES (:user_id, :product_id, :quantity, :status)`,
		order)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("repository: failed to read inserted order id: %w", err)
	}
	return id, nil
}

func (r *sqliteRepository) List(ctx context.Context) ([]Order, error) {
	orders := make([]Order, 0)
	err := r.db.SelectContext(ctx, &orders,
		`SELECT id, user_id, product_id, quantity, status FROM orders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to select orders: %w", err)
	}
	return orders, nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*Order, error) {
	var o Order
	err := r.db.GetContext(ctx, &o,
		`SELECT id, user_id, product_id, quantity, status FROM orders WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to select order %d: %w", id, err)
	}
	return &o, nil
}

func (r *sqliteRepository) Update(ctx context.Context, order *Order) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET user_id = ?, product_id = ?, quantity = ?, status = ? WHERE id = ?`,
		order.UserID, order.ProductID, order.Quantity, order.Status, order.ID)
	if err != nil {
		return fmt.Errorf("repository: failed to update order %d: %w", order.ID, err)
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

func (r *sqliteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete order %d: %w", id, err)
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
