package order_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-microservices/internal/db"
	"shop-microservices/internal/order"
)

func setupRepository(t *testing.T) order.Repository {
	t.Helper()

	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(conn, "order"))

	return order.NewRepository(conn)
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &order.Order{UserID: 1, ProductID: 2, Quantity: 3, Status: order.StatusNew})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.UserID)
	assert.Equal(t, int64(2), got.ProductID)
	assert.Equal(t, int64(3), got.Quantity)
	assert.Equal(t, order.StatusNew, got.Status)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &order.Order{UserID: 1, ProductID: 1, Quantity: 1, Status: order.StatusNew})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &order.Order{UserID: 2, ProductID: 2, Quantity: 2, Status: "SHIPPED"})
	require.NoError(t, err)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(1), orders[0].UserID)
	assert.Equal(t, order.OrderStatus("SHIPPED"), orders[1].Status)
}

func TestRepository_Update(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &order.Order{UserID: 1, ProductID: 2, Quantity: 3, Status: order.StatusNew})
	require.NoError(t, err)

	err = repo.Update(ctx, &order.Order{ID: id, UserID: 1, ProductID: 2, Quantity: 5, Status: "SHIPPED"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Quantity)
	assert.Equal(t, order.OrderStatus("SHIPPED"), got.Status)

	err = repo.Update(ctx, &order.Order{ID: 999, UserID: 1, ProductID: 1, Quantity: 1, Status: order.StatusNew})
	assert.ErrorIs(t, err, order.ErrNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &order.Order{UserID: 1, ProductID: 2, Quantity: 3, Status: order.StatusNew})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), order.ErrNotFound)
}
