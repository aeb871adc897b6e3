package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-microservices/internal/catalog"
	"shop-microservices/internal/db"
)

func setupRepository(t *testing.T) catalog.Repository {
	t.Helper()

	conn, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(conn, "catalog"))

	return catalog.NewRepository(conn)
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &catalog.Product{Name: "Keyboard", Description: "Mechanical", Price: 59.90})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Keyboard", got.Name)
	assert.Equal(t, "Mechanical", got.Description)
	assert.Equal(t, 59.90, got.Price)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo := setupRepository(t)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRepository_List(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	_, err = repo.Create(ctx, &catalog.Product{Name: "A", Price: 1})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &catalog.Product{Name: "B", Price: 2})
	require.NoError(t, err)

	products, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
}

func TestRepository_Update(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &catalog.Product{Name: "A", Price: 1})
	require.NoError(t, err)

	err = repo.Update(ctx, &catalog.Product{ID: id, Name: "A2", Description: "updated", Price: 3})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "A2", got.Name)
	assert.Equal(t, "updated", got.Description)
	assert.Equal(t, 3.0, got.Price)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo := setupRepository(t)

	err := repo.Update(context.Background(), &catalog.Product{ID: 999, Name: "X", Price: 1})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &catalog.Product{Name: "A", Price: 1})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	// a second delete reports not found instead of failing hard
	assert.ErrorIs(t, repo.Delete(ctx, id), catalog.ErrNotFound)
}
