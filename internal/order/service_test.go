package order_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-microservices/internal/order"
)

type mockRepository struct {
	createFunc  func(ctx context.Context, o *order.Order) (int64, error)
	listFunc    func(ctx context.Context) ([]order.Order, error)
	getByIDFunc func(ctx context.Context, id int64) (*order.Order, error)
	updateFunc  func(ctx context.Context, o *order.Order) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockRepository) Create(ctx context.Context, o *order.Order) (int64, error) {
	return m.createFunc(ctx, o)
}

func (m *mockRepository) List(ctx context.Context) ([]order.Order, error) {
	return m.listFunc(ctx)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockRepository) Update(ctx context.Context, o *order.Order) error {
	return m.updateFunc(ctx, o)
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	return m.deleteFunc(ctx, id)
}

type mockCatalogClient struct {
	getProductFunc func(ctx context.Context, id int64) (*order.ProductInfo, error)
}

func (m *mockCatalogClient) GetProduct(ctx context.Context, id int64) (*order.ProductInfo, error) {
	return m.getProductFunc(ctx, id)
}

func TestService_CreateOrder(t *testing.T) {
	repo := &mockRepository{
		createFunc: func(ctx context.Context, o *order.Order) (int64, error) {
			return 10, nil
		},
	}
	catalogClient := &mockCatalogClient{
		getProductFunc: func(ctx context.Context, id int64) (*order.ProductInfo, error) {
			return &order.ProductInfo{ID: id, Name: "Keyboard", Price: 59.90}, nil
		},
	}
	svc := order.NewService(repo, catalogClient)

	created, product, err := svc.CreateOrder(context.Background(), 7, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, int64(2), created.ProductID)
	assert.Equal(t, int64(3), created.Quantity)
	assert.Equal(t, order.StatusNew, created.Status)

	require.NotNil(t, product)
	assert.Equal(t, "Keyboard", product.Name)
}

func TestService_CreateOrder_EnrichmentFailureIsNonFatal(t *testing.T) {
	repo := &mockRepository{
		createFunc: func(ctx context.Context, o *order.Order) (int64, error) {
			return 11, nil
		},
	}
	catalogClient := &mockCatalogClient{
		getProductFunc: func(ctx context.Context, id int64) (*order.ProductInfo, error) {
			return nil, errors.New("catalog unreachable")
		},
	}
	svc := order.NewService(repo, catalogClient)

	created, product, err := svc.CreateOrder(context.Background(), 7, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Nil(t, product)
}

func TestService_CreateOrder_MissingFields(t *testing.T) {
	repoCalled := false
	repo := &mockRepository{
		createFunc: func(ctx context.Context, o *order.Order) (int64, error) {
			repoCalled = true
			return 1, nil
		},
	}
	svc := order.NewService(repo, nil)

	_, _, err := svc.CreateOrder(context.Background(), 7, 0, 3)
	assert.ErrorIs(t, err, order.ErrMissingFields)

	_, _, err = svc.CreateOrder(context.Background(), 7, 2, 0)
	assert.ErrorIs(t, err, order.ErrMissingFields)

	assert.False(t, repoCalled)
}

func TestService_CreateOrder_RepositoryError(t *testing.T) {
	repo := &mockRepository{
		createFunc: func(ctx context.Context, o *order.Order) (int64, error) {
			return 0, errors.New("disk full")
		},
	}
	svc := order.NewService(repo, nil)

	_, _, err := svc.CreateOrder(context.Background(), 7, 2, 3)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, order.ErrMissingFields)
}

func TestService_UpdateOrder_Validation(t *testing.T) {
	svc := order.NewService(&mockRepository{}, nil)

	err := svc.UpdateOrder(context.Background(), &order.Order{ID: 1, UserID: 0, ProductID: 2, Quantity: 3, Status: order.StatusNew})
	assert.ErrorIs(t, err, order.ErrMissingFields)

	err = svc.UpdateOrder(context.Background(), &order.Order{ID: 1, UserID: 1, ProductID: 2, Quantity: 3, Status: ""})
	assert.ErrorIs(t, err, order.ErrMissingFields)
}

func TestService_GetOrderByID_NotFound(t *testing.T) {
	repo := &mockRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*order.Order, error) {
			return nil, order.ErrNotFound
		},
	}
	svc := order.NewService(repo, nil)

	_, err := svc.GetOrderByID(context.Background(), 999)
	assert.ErrorIs(t, err, order.ErrNotFound)
}
