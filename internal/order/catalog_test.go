package order_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-microservices/internal/order"
)

func TestCatalogClient_GetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":2,"name":"Keyboard","description":"Mechanical","price":59.9}`))
	}))
	defer server.Close()

	client := order.NewCatalogClient(server.URL, time.Second)

	info, err := client.GetProduct(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), info.ID)
	assert.Equal(t, "Keyboard", info.Name)
	assert.Equal(t, 59.9, info.Price)
}

func TestCatalogClient_GetProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Product not found"}`))
	}))
	defer server.Close()

	client := order.NewCatalogClient(server.URL, time.Second)

	_, err := client.GetProduct(context.Background(), 999)
	assert.Error(t, err)
}

func TestCatalogClient_GetProduct_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := order.NewCatalogClient(server.URL, 50*time.Millisecond)

	_, err := client.GetProduct(context.Background(), 1)
	assert.Error(t, err)
}
